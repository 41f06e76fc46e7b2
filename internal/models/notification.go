package models

type NotificationType string

const (
	NotificationPaymentOverdue   NotificationType = "payment_overdue"
	NotificationPaymentPending   NotificationType = "payment_pending"
	NotificationContractExpiring NotificationType = "contract_expiring"
	NotificationSystem           NotificationType = "system"
)

// Icon returns the icon name for the type, Bell when unknown.
func (t NotificationType) Icon() string {
	switch t {
	case NotificationPaymentOverdue:
		return IconAlertTriangle
	case NotificationPaymentPending:
		return IconDollarSign
	case NotificationContractExpiring:
		return IconCalendar
	}
	return IconBell
}

type NotificationPriority string

const (
	PriorityHigh   NotificationPriority = "high"
	PriorityMedium NotificationPriority = "medium"
	PriorityLow    NotificationPriority = "low"
)

// Badge falls back to the low-priority badge.
func (p NotificationPriority) Badge() Badge {
	switch p {
	case PriorityHigh:
		return Badge{Label: "Alta", Variant: VariantDefault, ClassName: classDestructive}
	case PriorityMedium:
		return Badge{Label: "Media", Variant: VariantDefault, ClassName: classWarning}
	}
	return Badge{Label: "Baja", Variant: VariantDefault, ClassName: classMuted}
}

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

// Notification is a system alert about a payment or contract.
// The optional fields depend on Type.
type Notification struct {
	ID           int                  `json:"id"`
	Type         NotificationType     `json:"type"`
	Title        string               `json:"title"`
	Message      string               `json:"message"`
	Tenant       string               `json:"tenant"`
	Property     string               `json:"property"`
	Amount       *int64               `json:"amount,omitempty"`
	DaysOverdue  *int                 `json:"daysOverdue,omitempty"`
	DaysToExpire *int                 `json:"daysToExpire,omitempty"`
	Period       *string              `json:"period,omitempty"`
	Date         string               `json:"date"`
	Priority     NotificationPriority `json:"priority"`
	Status       NotificationStatus   `json:"status"`
	Category     string               `json:"category"`
}

func (n Notification) SearchFields() []string {
	return []string{n.Title, n.Message, n.Tenant}
}

// NotificationTab selects a subset of the search result.
type NotificationTab string

const (
	TabAll    NotificationTab = "all"
	TabUnread NotificationTab = "unread"
	TabHigh   NotificationTab = "high"
)

// Matches reports whether n belongs in the tab. Unknown tabs behave as all.
func (t NotificationTab) Matches(n Notification) bool {
	switch t {
	case TabUnread:
		return n.Status == NotificationUnread
	case TabHigh:
		return n.Priority == PriorityHigh
	}
	return true
}

type NotificationStats struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	High   int `json:"high"`
	Read   int `json:"read"`
}
