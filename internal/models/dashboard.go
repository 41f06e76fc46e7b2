package models

// DashboardStats are fixed summary numbers, not derived from other pages.
type DashboardStats struct {
	TotalProperties    int   `json:"totalProperties"`
	ActiveTenants      int   `json:"activeTenants"`
	ActiveContracts    int   `json:"activeContracts"`
	MonthlyRevenue     int64 `json:"monthlyRevenue"`
	PendingPayments    int   `json:"pendingPayments"`
	ExpiringContracts  int   `json:"expiringContracts"`
	MaintenanceRequest int   `json:"maintenanceRequests"`
	OccupancyRate      int   `json:"occupancyRate"`
}

// DashboardPaymentStatus is the two-state status of the recent payments preview.
type DashboardPaymentStatus string

const (
	DashboardPaid    DashboardPaymentStatus = "paid"
	DashboardPending DashboardPaymentStatus = "pending"
)

func (s DashboardPaymentStatus) Badge() Badge {
	if s == DashboardPaid {
		return Badge{Label: "Pagado", Variant: VariantDefault, ClassName: "bg-green-600 text-white"}
	}
	return Badge{Label: "Pendiente", Variant: VariantSecondary, ClassName: "bg-slate-200 text-slate-700"}
}

type RecentPayment struct {
	ID       int                    `json:"id"`
	Tenant   string                 `json:"tenant"`
	Property string                 `json:"property"`
	Amount   int64                  `json:"amount"`
	Date     string                 `json:"date"`
	Status   DashboardPaymentStatus `json:"status"`
}

type ExpiringContractPreview struct {
	ID         int    `json:"id"`
	Tenant     string `json:"tenant"`
	Property   string `json:"property"`
	ExpiryDate string `json:"expiryDate"`
	DaysLeft   int    `json:"daysLeft"`
}

// Dashboard is the whole landing-page payload source.
type Dashboard struct {
	Stats             DashboardStats            `json:"stats"`
	RecentPayments    []RecentPayment           `json:"recentPayments"`
	ExpiringContracts []ExpiringContractPreview `json:"expiringContracts"`
}
