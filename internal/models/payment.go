package models

import "github.com/shopspring/decimal"

func init() {
	// Amounts travel as JSON numbers, the way the frontend sends them.
	decimal.MarshalJSONWithoutQuotes = true
}

type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "Pagado"
	PaymentPending  PaymentStatus = "Pendiente"
	PaymentPaidLate PaymentStatus = "Pagado con Mora"
	PaymentOverdue  PaymentStatus = "Moroso"
)

// PaymentStatuses lists the accepted values in display order.
var PaymentStatuses = []PaymentStatus{PaymentPaid, PaymentPending, PaymentPaidLate, PaymentOverdue}

// ParsePaymentStatus reports whether s is a known payment status.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	for _, st := range PaymentStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return PaymentStatus(s), false
}

// Settled is true once money was received, late or not.
func (s PaymentStatus) Settled() bool {
	return s == PaymentPaid || s == PaymentPaidLate
}

func (s PaymentStatus) Badge() Badge {
	switch s {
	case PaymentPaid:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classSuccess, Icon: IconCheckCircle}
	case PaymentPending:
		return Badge{Label: string(s), Variant: VariantSecondary, ClassName: classWarning, Icon: IconClock}
	case PaymentPaidLate:
		return Badge{Label: string(s), Variant: VariantOutline, ClassName: "bg-orange-100 text-orange-800 border-orange-200", Icon: IconAlertTriangle}
	case PaymentOverdue:
		return Badge{Label: string(s), Variant: VariantDestructive, ClassName: classDestructive, Icon: IconAlertTriangle}
	}
	return neutralWithIcon(string(s))
}

// Payment is one rent installment. TotalAmount is Amount plus FineAmount
// by convention of the data, not enforced here.
type Payment struct {
	ID            string          `json:"id"`
	ContractID    string          `json:"contractId"`
	Tenant        string          `json:"tenant"`
	Property      string          `json:"property"`
	Period        string          `json:"period"`
	Amount        decimal.Decimal `json:"amount"`
	FineAmount    decimal.Decimal `json:"fineAmount"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	DueDate       string          `json:"dueDate"`
	PaymentDate   *string         `json:"paymentDate"`
	Status        PaymentStatus   `json:"status"`
	ReceiptNumber *string         `json:"receiptNumber"`
}

func (p Payment) SearchFields() []string {
	return []string{p.Tenant, p.Property, p.ID, p.Period}
}

type PaymentStats struct {
	TotalCollected decimal.Decimal `json:"totalCollected"`
	Confirmed      int             `json:"confirmed"`
	Pending        int             `json:"pending"`
	Delinquent     int             `json:"delinquent"`
}
