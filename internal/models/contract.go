package models

type ContractStatus string

const (
	ContractActive     ContractStatus = "Activo"
	ContractPending    ContractStatus = "Pendiente"
	ContractExpiring   ContractStatus = "Por Vencer"
	ContractTerminated ContractStatus = "Rescindido"
)

func (s ContractStatus) Badge() Badge {
	switch s {
	case ContractActive:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classSuccess, Icon: IconCheckCircle}
	case ContractPending:
		return Badge{Label: string(s), Variant: VariantSecondary, ClassName: classWarning, Icon: IconClock}
	case ContractExpiring:
		return Badge{Label: string(s), Variant: VariantDestructive, ClassName: "bg-orange-500 text-white", Icon: IconAlertCircle}
	case ContractTerminated:
		return Badge{Label: string(s), Variant: VariantOutline, ClassName: classMuted, Icon: IconAlertCircle}
	}
	return neutralWithIcon(string(s))
}

// Contract links a tenant, a property and its owner for a date range.
// Commission is a percentage of the monthly rent. Dates are YYYY-MM-DD.
type Contract struct {
	ID           string         `json:"id"`
	Tenant       string         `json:"tenant"`
	Property     string         `json:"property"`
	Owner        string         `json:"owner"`
	StartDate    string         `json:"startDate"`
	EndDate      string         `json:"endDate"`
	MonthlyRent  int64          `json:"monthlyRent"`
	Commission   int            `json:"commission"`
	Status       ContractStatus `json:"status"`
	Deposit      int64          `json:"deposit"`
	WarrantyType string         `json:"warrantyType"`
}

func (c Contract) SearchFields() []string {
	return []string{c.Tenant, c.Property, c.ID, c.Owner}
}

type ContractStats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Pending  int `json:"pending"`
	Expiring int `json:"expiring"`
}
