package models

type OwnerStatus string

const (
	OwnerActive   OwnerStatus = "Activo"
	OwnerPending  OwnerStatus = "Pendiente"
	OwnerInactive OwnerStatus = "Inactivo"
)

func (s OwnerStatus) Badge() Badge {
	switch s {
	case OwnerActive:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classSuccess}
	case OwnerPending:
		return Badge{Label: string(s), Variant: VariantSecondary}
	case OwnerInactive:
		return Badge{Label: string(s), Variant: VariantDestructive}
	}
	return neutral(string(s))
}

// Owner is a landlord whose properties are administered.
// BankAccount is never sent to clients unmasked.
type Owner struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	CUIT        string      `json:"cuit"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Properties  int         `json:"properties"`
	TotalIncome int64       `json:"totalIncome"`
	BankAccount string      `json:"-"`
	Status      OwnerStatus `json:"status"`
}

func (o Owner) SearchFields() []string {
	return []string{o.Name, o.CUIT, o.Email}
}

type OwnerStats struct {
	Total         int   `json:"total"`
	Pending       int   `json:"pending"`
	AverageIncome int64 `json:"averageIncome"`
	MultiProperty int   `json:"multiProperty"`
}
