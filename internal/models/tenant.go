package models

// TenantContractStatus is the contract state shown next to a tenant.
type TenantContractStatus string

const (
	TenantActive     TenantContractStatus = "Activo"
	TenantPending    TenantContractStatus = "Pendiente"
	TenantDelinquent TenantContractStatus = "Moroso"
)

// Badge maps the status to its display; only Activo is coloured.
func (s TenantContractStatus) Badge() Badge {
	switch s {
	case TenantActive:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classSuccess}
	case TenantPending:
		return Badge{Label: string(s), Variant: VariantSecondary}
	case TenantDelinquent:
		return Badge{Label: string(s), Variant: VariantDestructive}
	}
	return neutral(string(s))
}

// Tenant is a person renting a property.
type Tenant struct {
	ID             int                  `json:"id"`
	Name           string               `json:"name"`
	DNI            string               `json:"dni"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Property       string               `json:"property"`
	ContractStatus TenantContractStatus `json:"contractStatus"`
	RentAmount     int64                `json:"rentAmount"`
	LastPayment    string               `json:"lastPayment"`
}

// SearchFields lists the values matched by the tenants search box.
func (t Tenant) SearchFields() []string {
	return []string{t.Name, t.DNI, t.Email}
}

// TenantStats are the summary cards of the tenants page.
type TenantStats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Pending    int `json:"pending"`
	Delinquent int `json:"delinquent"`
}
