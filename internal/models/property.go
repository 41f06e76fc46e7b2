package models

type PropertyStatus string

const (
	PropertyOccupied    PropertyStatus = "Ocupado"
	PropertyAvailable   PropertyStatus = "Disponible"
	PropertyMaintenance PropertyStatus = "Mantenimiento"
)

// Badge is the coloured variant used on the properties page.
func (s PropertyStatus) Badge() Badge {
	switch s {
	case PropertyOccupied:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classPrimary}
	case PropertyAvailable:
		return Badge{Label: string(s), Variant: VariantSecondary, ClassName: "bg-success text-success-foreground"}
	case PropertyMaintenance:
		return Badge{Label: string(s), Variant: VariantDestructive, ClassName: classWarning}
	}
	return neutral(string(s))
}

// InventoryBadge is the plain variant used in the inventory report.
func (s PropertyStatus) InventoryBadge() Badge {
	switch s {
	case PropertyOccupied:
		return Badge{Label: string(s), Variant: VariantDefault}
	case PropertyAvailable:
		return Badge{Label: string(s), Variant: VariantSecondary}
	case PropertyMaintenance:
		return Badge{Label: string(s), Variant: VariantDestructive}
	}
	return neutral(string(s))
}

// Property is a rentable unit. Surface is in square metres.
type Property struct {
	ID         int            `json:"id"`
	Address    string         `json:"address"`
	Type       string         `json:"type"`
	Surface    int            `json:"surface"`
	Bedrooms   int            `json:"bedrooms"`
	Bathrooms  int            `json:"bathrooms"`
	Owner      string         `json:"owner"`
	Status     PropertyStatus `json:"status"`
	RentAmount int64          `json:"rentAmount"`
	Amenities  []string       `json:"amenities"`
	Image      string         `json:"image"`
}

func (p Property) SearchFields() []string {
	return []string{p.Address, p.Type, p.Owner}
}

type PropertyStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	Occupied    int `json:"occupied"`
	Maintenance int `json:"maintenance"`
}
