// Package models holds the entities served by the dashboard API and the
// closed status sets each page renders as badges.
package models

// Badge is the display form of an enumerated status: a label, a variant
// understood by the frontend badge component, optional utility classes and
// an icon name.
type Badge struct {
	Label     string `json:"label"`
	Variant   string `json:"variant"`
	ClassName string `json:"className,omitempty"`
	Icon      string `json:"icon,omitempty"`
}

// Variants understood by the frontend.
const (
	VariantDefault     = "default"
	VariantSecondary   = "secondary"
	VariantDestructive = "destructive"
	VariantOutline     = "outline"
)

// Utility classes reused across badge tables.
const (
	classSuccess     = "bg-success text-success-foreground"
	classWarning     = "bg-warning text-warning-foreground"
	classPrimary     = "bg-primary text-primary-foreground"
	classMuted       = "bg-muted text-muted-foreground"
	classDestructive = "bg-destructive text-destructive-foreground"
)

// Icon names.
const (
	IconCheckCircle   = "CheckCircle"
	IconClock         = "Clock"
	IconAlertCircle   = "AlertCircle"
	IconAlertTriangle = "AlertTriangle"
	IconDollarSign    = "DollarSign"
	IconCalendar      = "Calendar"
	IconBell          = "Bell"
)

// neutral is returned for any value outside a badge table.
func neutral(label string) Badge {
	return Badge{Label: label, Variant: VariantSecondary}
}

// neutralWithIcon is the fallback for tables that always render an icon.
func neutralWithIcon(label string) Badge {
	return Badge{Label: label, Variant: VariantSecondary, Icon: IconClock}
}
