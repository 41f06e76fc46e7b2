package models

type BackupStatus string

const (
	BackupCompleted  BackupStatus = "Completado"
	BackupInProgress BackupStatus = "En Progreso"
	BackupFailed     BackupStatus = "Error"
)

func (s BackupStatus) Badge() Badge {
	switch s {
	case BackupCompleted:
		return Badge{Label: string(s), Variant: VariantDefault, ClassName: classSuccess, Icon: IconCheckCircle}
	case BackupInProgress:
		return Badge{Label: string(s), Variant: VariantSecondary, ClassName: classWarning, Icon: IconClock}
	case BackupFailed:
		return Badge{Label: string(s), Variant: VariantDestructive, ClassName: classDestructive, Icon: IconAlertTriangle}
	}
	return neutralWithIcon(string(s))
}

type BackupType string

const (
	BackupFull        BackupType = "Completo"
	BackupIncremental BackupType = "Incremental"
	BackupManual      BackupType = "Manual"
)

func (t BackupType) Badge() Badge {
	switch t {
	case BackupFull:
		return Badge{Label: string(t), Variant: VariantDefault, ClassName: classPrimary}
	case BackupIncremental:
		return Badge{Label: string(t), Variant: VariantDefault, ClassName: "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-200"}
	case BackupManual:
		return Badge{Label: string(t), Variant: VariantDefault, ClassName: "bg-purple-100 text-purple-800 dark:bg-purple-900 dark:text-purple-200"}
	}
	return Badge{Label: string(t), Variant: VariantDefault, ClassName: classMuted}
}

// Backup is a record of a past database backup. Size is text like "45.2 MB"
// and Duration is HH:MM:SS.
type Backup struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        BackupType   `json:"type"`
	Date        string       `json:"date"`
	Size        string       `json:"size"`
	Status      BackupStatus `json:"status"`
	Duration    string       `json:"duration"`
	Description string       `json:"description"`
	Tables      []string     `json:"tables"`
}

func (b Backup) SearchFields() []string {
	return []string{b.Name, string(b.Type), b.Description}
}

// LastBackup summarises the most recent completed backup.
type LastBackup struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Size     string `json:"size"`
	Duration string `json:"duration"`
	Tables   int    `json:"tables"`
}

type BackupStats struct {
	Total       int         `json:"total"`
	Completed   int         `json:"completed"`
	TotalSizeMB float64     `json:"totalSizeMB"`
	TotalSize   string      `json:"totalSize"`
	Errors      int         `json:"errors"`
	Last        *LastBackup `json:"lastBackup"`
}
