// Package settings holds the four configuration groups of the settings
// page. Values are defaults (optionally overridden by a YAML file); updates
// are validated and echoed back but never stored.
package settings

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/forms"
)

// Group names as used in the URL.
const (
	GroupGeneral       = "general"
	GroupNotifications = "notifications"
	GroupFinancial     = "financial"
	GroupSecurity      = "security"
)

var ErrUnknownGroup = errors.New("unknown settings group")

type General struct {
	CompanyName    string `json:"companyName" yaml:"companyName" validate:"required"`
	CompanyAddress string `json:"companyAddress" yaml:"companyAddress" validate:"required"`
	CompanyPhone   string `json:"companyPhone" yaml:"companyPhone" validate:"required"`
	CompanyEmail   string `json:"companyEmail" yaml:"companyEmail" validate:"required,email"`
	CUIT           string `json:"cuit" yaml:"cuit" validate:"required"`
	Logo           string `json:"logo" yaml:"logo"`
	Timezone       string `json:"timezone" yaml:"timezone" validate:"oneof=America/Argentina/Buenos_Aires America/Argentina/Cordoba America/Argentina/Mendoza"`
	Language       string `json:"language" yaml:"language" validate:"oneof=es en"`
	Currency       string `json:"currency" yaml:"currency" validate:"oneof=ARS USD"`
}

type WorkingHours struct {
	Start string `json:"start" yaml:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" yaml:"end" validate:"required,datetime=15:04"`
}

type Notifications struct {
	EmailNotifications  bool         `json:"emailNotifications" yaml:"emailNotifications"`
	SMSNotifications    bool         `json:"smsNotifications" yaml:"smsNotifications"`
	PaymentReminders    bool         `json:"paymentReminders" yaml:"paymentReminders"`
	ContractExpirations bool         `json:"contractExpirations" yaml:"contractExpirations"`
	OverduePayments     bool         `json:"overduePayments" yaml:"overduePayments"`
	ReminderDays        []int        `json:"reminderDays" yaml:"reminderDays" validate:"dive,gt=0"`
	WorkingHours        WorkingHours `json:"workingHours" yaml:"workingHours"`
}

type BankingDetails struct {
	BankName      string `json:"bankName" yaml:"bankName" validate:"required"`
	AccountNumber string `json:"accountNumber" yaml:"accountNumber" validate:"required,numeric"`
	CBU           string `json:"cbu" yaml:"cbu" validate:"required,numeric,len=22"`
}

type Financial struct {
	DefaultCommission float64        `json:"defaultCommission" yaml:"defaultCommission" validate:"gte=0,lte=100"`
	LatePaymentFee    float64        `json:"latePaymentFee" yaml:"latePaymentFee" validate:"gte=0,lte=100"`
	GracePeriodDays   int            `json:"gracePeriodDays" yaml:"gracePeriodDays" validate:"gte=0"`
	InterestRate      float64        `json:"interestRate" yaml:"interestRate" validate:"gte=0,lte=100"`
	TaxRate           float64        `json:"taxRate" yaml:"taxRate" validate:"gte=0,lte=100"`
	ReceiptTemplate   string         `json:"receiptTemplate" yaml:"receiptTemplate" validate:"required"`
	BankingDetails    BankingDetails `json:"bankingDetails" yaml:"bankingDetails"`
}

type Security struct {
	TwoFactorAuth    bool   `json:"twoFactorAuth" yaml:"twoFactorAuth"`
	SessionTimeout   int    `json:"sessionTimeout" yaml:"sessionTimeout" validate:"gt=0"`
	PasswordExpiry   int    `json:"passwordExpiry" yaml:"passwordExpiry" validate:"gt=0"`
	MaxLoginAttempts int    `json:"maxLoginAttempts" yaml:"maxLoginAttempts" validate:"gt=0"`
	BackupFrequency  string `json:"backupFrequency" yaml:"backupFrequency" validate:"oneof=daily weekly monthly"`
	DataRetention    int    `json:"dataRetention" yaml:"dataRetention" validate:"gt=0"`
}

type Settings struct {
	General       General       `json:"general" yaml:"general"`
	Notifications Notifications `json:"notifications" yaml:"notifications"`
	Financial     Financial     `json:"financial" yaml:"financial"`
	Security      Security      `json:"security" yaml:"security"`
}

var messages = map[string]string{
	"companyName":                  "El nombre de la empresa es requerido",
	"companyAddress":               "La dirección es requerida",
	"companyPhone":                 "El teléfono es requerido",
	"companyEmail":                 "Email inválido",
	"cuit":                         "El CUIT es requerido",
	"timezone":                     "Zona horaria inválida",
	"language":                     "Idioma inválido",
	"currency":                     "Moneda inválida",
	"workingHours.start":           "Hora inválida (HH:MM)",
	"workingHours.end":             "Hora inválida (HH:MM)",
	"bankingDetails.cbu":           "El CBU debe tener 22 dígitos",
	"bankingDetails.accountNumber": "Número de cuenta inválido",
	"backupFrequency":              "Frecuencia inválida",
}

// Defaults returns the values the settings page starts with.
func Defaults() Settings {
	return Settings{
		General: General{
			CompanyName:    "InmoGestor",
			CompanyAddress: "Av. Corrientes 1234, CABA",
			CompanyPhone:   "+54 11 1234-5678",
			CompanyEmail:   "contacto@inmogestor.com",
			CUIT:           "30-12345678-9",
			Timezone:       "America/Argentina/Buenos_Aires",
			Language:       "es",
			Currency:       "ARS",
		},
		Notifications: Notifications{
			EmailNotifications:  true,
			PaymentReminders:    true,
			ContractExpirations: true,
			OverduePayments:     true,
			ReminderDays:        []int{30, 15, 7, 1},
			WorkingHours:        WorkingHours{Start: "09:00", End: "18:00"},
		},
		Financial: Financial{
			DefaultCommission: 10,
			LatePaymentFee:    5,
			GracePeriodDays:   10,
			InterestRate:      3,
			TaxRate:           21,
			ReceiptTemplate:   "template_1",
			BankingDetails: BankingDetails{
				BankName:      "Banco Nación",
				AccountNumber: "1234567890123456789012",
				CBU:           "0110123456789012345678",
			},
		},
		Security: Security{
			SessionTimeout:   30,
			PasswordExpiry:   90,
			MaxLoginAttempts: 3,
			BackupFrequency:  "daily",
			DataRetention:    365,
		},
	}
}

// LoadFile overlays the YAML file at path on the defaults. An empty path
// returns the defaults.
func LoadFile(path string) (Settings, error) {
	s := Defaults()
	if path == "" {
		return s, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read settings file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	for _, g := range []string{GroupGeneral, GroupNotifications, GroupFinancial, GroupSecurity} {
		if err := apperr.NewValidation(forms.Check(s.group(g), messages)); err != nil {
			return s, fmt.Errorf("settings file %s, group %s: %w", path, g, err)
		}
	}
	return s, nil
}

func (s *Settings) group(name string) any {
	switch name {
	case GroupGeneral:
		return &s.General
	case GroupNotifications:
		return &s.Notifications
	case GroupFinancial:
		return &s.Financial
	case GroupSecurity:
		return &s.Security
	}
	return nil
}

// Merge applies a partial JSON update of one group to a copy of s and
// returns the validated result. s itself is not modified.
func (s Settings) Merge(group string, body []byte) (any, error) {
	cp := s
	cp.Notifications.ReminderDays = append([]int(nil), s.Notifications.ReminderDays...)

	target := cp.group(group)
	if target == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGroup, group)
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return nil, apperr.NewValidation(map[string]string{"body": "Cuerpo de la solicitud inválido: " + err.Error()})
	}

	if err := apperr.NewValidation(forms.Check(target, messages)); err != nil {
		return nil, err
	}
	return target, nil
}
