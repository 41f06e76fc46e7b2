package forms

import (
	"github.com/shopspring/decimal"

	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

// ContractLookup resolves the contracts offered by the payment dialog.
type ContractLookup interface {
	LookupContract(id string) (fixtures.ContractOption, bool)
}

// PaymentForm is the body of the Add Payment dialog. Amounts may carry
// cents; the fine is optional.
type PaymentForm struct {
	ContractID    string               `json:"contractId" validate:"required"`
	Tenant        string               `json:"tenant" validate:"required"`
	Property      string               `json:"property" validate:"required"`
	Period        string               `json:"period" validate:"required"`
	Amount        decimal.Decimal      `json:"amount" validate:"gte=0.01"`
	FineAmount    decimal.Decimal      `json:"fineAmount"`
	DueDate       string               `json:"dueDate" validate:"required,datetime=2006-01-02"`
	PaymentDate   string               `json:"paymentDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Status        models.PaymentStatus `json:"status" validate:"paymentstatus"`
	ReceiptNumber string               `json:"receiptNumber,omitempty"`
}

var paymentMessages = map[string]string{
	"contractId":  "Seleccione un contrato",
	"tenant":      "El nombre del inquilino es requerido",
	"property":    "La propiedad es requerida",
	"period":      "El período es requerido",
	"amount":      "El monto debe ser mayor a 0",
	"dueDate":     "La fecha de vencimiento es requerida",
	"paymentDate": "Fecha de pago inválida",
	"status":      "Seleccione un estado válido",
}

// DefaultPaymentForm is the blank dialog.
func DefaultPaymentForm() PaymentForm {
	return PaymentForm{Status: models.PaymentPending}
}

// Validate checks the field rules only; see Resolve for the contract.
func (f *PaymentForm) Validate() map[string]string {
	return Check(f, paymentMessages)
}

// Resolve overwrites tenant and property from the selected contract, as the
// dialog does on selection, and validates the result. An id the lookup does
// not know is reported on contractId.
func (f *PaymentForm) Resolve(lookup ContractLookup) map[string]string {
	known := true
	if f.ContractID != "" {
		var fill AutoFill
		fill, known = Fill(lookup, f.ContractID)
		if known {
			f.Tenant = fill.Tenant
			f.Property = fill.Property
		}
	}

	errs := f.Validate()
	if !known {
		errs["contractId"] = paymentMessages["contractId"]
	}
	return errs
}

// Bound attaches lookup so Dialog.Submit runs Resolve.
func (f *PaymentForm) Bound(lookup ContractLookup) Validatable {
	return boundPayment{form: f, lookup: lookup}
}

type boundPayment struct {
	form   *PaymentForm
	lookup ContractLookup
}

func (b boundPayment) Validate() map[string]string { return b.form.Resolve(b.lookup) }

// Payment builds the record that would be stored.
func (f *PaymentForm) Payment(id string) models.Payment {
	p := models.Payment{
		ID:          id,
		ContractID:  f.ContractID,
		Tenant:      f.Tenant,
		Property:    f.Property,
		Period:      f.Period,
		Amount:      f.Amount,
		FineAmount:  f.FineAmount,
		TotalAmount: f.Amount.Add(f.FineAmount),
		DueDate:     f.DueDate,
		Status:      f.Status,
	}
	if f.PaymentDate != "" {
		d := f.PaymentDate
		p.PaymentDate = &d
	}
	if f.ReceiptNumber != "" {
		r := f.ReceiptNumber
		p.ReceiptNumber = &r
	}
	return p
}

// AutoFill is what selecting a contract writes into the dialog. Both
// fields stay read-only afterwards.
type AutoFill struct {
	ContractID       string `json:"contractId"`
	Tenant           string `json:"tenant"`
	Property         string `json:"property"`
	TenantDisabled   bool   `json:"tenantDisabled"`
	PropertyDisabled bool   `json:"propertyDisabled"`
}

// Fill looks up id. The contract's status is not checked.
func Fill(lookup ContractLookup, id string) (AutoFill, bool) {
	c, ok := lookup.LookupContract(id)
	if !ok {
		return AutoFill{}, false
	}
	return AutoFill{
		ContractID:       c.ID,
		Tenant:           c.Tenant,
		Property:         c.Property,
		TenantDisabled:   true,
		PropertyDisabled: true,
	}, true
}

// PaymentToast is shown after a registration.
var PaymentToast = Toast{Title: "Pago registrado", Description: "El pago se ha registrado exitosamente."}

// PaymentSchema describes the dialog for the frontend.
func PaymentSchema(contracts []fixtures.ContractOption) Schema {
	opts := make([]Option, 0, len(contracts))
	for _, c := range contracts {
		opts = append(opts, Option{Value: c.ID, Label: c.ID + " - " + c.Tenant})
	}

	statuses := make([]Option, 0, len(models.PaymentStatuses))
	for _, s := range models.PaymentStatuses {
		statuses = append(statuses, Option{Value: string(s), Label: string(s)})
	}

	return Schema{
		Title: "Registrar Nuevo Pago",
		Fields: []Field{
			{Name: "contractId", Label: "Contrato", Type: "select", Required: true, Placeholder: "Seleccionar contrato", Options: opts},
			{Name: "period", Label: "Período", Type: "text", Required: true, Placeholder: "Ej: Enero 2024"},
			{Name: "tenant", Label: "Inquilino", Type: "text", Required: true, Disabled: true, Placeholder: "Nombre del inquilino"},
			{Name: "property", Label: "Propiedad", Type: "text", Required: true, Disabled: true, Placeholder: "Dirección de la propiedad"},
			{Name: "amount", Label: "Monto Base", Type: "number", Required: true, Placeholder: "0.00"},
			{Name: "fineAmount", Label: "Monto Mora (Opcional)", Type: "number", Placeholder: "0.00"},
			{Name: "dueDate", Label: "Fecha de Vencimiento", Type: "date", Required: true},
			{Name: "status", Label: "Estado", Type: "select", Required: true, Options: statuses},
			{Name: "paymentDate", Label: "Fecha de Pago", Type: "date"},
			{Name: "receiptNumber", Label: "Número de Recibo", Type: "text", Placeholder: "RC-001-2024"},
		},
		Defaults: DefaultPaymentForm(),
	}
}
