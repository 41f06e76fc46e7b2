// Package fixtures holds the literal records the dashboard ships with.
// Every function returns a fresh slice so callers cannot alias the data.
package fixtures

import (
	"github.com/shopspring/decimal"

	"inmogestor-backend/internal/models"
)

func ptr[T any](v T) *T { return &v }

func pesos(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// Tenants returns the tenants page records.
func Tenants() []models.Tenant {
	return []models.Tenant{
		{ID: 1, Name: "Juan Pérez", DNI: "12345678", Email: "juan.perez@email.com", Phone: "+54 11 1234-5678", Property: "Av. Corrientes 1234", ContractStatus: models.TenantActive, RentAmount: 45000, LastPayment: "2024-01-15"},
		{ID: 2, Name: "María García", DNI: "87654321", Email: "maria.garcia@email.com", Phone: "+54 11 8765-4321", Property: "San Martín 567", ContractStatus: models.TenantActive, RentAmount: 38000, LastPayment: "2024-01-10"},
		{ID: 3, Name: "Carlos López", DNI: "11223344", Email: "carlos.lopez@email.com", Phone: "+54 11 1122-3344", Property: "Rivadavia 890", ContractStatus: models.TenantPending, RentAmount: 52000, LastPayment: "2024-01-13"},
		{ID: 4, Name: "Ana Rodríguez", DNI: "44332211", Email: "ana.rodriguez@email.com", Phone: "+54 11 4433-2211", Property: "Belgrano 456", ContractStatus: models.TenantDelinquent, RentAmount: 41000, LastPayment: "2023-12-15"},
	}
}

// Owners returns the owners page records.
func Owners() []models.Owner {
	return []models.Owner{
		{ID: 1, Name: "Roberto Fernández", CUIT: "20-12345678-9", Email: "roberto.fernandez@email.com", Phone: "+54 11 1234-5678", Properties: 3, TotalIncome: 135000, BankAccount: "1234567890123456789012", Status: models.OwnerActive},
		{ID: 2, Name: "Elena Martínez", CUIT: "27-87654321-4", Email: "elena.martinez@email.com", Phone: "+54 11 8765-4321", Properties: 2, TotalIncome: 89000, BankAccount: "9876543210987654321098", Status: models.OwnerActive},
		{ID: 3, Name: "Miguel Santos", CUIT: "20-11223344-5", Email: "miguel.santos@email.com", Phone: "+54 11 1122-3344", Properties: 1, TotalIncome: 45000, BankAccount: "1122334455667788990011", Status: models.OwnerPending},
		{ID: 4, Name: "Carmen Vega", CUIT: "27-44332211-8", Email: "carmen.vega@email.com", Phone: "+54 11 4433-2211", Properties: 4, TotalIncome: 180000, BankAccount: "4433221155667788990044", Status: models.OwnerActive},
	}
}

// Properties returns the properties page records.
func Properties() []models.Property {
	return []models.Property{
		{ID: 1, Address: "Av. Corrientes 1234, CABA", Type: "Departamento", Surface: 85, Bedrooms: 2, Bathrooms: 1, Owner: "Roberto Fernández", Status: models.PropertyOccupied, RentAmount: 45000, Amenities: []string{"Balcón", "Cocina integrada", "Portero 24hs"}, Image: "/assets/property1.jpg"},
		{ID: 2, Address: "San Martín 567, Villa Crespo", Type: "Casa", Surface: 120, Bedrooms: 3, Bathrooms: 2, Owner: "Elena Martínez", Status: models.PropertyAvailable, RentAmount: 65000, Amenities: []string{"Patio", "Cochera", "Parrilla"}, Image: "/assets/property2.jpg"},
		{ID: 3, Address: "Rivadavia 890, Caballito", Type: "Departamento", Surface: 65, Bedrooms: 1, Bathrooms: 1, Owner: "Miguel Santos", Status: models.PropertyOccupied, RentAmount: 38000, Amenities: []string{"Balcón", "Laundry"}, Image: "/assets/property3.jpg"},
		{ID: 4, Address: "Belgrano 456, Palermo", Type: "PH", Surface: 95, Bedrooms: 2, Bathrooms: 2, Owner: "Carmen Vega", Status: models.PropertyMaintenance, RentAmount: 55000, Amenities: []string{"Terraza", "Cochera", "Pileta"}, Image: "/assets/property4.jpg"},
	}
}

// Contracts returns the contracts page records.
func Contracts() []models.Contract {
	return []models.Contract{
		{ID: "CT-001", Tenant: "Juan Pérez", Property: "Av. Corrientes 1234", Owner: "Roberto Fernández", StartDate: "2024-01-01", EndDate: "2025-12-31", MonthlyRent: 45000, Commission: 10, Status: models.ContractActive, Deposit: 45000, WarrantyType: "Garante"},
		{ID: "CT-002", Tenant: "María García", Property: "San Martín 567", Owner: "Elena Martínez", StartDate: "2024-02-01", EndDate: "2026-01-31", MonthlyRent: 38000, Commission: 8, Status: models.ContractPending, Deposit: 76000, WarrantyType: "Seguro de Caución"},
		{ID: "CT-003", Tenant: "Carlos López", Property: "Rivadavia 890", Owner: "Miguel Santos", StartDate: "2023-06-01", EndDate: "2025-05-31", MonthlyRent: 52000, Commission: 12, Status: models.ContractExpiring, Deposit: 52000, WarrantyType: "Garante"},
		{ID: "CT-004", Tenant: "Ana Rodríguez", Property: "Belgrano 456", Owner: "Carmen Vega", StartDate: "2024-03-01", EndDate: "2026-02-28", MonthlyRent: 41000, Commission: 10, Status: models.ContractTerminated, Deposit: 82000, WarrantyType: "Seguro de Caución"},
	}
}

// Payments returns the payments page records.
func Payments() []models.Payment {
	return []models.Payment{
		{ID: "PG-001", ContractID: "CT-001", Tenant: "Juan Pérez", Property: "Av. Corrientes 1234", Period: "Enero 2024", Amount: pesos(45000), FineAmount: pesos(0), TotalAmount: pesos(45000), DueDate: "2024-01-10", PaymentDate: ptr("2024-01-08"), Status: models.PaymentPaid, ReceiptNumber: ptr("RC-001-2024")},
		{ID: "PG-002", ContractID: "CT-002", Tenant: "María García", Property: "San Martín 567", Period: "Enero 2024", Amount: pesos(38000), FineAmount: pesos(0), TotalAmount: pesos(38000), DueDate: "2024-01-10", Status: models.PaymentPending},
		{ID: "PG-003", ContractID: "CT-003", Tenant: "Carlos López", Property: "Rivadavia 890", Period: "Diciembre 2023", Amount: pesos(52000), FineAmount: pesos(7800), TotalAmount: pesos(59800), DueDate: "2023-12-10", PaymentDate: ptr("2024-01-15"), Status: models.PaymentPaidLate, ReceiptNumber: ptr("RC-003-2024")},
		{ID: "PG-004", ContractID: "CT-004", Tenant: "Ana Rodríguez", Property: "Belgrano 456", Period: "Noviembre 2023", Amount: pesos(41000), FineAmount: pesos(12300), TotalAmount: pesos(53300), DueDate: "2023-11-10", Status: models.PaymentOverdue},
	}
}

// devPasswordHash holds bcrypt hashes of the development password
// "inmogestor-dev".
var devPasswordHash = map[string]string{
	"admin":  "$2a$10$BaczNYIZrmyBTxKLEe1Eg.FDkix.0qkRo2/9ANa8k7WE.oxaWIGPi",
	"carlos": "$2a$10$0xtrkoDoTe.GmkLNp8iVv.kP7V0MMuopMVnxQ/LO5fvqQxGUJKWGq",
	"ana":    "$2a$10$virXULcA6Suggh/NlITfNutPfS9u5hlsdAM/7RqiAKJBiyRajHXE.",
	"luis":   "$2a$10$Oe2ONBJAMebkmghrrjd5w.W8z2kC7iIZ.jAGeEytDFlRooJq86h1W",
}

// Users returns the staff accounts.
func Users() []models.User {
	return []models.User{
		{ID: 1, Name: "Admin Principal", Email: "admin@inmobiliariaplus.com", Phone: "+54 11 1234-5678", Role: models.RoleAdmin, Status: models.UserActive, LastLogin: "2024-01-15 14:30", CreatedAt: "2023-01-15", PasswordHash: devPasswordHash["admin"]},
		{ID: 2, Name: "Carlos Manager", Email: "carlos@inmobiliariaplus.com", Phone: "+54 11 8765-4321", Role: models.RoleManager, Status: models.UserActive, LastLogin: "2024-01-14 09:15", CreatedAt: "2023-03-20", PasswordHash: devPasswordHash["carlos"]},
		{ID: 3, Name: "Ana Operadora", Email: "ana@inmobiliariaplus.com", Phone: "+54 11 1122-3344", Role: models.RoleOperator, Status: models.UserActive, LastLogin: "2024-01-13 16:45", CreatedAt: "2023-06-10", PasswordHash: devPasswordHash["ana"]},
		{ID: 4, Name: "Luis Soporte", Email: "luis@inmobiliariaplus.com", Phone: "+54 11 4433-2211", Role: models.RoleOperator, Status: models.UserInactive, LastLogin: "2023-12-20 11:20", CreatedAt: "2023-08-05", PasswordHash: devPasswordHash["luis"]},
	}
}

// Notifications returns the notification centre records, newest first.
func Notifications() []models.Notification {
	return []models.Notification{
		{ID: 1, Type: models.NotificationPaymentOverdue, Title: "Pago Vencido", Message: "Ana Rodríguez - Belgrano 456 - Mora de 65 días", Tenant: "Ana Rodríguez", Property: "Belgrano 456", Amount: ptr(int64(53300)), DaysOverdue: ptr(65), Date: "2024-01-20", Priority: models.PriorityHigh, Status: models.NotificationUnread, Category: "Morosos"},
		{ID: 2, Type: models.NotificationContractExpiring, Title: "Contrato por Vencer", Message: "Carlos López - Rivadavia 890 - Vence en 120 días", Tenant: "Carlos López", Property: "Rivadavia 890", DaysToExpire: ptr(120), Date: "2024-01-19", Priority: models.PriorityMedium, Status: models.NotificationUnread, Category: "Contratos"},
		{ID: 3, Type: models.NotificationPaymentPending, Title: "Pago Pendiente", Message: "María García - San Martín 567 - Alquiler Enero 2024", Tenant: "María García", Property: "San Martín 567", Amount: ptr(int64(38000)), Period: ptr("Enero 2024"), Date: "2024-01-18", Priority: models.PriorityMedium, Status: models.NotificationRead, Category: "Pagos"},
		{ID: 4, Type: models.NotificationContractExpiring, Title: "Contrato por Vencer", Message: "Luis Morales - Santa Fe 234 - Vence en 60 días", Tenant: "Luis Morales", Property: "Santa Fe 234", DaysToExpire: ptr(60), Date: "2024-01-17", Priority: models.PriorityHigh, Status: models.NotificationRead, Category: "Contratos"},
	}
}

var allTables = []string{"users", "tenants", "owners", "properties", "contracts", "payments"}

// Backups returns the backup history, newest first.
func Backups() []models.Backup {
	return []models.Backup{
		{ID: "BK-001", Name: "backup_completo_2024_01_20", Type: models.BackupFull, Date: "2024-01-20 03:00:00", Size: "45.2 MB", Status: models.BackupCompleted, Duration: "00:02:34", Description: "Backup automático programado", Tables: append([]string(nil), allTables...)},
		{ID: "BK-002", Name: "backup_incremental_2024_01_19", Type: models.BackupIncremental, Date: "2024-01-19 15:30:00", Size: "8.7 MB", Status: models.BackupCompleted, Duration: "00:00:45", Description: "Backup incremental manual", Tables: []string{"payments", "contracts"}},
		{ID: "BK-003", Name: "backup_completo_2024_01_15", Type: models.BackupFull, Date: "2024-01-15 03:00:00", Size: "43.8 MB", Status: models.BackupCompleted, Duration: "00:02:28", Description: "Backup automático programado", Tables: append([]string(nil), allTables...)},
		{ID: "BK-004", Name: "backup_manual_2024_01_12", Type: models.BackupManual, Date: "2024-01-12 16:45:00", Size: "41.1 MB", Status: models.BackupFailed, Duration: "00:01:12", Description: "Error al acceder a tabla de contratos", Tables: []string{"users", "tenants", "owners", "properties"}},
	}
}

// Dashboard returns the landing-page numbers and previews.
func Dashboard() models.Dashboard {
	return models.Dashboard{
		Stats: models.DashboardStats{
			TotalProperties:    124,
			ActiveTenants:      98,
			ActiveContracts:    87,
			MonthlyRevenue:     245000,
			PendingPayments:    12,
			ExpiringContracts:  8,
			MaintenanceRequest: 5,
			OccupancyRate:      92,
		},
		RecentPayments: []models.RecentPayment{
			{ID: 1, Tenant: "Juan Pérez", Property: "Av. Corrientes 1234", Amount: 45000, Date: "2024-01-15", Status: models.DashboardPaid},
			{ID: 2, Tenant: "María García", Property: "San Martín 567", Amount: 38000, Date: "2024-01-14", Status: models.DashboardPending},
			{ID: 3, Tenant: "Carlos López", Property: "Rivadavia 890", Amount: 52000, Date: "2024-01-13", Status: models.DashboardPaid},
		},
		ExpiringContracts: []models.ExpiringContractPreview{
			{ID: 1, Tenant: "Ana Rodríguez", Property: "Belgrano 456", ExpiryDate: "2024-02-28", DaysLeft: 15},
			{ID: 2, Tenant: "Luis Martínez", Property: "Mitre 789", ExpiryDate: "2024-03-15", DaysLeft: 30},
		},
	}
}

// Reports returns the datasets of the reports page. The expiring-contracts
// list includes CT-001 with an end date before 2025 so range filters have
// something to exclude.
func Reports() models.ReportData {
	return models.ReportData{
		ExpiringContracts: []models.ExpiringContractRow{
			{ContractID: "CT-001", Tenant: "Juan Pérez", Property: "Av. Corrientes 1234", EndDate: "2024-12-15"},
			{ContractID: "CT-003", Tenant: "Carlos López", Property: "Rivadavia 890", EndDate: "2025-05-31"},
			{ContractID: "CT-007", Tenant: "Luis Morales", Property: "Santa Fe 234", EndDate: "2025-07-15"},
			{ContractID: "CT-012", Tenant: "Patricia Silva", Property: "Córdoba 789", EndDate: "2025-08-30"},
			{ContractID: "CT-015", Tenant: "Jorge Martín", Property: "Alsina 123", EndDate: "2025-10-31"},
		},
		PropertyInventory: []models.InventoryRow{
			{ID: 1, Address: "Av. Corrientes 1234", Type: "Departamento", Status: models.PropertyOccupied, RentAmount: 45000},
			{ID: 2, Address: "San Martín 567", Type: "Casa", Status: models.PropertyAvailable, RentAmount: 65000},
			{ID: 3, Address: "Rivadavia 890", Type: "Departamento", Status: models.PropertyOccupied, RentAmount: 38000},
			{ID: 4, Address: "Belgrano 456", Type: "PH", Status: models.PropertyMaintenance, RentAmount: 55000},
		},
		Delinquency: []models.DelinquencyRow{
			{Tenant: "Ana Rodríguez", Property: "Belgrano 456", Amount: 53300, DaysOverdue: 65, Date: "2023-11-10"},
			{Tenant: "Jorge Martín", Property: "Alsina 123", Amount: 47000, DaysOverdue: 45, Date: "2023-12-05"},
			{Tenant: "Sofia Herrera", Property: "Defensa 678", Amount: 39500, DaysOverdue: 15, Date: "2024-01-05"},
		},
		MonthlyIncome: []models.MonthlyIncomeRow{
			{Month: "Enero 2024", Date: "2024-01-01", Collected: 287000, Pending: 53300, Commission: 28700, NetOwners: 258300},
			{Month: "Diciembre 2023", Date: "2023-12-01", Collected: 295000, Pending: 0, Commission: 29500, NetOwners: 265500},
			{Month: "Noviembre 2023", Date: "2023-11-01", Collected: 278000, Pending: 47000, Commission: 27800, NetOwners: 250200},
		},
	}
}

// ContractOption is an entry of the Add Payment contract selector.
type ContractOption struct {
	ID       string `json:"id"`
	Tenant   string `json:"tenant"`
	Property string `json:"property"`
}

// PaymentContracts returns the contracts offered by the Add Payment dialog.
func PaymentContracts() []ContractOption {
	return []ContractOption{
		{ID: "CT-001", Tenant: "Juan Pérez", Property: "Av. Corrientes 1234"},
		{ID: "CT-002", Tenant: "María García", Property: "San Martín 567"},
		{ID: "CT-003", Tenant: "Carlos López", Property: "Rivadavia 890"},
		{ID: "CT-004", Tenant: "Ana Rodríguez", Property: "Belgrano 456"},
	}
}
