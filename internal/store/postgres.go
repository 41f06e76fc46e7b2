package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"inmogestor-backend/internal/apperr"
	"inmogestor-backend/internal/database"
	"inmogestor-backend/internal/fixtures"
	"inmogestor-backend/internal/models"
)

// PostgresSource reads a snapshot of the entity tables. The dashboard,
// report and contract-selector datasets are not stored in the database and
// come from the fixtures.
type PostgresSource struct {
	db database.Service
}

func NewPostgresSource(db database.Service) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Name() string { return "postgres" }

func (s *PostgresSource) Load(ctx context.Context) (*Dataset, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	pool := s.db.GetPool()
	d := &Dataset{
		Dashboard:        fixtures.Dashboard(),
		Reports:          fixtures.Reports(),
		PaymentContracts: fixtures.PaymentContracts(),
	}

	var err error
	if d.Tenants, err = queryAll(ctx, pool, "tenants", `
		SELECT id, name, dni, email, phone, property, contract_status, rent_amount,
			COALESCE(last_payment::text, '')
		FROM tenants ORDER BY id`,
		func(row pgx.Rows) (models.Tenant, error) {
			var t models.Tenant
			err := row.Scan(&t.ID, &t.Name, &t.DNI, &t.Email, &t.Phone, &t.Property, &t.ContractStatus, &t.RentAmount, &t.LastPayment)
			return t, err
		}); err != nil {
		return nil, err
	}

	if d.Owners, err = queryAll(ctx, pool, "owners", `
		SELECT id, name, cuit, email, phone, properties, total_income, bank_account, status
		FROM owners ORDER BY id`,
		func(row pgx.Rows) (models.Owner, error) {
			var o models.Owner
			err := row.Scan(&o.ID, &o.Name, &o.CUIT, &o.Email, &o.Phone, &o.Properties, &o.TotalIncome, &o.BankAccount, &o.Status)
			return o, err
		}); err != nil {
		return nil, err
	}

	if d.Properties, err = queryAll(ctx, pool, "properties", `
		SELECT id, address, type, surface, bedrooms, bathrooms, owner, status, rent_amount,
			COALESCE(amenities, '{}'), COALESCE(image, '')
		FROM properties ORDER BY id`,
		func(row pgx.Rows) (models.Property, error) {
			var p models.Property
			err := row.Scan(&p.ID, &p.Address, &p.Type, &p.Surface, &p.Bedrooms, &p.Bathrooms, &p.Owner, &p.Status, &p.RentAmount, &p.Amenities, &p.Image)
			return p, err
		}); err != nil {
		return nil, err
	}

	if d.Contracts, err = queryAll(ctx, pool, "contracts", `
		SELECT id, tenant, property, owner, start_date::text, end_date::text,
			monthly_rent, commission, status, deposit, warranty_type
		FROM contracts ORDER BY id`,
		func(row pgx.Rows) (models.Contract, error) {
			var c models.Contract
			err := row.Scan(&c.ID, &c.Tenant, &c.Property, &c.Owner, &c.StartDate, &c.EndDate, &c.MonthlyRent, &c.Commission, &c.Status, &c.Deposit, &c.WarrantyType)
			return c, err
		}); err != nil {
		return nil, err
	}

	if d.Payments, err = queryAll(ctx, pool, "payments", `
		SELECT id, contract_id, tenant, property, period, amount::text, fine_amount::text, total_amount::text,
			due_date::text, payment_date::text, status, receipt_number
		FROM payments ORDER BY id`,
		func(row pgx.Rows) (models.Payment, error) {
			var p models.Payment
			err := row.Scan(&p.ID, &p.ContractID, &p.Tenant, &p.Property, &p.Period, &p.Amount, &p.FineAmount, &p.TotalAmount, &p.DueDate, &p.PaymentDate, &p.Status, &p.ReceiptNumber)
			return p, err
		}); err != nil {
		return nil, err
	}

	if d.Notifications, err = queryAll(ctx, pool, "notifications", `
		SELECT id, type, title, message, tenant, property, amount, days_overdue,
			days_to_expire, period, date::text, priority, status, category
		FROM notifications ORDER BY date DESC, id`,
		func(row pgx.Rows) (models.Notification, error) {
			var n models.Notification
			err := row.Scan(&n.ID, &n.Type, &n.Title, &n.Message, &n.Tenant, &n.Property, &n.Amount, &n.DaysOverdue, &n.DaysToExpire, &n.Period, &n.Date, &n.Priority, &n.Status, &n.Category)
			return n, err
		}); err != nil {
		return nil, err
	}

	if d.Backups, err = queryAll(ctx, pool, "backups", `
		SELECT id, name, type, to_char(date, 'YYYY-MM-DD HH24:MI:SS'), size, status,
			duration, description, COALESCE(tables, '{}')
		FROM backups ORDER BY date DESC`,
		func(row pgx.Rows) (models.Backup, error) {
			var b models.Backup
			err := row.Scan(&b.ID, &b.Name, &b.Type, &b.Date, &b.Size, &b.Status, &b.Duration, &b.Description, &b.Tables)
			return b, err
		}); err != nil {
		return nil, err
	}

	if d.Users, err = queryAll(ctx, pool, "users", `
		SELECT id, name, email, phone, role, status,
			COALESCE(to_char(last_login, 'YYYY-MM-DD HH24:MI'), ''), created_at::date::text,
			COALESCE(password_hash, '')
		FROM users ORDER BY id`,
		func(row pgx.Rows) (models.User, error) {
			var u models.User
			err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Phone, &u.Role, &u.Status, &u.LastLogin, &u.CreatedAt, &u.PasswordHash)
			return u, err
		}); err != nil {
		return nil, err
	}

	return d, nil
}

// querier is the subset of pgxpool.Pool used here.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// queryAll scans every row of sql. Connection and scan failures are
// transient; the snapshot can be retried on the next start.
func queryAll[T any](ctx context.Context, q querier, table, sql string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, sql)
	if err != nil {
		return nil, apperr.Transient("query "+table, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, apperr.Transient("scan "+table, fmt.Errorf("row %d: %w", len(out)+1, err))
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Transient("read "+table, err)
	}
	return out, nil
}
