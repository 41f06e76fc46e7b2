// Package stats computes the summary cards shown above each list page.
// Every function runs over the full collection, never the search result.
package stats

import (
	"math"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
)

func Tenants(ts []models.Tenant) models.TenantStats {
	s := models.TenantStats{Total: len(ts)}
	for _, t := range ts {
		switch t.ContractStatus {
		case models.TenantActive:
			s.Active++
		case models.TenantPending:
			s.Pending++
		case models.TenantDelinquent:
			s.Delinquent++
		}
	}
	return s
}

// Owners averages income over all owners, rounding half away from zero.
func Owners(owners []models.Owner) models.OwnerStats {
	s := models.OwnerStats{Total: len(owners)}
	var sum int64
	for _, o := range owners {
		sum += o.TotalIncome
		if o.Status == models.OwnerPending {
			s.Pending++
		}
		if o.Properties > 1 {
			s.MultiProperty++
		}
	}
	if len(owners) > 0 {
		s.AverageIncome = int64(math.Round(float64(sum) / float64(len(owners))))
	}
	return s
}

func Properties(ps []models.Property) models.PropertyStats {
	s := models.PropertyStats{Total: len(ps)}
	for _, p := range ps {
		switch p.Status {
		case models.PropertyAvailable:
			s.Available++
		case models.PropertyOccupied:
			s.Occupied++
		case models.PropertyMaintenance:
			s.Maintenance++
		}
	}
	return s
}

func Contracts(cs []models.Contract) models.ContractStats {
	s := models.ContractStats{Total: len(cs)}
	for _, c := range cs {
		switch c.Status {
		case models.ContractActive:
			s.Active++
		case models.ContractPending:
			s.Pending++
		case models.ContractExpiring:
			s.Expiring++
		}
	}
	return s
}

// Payments sums TotalAmount over every payment regardless of status.
func Payments(ps []models.Payment) models.PaymentStats {
	var s models.PaymentStats
	for _, p := range ps {
		s.TotalCollected = s.TotalCollected.Add(p.TotalAmount)
		switch {
		case p.Status.Settled():
			s.Confirmed++
		case p.Status == models.PaymentPending:
			s.Pending++
		case p.Status == models.PaymentOverdue:
			s.Delinquent++
		}
	}
	return s
}

func Users(us []models.User) models.UserStats {
	s := models.UserStats{Total: len(us)}
	for _, u := range us {
		if u.Status == models.UserActive {
			s.Active++
		}
		switch u.Role {
		case models.RoleAdmin:
			s.Admins++
		case models.RoleOperator:
			s.Operators++
		}
	}
	return s
}

func Notifications(ns []models.Notification) models.NotificationStats {
	s := models.NotificationStats{Total: len(ns)}
	for _, n := range ns {
		switch n.Status {
		case models.NotificationUnread:
			s.Unread++
		case models.NotificationRead:
			s.Read++
		}
		if n.Priority == models.PriorityHigh {
			s.High++
		}
	}
	return s
}

// TabCounts returns how many notifications each tab holds.
func TabCounts(ns []models.Notification) map[models.NotificationTab]int {
	counts := map[models.NotificationTab]int{}
	for _, tab := range []models.NotificationTab{models.TabAll, models.TabUnread, models.TabHigh} {
		counts[tab] = 0
		for _, n := range ns {
			if tab.Matches(n) {
				counts[tab]++
			}
		}
	}
	return counts
}

// Backups sums parsed sizes and picks the first completed backup as the
// latest one; the list is ordered newest first. Sizes that do not parse
// count as zero.
func Backups(bs []models.Backup) models.BackupStats {
	s := models.BackupStats{Total: len(bs)}
	var total float64
	for _, b := range bs {
		if mb, ok := format.ParseSizeMB(b.Size); ok {
			total += mb
		}
		switch b.Status {
		case models.BackupCompleted:
			s.Completed++
			if s.Last == nil {
				s.Last = &models.LastBackup{
					ID:       b.ID,
					Date:     b.Date,
					Size:     b.Size,
					Duration: b.Duration,
					Tables:   len(b.Tables),
				}
			}
		case models.BackupFailed:
			s.Errors++
		}
	}
	s.TotalSizeMB = format.RoundTenth(total)
	s.TotalSize = format.SizeMB(total)
	return s
}
