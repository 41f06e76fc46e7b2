package handlers

import (
	"fmt"
	"net/http"

	"inmogestor-backend/internal/format"
	"inmogestor-backend/internal/models"
	"inmogestor-backend/internal/search"
	"inmogestor-backend/internal/stats"
	"inmogestor-backend/internal/store"
)

type NotificationHandler struct {
	catalog *store.Catalog
}

func NewNotificationHandler(catalog *store.Catalog) *NotificationHandler {
	return &NotificationHandler{catalog: catalog}
}

type notificationRow struct {
	models.Notification
	Icon          string       `json:"icon"`
	PriorityBadge models.Badge `json:"priorityBadge"`
	AmountText    string       `json:"amountText,omitempty"`
	DateText      string       `json:"dateText"`
}

// selected applies the search and then the tab to the full list.
func (h *NotificationHandler) selected(r *http.Request) (all, matched []models.Notification, tab models.NotificationTab) {
	q := r.URL.Query()
	tab = models.NotificationTab(q.Get("tab"))
	if tab == "" {
		tab = models.TabAll
	}

	all = h.catalog.Notifications()
	for _, n := range search.FilterSearchable(all, q.Get("search")) {
		if tab.Matches(n) {
			matched = append(matched, n)
		}
	}
	return all, matched, tab
}

// List handles GET /api/notifications?search=&tab=all|unread|high
// The tab narrows the search result; tab counts and stats use the full list.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	all, matched, tab := h.selected(r)

	rows := make([]notificationRow, 0, len(matched))
	for _, n := range matched {
		row := notificationRow{
			Notification:  n,
			Icon:          n.Type.Icon(),
			PriorityBadge: n.Priority.Badge(),
			DateText:      format.Date(n.Date),
		}
		if n.Amount != nil {
			row.AmountText = format.Currency(*n.Amount)
		}
		rows = append(rows, row)
	}

	resp := listResponse(rows, len(rows), stats.Notifications(all))
	resp["tab"] = tab
	resp["tabs"] = stats.TabCounts(all)
	JSON(w, http.StatusOK, resp)
}

// Export handles GET /api/notifications/export?search=&tab= — returns CSV
func (h *NotificationHandler) Export(w http.ResponseWriter, r *http.Request) {
	_, matched, _ := h.selected(r)

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=notificaciones.csv")

	fmt.Fprintln(w, "ID,Fecha,Tipo,Título,Mensaje,Inquilino,Inmueble,Prioridad,Estado,Categoría")
	for _, n := range matched {
		fmt.Fprintf(w, "%d,%s,%s,%s,%s,%s,%s,%s,%s,%s\n",
			n.ID, n.Date, n.Type, csvEscape(n.Title), csvEscape(n.Message),
			csvEscape(n.Tenant), csvEscape(n.Property), n.Priority, n.Status, csvEscape(n.Category))
	}
}
