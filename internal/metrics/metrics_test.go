package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	t.Parallel()

	m := New("inmogestor_test")
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/forms/payment/contracts/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, id := range []string{"CT-001", "CT-002"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/forms/payment/contracts/"+id, nil))
	}

	got := testutil.ToFloat64(m.requests.WithLabelValues(http.MethodGet, "/api/forms/payment/contracts/{id}", "404"))
	assert.Equal(t, float64(2), got)
}

func TestDomainCounters(t *testing.T) {
	t.Parallel()

	m := New("inmogestor_test")
	m.FormSubmitted("payment", "accepted")
	m.FormSubmitted("user", "rejected")
	m.DigestRun("ok")
	m.ExportGenerated("financial")

	assert.Equal(t, float64(1), testutil.ToFloat64(m.formSubmissions.WithLabelValues("payment", "accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.formSubmissions.WithLabelValues("user", "rejected")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.digestRuns.WithLabelValues("ok")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exportsGenerated.WithLabelValues("financial")))
}

func TestHandlerExposesRegistry(t *testing.T) {
	t.Parallel()

	m := New("inmogestor_test")
	m.DigestRun("ok")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "inmogestor_test_digest_runs_total"))
}
