package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	"github.com/m04kA/SMC-BeautyBooking/internal/integrations/telegram"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type observation struct {
	route  string
	method string
	status int
}

type fakeMetrics struct {
	observed []observation
}

func (m *fakeMetrics) ObserveHTTP(route, method string, status int, _ time.Duration) {
	m.observed = append(m.observed, observation{route, method, status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/abc-123", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, observation{"/bookings/{bookingId}", http.MethodGet, http.StatusNotFound}, m.observed[0])
}

func TestMetricsMiddlewareDefaultStatus(t *testing.T) {
	m := &fakeMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/dates", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/dates", nil))

	require.Len(t, m.observed, 1)
	assert.Equal(t, http.StatusOK, m.observed[0].status)
}

func TestCORSOnEveryResponse(t *testing.T) {
	h := CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/webhook", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type, Authorization", rec.Header().Get("Access-Control-Allow-Headers"))
}

func identityRequest(t *testing.T, source UserIdentitySource, initData string) (*domain.TelegramUser, bool) {
	t.Helper()
	var (
		user *domain.TelegramUser
		ok   bool
	)
	h := Identity(source, logger.Nop())(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		user, ok = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/draft/confirm", nil)
	if initData != "" {
		req.Header.Set(InitDataHeader, initData)
	}
	h.ServeHTTP(httptest.NewRecorder(), req)
	return user, ok
}

func TestIdentityValidInitData(t *testing.T) {
	const token = "123:secret"
	initData := telegram.SignInitData(token, url.Values{
		"auth_date": {"1700000000"},
		"user":      {`{"id":42,"first_name":"Мария"}`},
	})

	user, ok := identityRequest(t, telegram.NewInitDataValidator(token, 0), initData)
	require.True(t, ok)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Мария", user.FirstName)
}

func TestIdentityInvalidInitDataIsAnonymous(t *testing.T) {
	source := telegram.NewInitDataValidator("123:secret", 0)

	_, ok := identityRequest(t, source, "user=%7B%22id%22%3A1%7D&hash=deadbeef")
	assert.False(t, ok)

	_, ok = identityRequest(t, source, "")
	assert.False(t, ok)
}

func TestIdentityLocalStandIn(t *testing.T) {
	user, ok := identityRequest(t, telegram.LocalIdentity{}, "")
	require.True(t, ok)
	assert.Equal(t, telegram.MockUser.ID, user.ID)
}
