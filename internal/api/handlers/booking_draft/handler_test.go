package booking_draft

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/catalog"
	bookingStore "github.com/m04kA/SMC-BeautyBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/availability"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings"
	"github.com/m04kA/SMC-BeautyBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	cat, err := catalog.Default(time.Now())
	require.NoError(t, err)
	engine, err := availability.NewEngine(cat.Schedule(), cat.Seeds())
	require.NoError(t, err)
	manager := bookings.NewManager(bookingStore.NewMemoryStore(), cat, engine, logger.Nop())

	h := NewHandler(manager, logger.Nop())
	r := mux.NewRouter()
	r.HandleFunc("/draft", h.Start).Methods(http.MethodPost)
	r.HandleFunc("/draft", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/draft", h.Reset).Methods(http.MethodDelete)
	r.HandleFunc("/draft/master", h.SelectMaster).Methods(http.MethodPatch)
	r.HandleFunc("/draft/date", h.SelectDate).Methods(http.MethodPatch)
	r.HandleFunc("/draft/time", h.SelectTime).Methods(http.MethodPatch)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) models.DraftResponse {
	t.Helper()
	var resp models.DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestDraftFlow(t *testing.T) {
	r := newRouter(t)

	rec := do(r, http.MethodPost, "/draft", `{"serviceId":"haircut-women"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	resp := decode(t, rec)
	require.NotNil(t, resp.Booking)
	assert.Equal(t, "pending", resp.Booking.Status)
	assert.Equal(t, "Женская стрижка", resp.Booking.ServiceName)
	assert.Nil(t, resp.Booking.Date)
	assert.False(t, resp.Ready)

	rec = do(r, http.MethodPatch, "/draft/master", `{"masterId":"master-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "master-1", decode(t, rec).Booking.MasterID)

	rec = do(r, http.MethodPatch, "/draft/date", `{"date":"2025-03-04"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(r, http.MethodPatch, "/draft/time", `{"time":"11:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode(t, rec)
	assert.True(t, resp.Ready)
	require.NotNil(t, resp.Booking.Time)
	assert.Equal(t, "11:00", *resp.Booking.Time)

	// смена даты сбрасывает время
	rec = do(r, http.MethodPatch, "/draft/date", `{"date":"2025-03-05"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decode(t, rec)
	assert.Nil(t, resp.Booking.Time)
	assert.False(t, resp.Ready)

	rec = do(r, http.MethodGet, "/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "2025-03-05", *decode(t, rec).Booking.Date)

	rec = do(r, http.MethodDelete, "/draft", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(r, http.MethodGet, "/draft", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDraftErrors(t *testing.T) {
	tests := []struct {
		name   string
		start  bool
		method string
		target string
		body   string
		status int
	}{
		{"unknown service", false, http.MethodPost, "/draft", `{"serviceId":"tattoo"}`, http.StatusNotFound},
		{"missing service", false, http.MethodPost, "/draft", `{}`, http.StatusBadRequest},
		{"broken body", false, http.MethodPost, "/draft", `{`, http.StatusBadRequest},
		{"body too large", false, http.MethodPost, "/draft", `{"serviceId":"` + strings.Repeat("a", handlers.MaxBodySize) + `"}`, http.StatusRequestEntityTooLarge},
		{"master without draft", false, http.MethodPatch, "/draft/master", `{"masterId":"master-1"}`, http.StatusConflict},
		{"unknown master", true, http.MethodPatch, "/draft/master", `{"masterId":"master-99"}`, http.StatusNotFound},
		{"invalid date", true, http.MethodPatch, "/draft/date", `{"date":"04.03.2025"}`, http.StatusBadRequest},
		{"invalid time", true, http.MethodPatch, "/draft/time", `{"time":"25:99"}`, http.StatusBadRequest},
		{"time without draft", false, http.MethodPatch, "/draft/time", `{"time":"10:00"}`, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(t)
			if tt.start {
				require.Equal(t, http.StatusCreated, do(r, http.MethodPost, "/draft", `{"serviceId":"haircut-women"}`).Code)
			}
			assert.Equal(t, tt.status, do(r, tt.method, tt.target, tt.body).Code)
		})
	}
}
