package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BeautyBooking/internal/api/handlers"
	"github.com/m04kA/SMC-BeautyBooking/internal/api/middleware"
	"github.com/m04kA/SMC-BeautyBooking/internal/domain"
	submitBooking "github.com/m04kA/SMC-BeautyBooking/internal/usecase/submit_booking"
	"github.com/m04kA/SMC-BeautyBooking/pkg/logger"
)

type fakeUseCase struct {
	req  *submitBooking.Request
	resp *submitBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitBooking.Request) (*submitBooking.Response, error) {
	f.req = req
	return f.resp, f.err
}

func post(h *Handler, ctx context.Context, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/draft/confirm", strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestConfirmBooking(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{
		Booking: &domain.Booking{
			ID:       "b-1",
			Status:   domain.StatusConfirmed,
			MasterID: "master-1",
			Date:     "2025-03-04",
			Time:     "11:00",
		},
		UpcomingCount: 3,
	}}
	user := &domain.TelegramUser{ID: 42}
	ctx := middleware.WithUser(context.Background(), user)

	rec := post(NewHandler(uc, logger.Nop()), ctx, `{"name":"Мария","phone":"+79991234567","comment":"к 11"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, &submitBooking.Request{Name: "Мария", Phone: "+79991234567", Comment: "к 11", User: user}, uc.req)

	var resp ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.Booking.ID)
	assert.Equal(t, "confirmed", resp.Booking.Status)
	assert.Equal(t, 3, resp.UpcomingCount)
}

func TestConfirmBookingAnonymous(t *testing.T) {
	uc := &fakeUseCase{resp: &submitBooking.Response{Booking: &domain.Booking{ID: "b-1"}}}

	rec := post(NewHandler(uc, logger.Nop()), context.Background(), `{"name":"Мария","phone":"+79991234567"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Nil(t, uc.req.User)
}

func TestConfirmBookingValidationMessage(t *testing.T) {
	uc := &fakeUseCase{err: &submitBooking.ValidationError{Field: "Phone", Message: "Пожалуйста, введите корректный номер телефона"}}

	rec := post(NewHandler(uc, logger.Nop()), context.Background(), `{"name":"Мария","phone":"123"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Пожалуйста, введите корректный номер телефона", body.Error)
}

func TestConfirmBookingErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"broken body", `{`, nil, http.StatusBadRequest},
		{"body too large", `{"comment":"` + strings.Repeat("a", handlers.MaxBodySize) + `"}`, nil, http.StatusRequestEntityTooLarge},
		{"no draft", `{}`, submitBooking.ErrNoDraft, http.StatusConflict},
		{"not ready", `{}`, submitBooking.ErrNotReady, http.StatusConflict},
		{"slot taken", `{}`, submitBooking.ErrSlotNotAvailable, http.StatusConflict},
		{"master not eligible", `{}`, submitBooking.ErrMasterNotEligible, http.StatusConflict},
		{"internal", `{}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(NewHandler(&fakeUseCase{err: tt.err}, logger.Nop()), context.Background(), tt.body)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
