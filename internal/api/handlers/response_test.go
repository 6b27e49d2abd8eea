package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusCreated, map[string]int{"count": 2})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())
}

func TestRespondJSONWithoutBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusNoContent, nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRespondErrors(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "плохо") }, http.StatusBadRequest, "плохо"},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "нет") }, http.StatusNotFound, "нет"},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "занято") }, http.StatusConflict, "занято"},
		{"internal", RespondInternalError, http.StatusInternalServerError, msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Error)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		ServiceID string `json:"serviceId"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"serviceId":"haircut-women"}`))
	require.NoError(t, DecodeJSON(httptest.NewRecorder(), r, &v))
	assert.Equal(t, "haircut-women", v.ServiceID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	assert.ErrorIs(t, DecodeJSON(httptest.NewRecorder(), r, &v), ErrEmptyBody)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(httptest.NewRecorder(), r, &v))
}

func TestDecodeJSONTooLarge(t *testing.T) {
	var v struct {
		Comment string `json:"comment"`
	}

	body := `{"comment":"` + strings.Repeat("a", MaxBodySize) + `"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	err := DecodeJSON(httptest.NewRecorder(), r, &v)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Empty(t, v.Comment)

	rec := httptest.NewRecorder()
	RespondDecodeError(rec, err, "некорректное тело запроса")
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"error":"тело запроса слишком большое"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	RespondDecodeError(rec, ErrEmptyBody, "некорректное тело запроса")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReadBody(t *testing.T) {
	exact := strings.Repeat("a", MaxBodySize)
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(exact))
	body, err := ReadBody(httptest.NewRecorder(), r)
	require.NoError(t, err)
	assert.Len(t, body, MaxBodySize)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(exact+"b"))
	body, err = ReadBody(httptest.NewRecorder(), r)
	assert.ErrorIs(t, err, ErrBodyTooLarge)
	assert.Nil(t, body)
}
