package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tanishkajain081/dabite-restaurant/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestStatusForCode(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{code: model.ErrCodeInvalidJSON, expected: http.StatusBadRequest},
		{code: model.ErrCodeMissingField, expected: http.StatusBadRequest},
		{code: model.ErrCodeValidation, expected: http.StatusBadRequest},
		{code: model.ErrCodeConstraint, expected: http.StatusBadRequest},
		{code: model.ErrCodeInvalidStatus, expected: http.StatusBadRequest},
		{code: model.ErrCodeNotFound, expected: http.StatusNotFound},
		{code: model.ErrCodeNoToken, expected: http.StatusUnauthorized},
		{code: model.ErrCodeNotLoggedIn, expected: http.StatusUnauthorized},
		{code: model.ErrCodeInvalidToken, expected: http.StatusForbidden},
		{code: model.ErrCodeInternalError, expected: http.StatusInternalServerError},
		{code: "UNKNOWN_DATASET", expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, statusForCode(tt.code))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, http.StatusCreated, map[string]string{"message": "ok"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"ok"}`, w.Body.String())
}

func TestWriteJSON_UnencodableValueKeepsStatus(t *testing.T) {
	w := httptest.NewRecorder()

	writeJSON(w, http.StatusOK, map[string]interface{}{"bad": make(chan int)})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())
}
