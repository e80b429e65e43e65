package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/tanishkajain081/dabite-restaurant/internal/middleware"
	"github.com/tanishkajain081/dabite-restaurant/internal/model"
	"github.com/tanishkajain081/dabite-restaurant/internal/supabase"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds request bodies; the largest form is a few hundred bytes.
const maxBodyBytes = 1 << 20

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger zerolog.Logger) {
	writeErrorResponse(w, r, status, model.ErrorResponse{Error: message}, logger)
}

func writeErrorResponse(w http.ResponseWriter, r *http.Request, status int, resp model.ErrorResponse, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("error", resp.Error).Int("status", status).Str("path", r.URL.Path).Msg("handler error")

	resp.RequestID = middleware.GetRequestID(r.Context())
	writeJSON(w, status, resp)
}

// writeServiceError maps an error returned by a service to a status code.
// Provider rejections and store constraint messages reach the client
// verbatim; anything unexpected becomes a generic 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	if providerErr, ok := supabase.AsError(err); ok {
		writeErrorResponse(w, r, http.StatusBadRequest, model.ErrorResponse{
			Error: providerErr.Message,
			Code:  model.ErrCodeProviderRejected,
		}, logger)
		return
	}

	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeErrorResponse(w, r, statusForCode(domainErr.Code), model.ErrorResponse{
			Error:   domainErr.Message,
			Code:    domainErr.Code,
			Details: domainErr.Details,
		}, logger)
		return
	}

	logger.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected service error")
	writeErrorResponse(w, r, http.StatusInternalServerError, model.ErrorResponse{
		Error: "internal server error",
		Code:  model.ErrCodeInternalError,
	}, logger)
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeInvalidJSON,
		model.ErrCodeMissingField,
		model.ErrCodeValidation,
		model.ErrCodeConstraint,
		model.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	case model.ErrCodeNotFound:
		return http.StatusNotFound
	case model.ErrCodeNoToken, model.ErrCodeNotLoggedIn:
		return http.StatusUnauthorized
	case model.ErrCodeInvalidToken:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// readBody reads the request body up to maxBodyBytes.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, model.NewDomainError(model.ErrCodeValidation, "Request body too large")
		}
		return nil, err
	}
	return body, nil
}

// pathID parses the {id} URL parameter.
func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		return 0, model.NewDomainError(model.ErrCodeValidation, "Invalid id")
	}
	return id, nil
}
