package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rjhade/project-portfolio/errs"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

// WriteData writes a success response with the payload wrapped in the
// data envelope.
func (r Responder) WriteData(w http.ResponseWriter, statusCode int, data any) {
	r.writeJSON(w, statusCode, dataEnvelope{Data: data})
}

// WriteError maps an error to its HTTP status and the message envelope.
// Unexpected errors are logged in full and surfaced as a generic 500.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Msg(err.Error())
		r.writeJSON(w, http.StatusInternalServerError, errorEnvelope{
			Message: "an unexpected error occurred",
		})
		return
	}

	if apiErr.StatusCode >= http.StatusInternalServerError {
		r.logger.Error().Msg(apiErr.GetFullError())
		r.writeJSON(w, apiErr.StatusCode, errorEnvelope{
			Message: "an unexpected error occurred",
		})
		return
	}

	r.writeJSON(w, apiErr.StatusCode, errorEnvelope{
		Message: apiErr.Error(),
		Field:   apiErr.Field,
	})
}

func (r Responder) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(body)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(statusCode)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}
