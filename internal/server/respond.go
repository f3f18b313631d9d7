package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/UnknownOlympus/hestia/internal/lib/logger/sl"
	"github.com/UnknownOlympus/hestia/internal/models"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(log *slog.Logger, writer http.ResponseWriter, req *http.Request, code int, body any) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(code)
	if err := json.NewEncoder(writer).Encode(body); err != nil {
		log.ErrorContext(req.Context(), "Failed to write response", sl.Err(err))
	}
}

// writeError maps a domain error to its status code. Store failures are logged and
// reported with a generic message.
func writeError(log *slog.Logger, writer http.ResponseWriter, req *http.Request, err error) {
	var code int
	var sentinel error

	switch {
	case errors.Is(err, models.ErrInvalidInput):
		code, sentinel = http.StatusBadRequest, models.ErrInvalidInput
	case errors.Is(err, models.ErrNotFound):
		code, sentinel = http.StatusNotFound, models.ErrNotFound
	case errors.Is(err, models.ErrConflict):
		code, sentinel = http.StatusConflict, models.ErrConflict
	default:
		log.ErrorContext(req.Context(), "Request failed", "path", req.URL.Path, sl.Err(err))
		writeJSON(log, writer, req, http.StatusInternalServerError,
			errorResponse{Error: http.StatusText(http.StatusInternalServerError)})
		return
	}

	writeJSON(log, writer, req, code, errorResponse{Error: publicMessage(err, sentinel)})
}

// publicMessage drops the wrapping context in front of the sentinel, so
// "failed to get company 9: not found: company 9" becomes "not found: company 9".
func publicMessage(err, sentinel error) string {
	msg := err.Error()
	if idx := strings.Index(msg, sentinel.Error()); idx > 0 {
		return msg[idx:]
	}

	return msg
}

// decodeStrict decodes exactly one JSON object, rejecting unknown fields and trailing data.
// Every failure wraps models.ErrInvalidInput.
func decodeStrict(writer http.ResponseWriter, req *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(writer, req.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %s", models.ErrInvalidInput, describeDecodeError(err))
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: request body must contain a single JSON object", models.ErrInvalidInput)
	}

	return nil
}

func describeDecodeError(err error) string {
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var sizeErr *http.MaxBytesError

	switch {
	case errors.Is(err, io.EOF):
		return "request body is empty"
	case errors.Is(err, io.ErrUnexpectedEOF):
		return "request body is malformed JSON"
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("request body is malformed JSON (at position %d)", syntaxErr.Offset)
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Sprintf("%s must be a %s", typeErr.Field, typeErr.Type.String())
		}
		return "request body must be a JSON object"
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("request body must not be larger than %d bytes", sizeErr.Limit)
	case strings.HasPrefix(err.Error(), "json: unknown field "):
		return "unknown field " + strings.TrimPrefix(err.Error(), "json: unknown field ")
	default:
		return err.Error()
	}
}
