package web

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/kwalters/stay-catalog/internal/apperror"
)

var validate = validator.New()

// writeJSON writes data as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, `{"error":"encode failed"}`, http.StatusInternalServerError)
	}
}

// writeError maps an error to its HTTP status and writes a JSON error body.
// Internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternal("internal error", err)
	}
	code := appErr.StatusCode()
	message := appErr.Message
	if code >= http.StatusInternalServerError {
		slog.Error("request failed", "error", err)
		message = "internal error"
	}
	writeJSON(w, map[string]string{"error": message}, code)
}

// decodeJSON decodes the request body into dst and runs struct validation.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return apperror.NewValidation("invalid JSON body")
	}
	if err := validate.Struct(dst); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return apperror.NewInternal("validating request", err)
		}
		return apperror.NewValidation(validationMessage(err))
	}
	return nil
}

func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return "invalid email address"
		case "min", "gte":
			return fe.Field() + " is too small"
		case "max", "lte":
			return fe.Field() + " is too large"
		}
		return fe.Field() + " is invalid"
	}
	return "invalid request"
}
