package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/openaws/openaws-api/internal/api/shared"
)

var validate = validator.New()

// decodeAndValidate decodes the request body into dst and validates it.
// On failure it writes the error response and returns false; handlers
// should simply return.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request body")
		return false
	}

	if err := validate.Struct(dst); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Validation failed", err)
		return false
	}

	return true
}
