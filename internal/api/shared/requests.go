package shared

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.Validate caches struct metadata, so
// handlers reuse one rather than building their own.
var validate = validator.New()

// DecodeJSON decodes the request body into v, rejecting fields the target
// struct does not declare.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// ValidateRequest validates v. Types with their own Validate method are
// trusted over struct tags.
func ValidateRequest(v interface{}) error {
	if val, ok := v.(interface{ Validate() error }); ok {
		return val.Validate()
	}
	return validate.Struct(v)
}
