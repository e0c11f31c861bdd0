// Package api implements the HTTP handlers for the studyroom API.
package api

import (
	"encoding/json"
	"net/http"
)

// DecodeJSON decodes the request body into dst. The caller maps decode
// failures to the endpoint's error message.
func DecodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
