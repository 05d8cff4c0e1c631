// internal/api/types/response.go
package types

// ErrorResponse is the JSON error envelope returned by every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
