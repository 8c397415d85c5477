package http

import (
	"encoding/json"
	"net/http"
	"net/mail"

	"github.com/quietgrove/gatehouse/pkg/httpx"
)

// errorItem matches the response contract: each validation or auth failure is
// reported as an object with a single human-readable msg field.
type errorItem struct {
	Msg string `json:"msg"`
}

type errorResponse struct {
	Errors []errorItem `json:"errors"`
}

// tokenResponse is the success body for both registration and login.
type tokenResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// decodeJSON reads a JSON request body into dst. Unknown fields are ignored,
// matching the permissive parsing of the original API.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func writeErrors(w http.ResponseWriter, code int, msgs ...string) {
	items := make([]errorItem, 0, len(msgs))
	for _, m := range msgs {
		items = append(items, errorItem{Msg: m})
	}
	httpx.WriteJSON(w, code, errorResponse{Errors: items})
}

// writeServerError emits the opaque 500 body. Details belong in the log,
// never in the response.
func writeServerError(w http.ResponseWriter) {
	http.Error(w, "Server error", http.StatusInternalServerError)
}

// validEmail reports whether s parses as a bare RFC 5322 address.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
