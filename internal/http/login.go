package http

import (
	"errors"
	"net/http"

	"github.com/quietgrove/gatehouse/internal/service"
	"github.com/quietgrove/gatehouse/pkg/httpx"
	"github.com/quietgrove/gatehouse/pkg/slogx"
)

// Validation messages for the login endpoint.
const (
	msgLoginEmailInvalid    = "Please include a valid email"
	msgLoginPasswordMissing = "Password is required"
	msgInvalidCredentials   = "Invalid credentials"
	msgLoginSucceeded       = "User logged in successfully"
)

type LoginHandler struct {
	Credentials *service.CredentialService
	Tokens      *service.TokenService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (req loginRequest) validate() []string {
	var msgs []string
	if !validEmail(req.Email) {
		msgs = append(msgs, msgLoginEmailInvalid)
	}
	if req.Password == "" {
		msgs = append(msgs, msgLoginPasswordMissing)
	}
	return msgs
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msgs := req.validate(); len(msgs) > 0 {
		writeErrors(w, http.StatusBadRequest, msgs...)
		return
	}

	user, err := h.Credentials.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Same body whether the email is unknown or the password is
			// wrong; do not "improve" the specificity here.
			writeErrors(w, http.StatusBadRequest, msgInvalidCredentials)
			return
		}
		log.Error("failed to authenticate user", "err", err)
		writeServerError(w)
		return
	}

	token, err := h.Tokens.Issue(user)
	if err != nil {
		log.Error("failed to issue token", "err", err, "user_id", user.ID)
		writeServerError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, tokenResponse{
		Msg:   msgLoginSucceeded,
		Token: token,
	})
}
