package http

import (
	"errors"
	"net/http"

	"github.com/quietgrove/gatehouse/internal/service"
	"github.com/quietgrove/gatehouse/pkg/httpx"
	"github.com/quietgrove/gatehouse/pkg/slogx"
)

// Validation messages for the registration endpoint.
const (
	msgNameRequired      = "Please enter your name"
	msgEmailInvalid      = "Please enter a valid email"
	msgPasswordTooShort  = "Please enter a password with 6 or more characters"
	msgEmailTaken        = "User with this email already exists"
	msgRegisterSucceeded = "User registered successfully"
)

const minPasswordLength = 6

type RegisterHandler struct {
	Credentials *service.CredentialService
	Tokens      *service.TokenService
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// validate checks field presence and shape only; uniqueness and credential
// semantics belong to the service.
func (req registerRequest) validate() []string {
	var msgs []string
	if req.Name == "" {
		msgs = append(msgs, msgNameRequired)
	}
	if !validEmail(req.Email) {
		msgs = append(msgs, msgEmailInvalid)
	}
	if len(req.Password) < minPasswordLength {
		msgs = append(msgs, msgPasswordTooShort)
	}
	return msgs
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrors(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msgs := req.validate(); len(msgs) > 0 {
		writeErrors(w, http.StatusBadRequest, msgs...)
		return
	}

	user, err := h.Credentials.Register(ctx, req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeErrors(w, http.StatusBadRequest, msgEmailTaken)
			return
		}
		log.Error("failed to register user", "err", err)
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
		Msg:   msgRegisterSucceeded,
		Token: token,
	})
}
