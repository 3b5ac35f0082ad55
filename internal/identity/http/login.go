package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkomoko/identity/internal/identity/service"
	"github.com/inkomoko/identity/pkg/httpx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// LoginHandler serves POST /auth/login.
type LoginHandler struct {
	Accounts *service.AccountService
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, envelope{
			Status:  "Bad request",
			Message: "Invalid request body",
		})
		return
	}

	session, err := h.Accounts.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			// Unknown user and bad password stay distinguishable.
			httpx.WriteJSON(w, http.StatusNotFound, envelope{
				Status:  "Not found",
				Message: "User not found",
			})
		case errors.Is(err, service.ErrIncorrectPassword):
			httpx.WriteJSON(w, http.StatusUnauthorized, envelope{
				Status:  "Unauthorized",
				Message: "Incorrect password",
			})
		default:
			log.Error("login failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
				Status:  "error",
				Message: "Login unsuccessful",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, envelope{
		Status:  "success",
		Message: "Login successful",
		Data: sessionPayload{
			AccessToken: session.AccessToken,
			User:        toUserPayload(session.User),
		},
	})
}
