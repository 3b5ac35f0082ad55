package http

import (
	"encoding/json"
	"net/http"

	"github.com/inkomoko/identity/internal/identity/service"
	"github.com/inkomoko/identity/pkg/httpx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// RegisterHandler serves POST /auth/register.
type RegisterHandler struct {
	Accounts *service.AccountService
}

type registerRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, envelope{
			Status:  "Bad request",
			Message: "Invalid request body",
		})
		return
	}

	session, err := h.Accounts.Register(ctx, service.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			httpx.WriteJSON(w, http.StatusBadRequest, envelope{
				Status:  "Bad request",
				Message: "Registration unsuccessful",
				Errors:  ve.Fields,
			})
			return
		}

		log.Error("registration failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Registration unsuccessful",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, envelope{
		Status:  "success",
		Message: "Registration successful",
		Data: sessionPayload{
			AccessToken: session.AccessToken,
			User:        toUserPayload(session.User),
		},
	})
}
