package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkomoko/identity/internal/identity/service"
	"github.com/inkomoko/identity/pkg/httpx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// OrganisationUsersHandler serves POST /api/organisations/{orgId}/users.
//
// This endpoint is deliberately unauthenticated to match the existing API
// contract; see DESIGN.md for the open question on locking it down.
type OrganisationUsersHandler struct {
	Organisations *service.OrganisationService
}

type addUserRequest struct {
	UserID string `json:"userId"`
}

func (h *OrganisationUsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, envelope{
			Status:  "Bad request",
			Message: "Invalid request body",
		})
		return
	}

	if req.UserID == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, envelope{
			Status:  "Bad request",
			Message: "User ID is required",
			Errors: []service.FieldError{
				{Field: "userId", Message: "User ID is required"},
			},
		})
		return
	}

	orgID := r.PathValue("orgId")

	if err := h.Organisations.AddUser(ctx, orgID, req.UserID); err != nil {
		switch {
		case errors.Is(err, service.ErrOrganisationNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, envelope{
				Status:  "Not found",
				Message: "Organisation not found",
			})
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteJSON(w, http.StatusNotFound, envelope{
				Status:  "Not found",
				Message: "User not found",
			})
		case errors.Is(err, service.ErrAlreadyMember):
			httpx.WriteJSON(w, http.StatusConflict, envelope{
				Status:  "Conflict",
				Message: "User already belongs to organisation",
			})
		default:
			log.Error("add user to organisation failed", "err", err)
			httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
				Status:  "error",
				Message: "Failed to add user to organisation",
			})
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, envelope{
		Status:  "success",
		Message: "User added to organisation successfully",
		Data: membershipPayload{
			UserID: req.UserID,
			OrgID:  orgID,
		},
	})
}
