package http

import (
	"errors"
	"net/http"

	"github.com/inkomoko/identity/internal/identity/service"
	"github.com/inkomoko/identity/pkg/httpx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// UsersHandler serves GET /api/users/{id}. Profiles are public; any caller
// may fetch any user by id.
type UsersHandler struct {
	Users *service.UserService
}

func (h *UsersHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	user, err := h.Users.GetUserByID(ctx, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, envelope{
				Status:  "Not found",
				Message: "User not found",
			})
			return
		}

		log.Error("user lookup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Failed to retrieve user",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, envelope{
		Status:  "success",
		Message: "User found",
		Data:    toUserPayload(user),
	})
}
