package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inkomoko/identity/internal/identity/service"
	"github.com/inkomoko/identity/pkg/httpx"
	"github.com/inkomoko/identity/pkg/slogx"
)

// OrganisationsHandler serves the authenticated organisation endpoints:
// listing the caller's organisations, fetching one by id, and creating one.
type OrganisationsHandler struct {
	Organisations *service.OrganisationService
}

// HandleList serves GET /api/organisations. The caller identity comes from
// the verified bearer token, never from the request body.
func (h *OrganisationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	callerID := httpx.CallerID(ctx)
	if callerID == "" {
		writeMissingCaller(w)
		return
	}

	orgs, err := h.Organisations.ListForUser(ctx, callerID)
	if err != nil {
		log.Error("organisation list failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Failed to retrieve organisations",
		})
		return
	}

	payload := make([]organisationPayload, 0, len(orgs))
	for _, o := range orgs {
		payload = append(payload, toOrganisationPayload(o))
	}

	httpx.WriteJSON(w, http.StatusOK, envelope{
		Status:  "success",
		Message: "Organisations retrieved successfully",
		Data:    map[string]any{"organisations": payload},
	})
}

// HandleGet serves GET /api/organisations/{orgId}. Visibility is not scoped
// to membership; any authenticated caller may fetch any organisation.
func (h *OrganisationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	org, err := h.Organisations.GetByID(ctx, r.PathValue("orgId"))
	if err != nil {
		if errors.Is(err, service.ErrOrganisationNotFound) {
			httpx.WriteJSON(w, http.StatusNotFound, envelope{
				Status:  "Not found",
				Message: "Organisation not found",
			})
			return
		}

		log.Error("organisation lookup failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Failed to retrieve organisation",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusOK, envelope{
		Status:  "success",
		Message: "Organisation found",
		Data:    toOrganisationPayload(org),
	})
}

type createOrganisationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// HandleCreate serves POST /api/organisations. Creating an organisation
// does not join the creator to it.
func (h *OrganisationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req createOrganisationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, envelope{
			Status:  "Bad request",
			Message: "Invalid request body",
		})
		return
	}

	org, err := h.Organisations.Create(ctx, req.Name, req.Description)
	if err != nil {
		if ve, ok := service.AsValidationError(err); ok {
			httpx.WriteJSON(w, http.StatusBadRequest, envelope{
				Status:  "Bad request",
				Message: "Organisation creation unsuccessful",
				Errors:  ve.Fields,
			})
			return
		}

		log.Error("organisation creation failed", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, envelope{
			Status:  "error",
			Message: "Failed to create organisation",
		})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, envelope{
		Status:  "success",
		Message: "Organisation created successfully",
		Data:    toOrganisationPayload(org),
	})
}

func writeMissingCaller(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusUnauthorized, envelope{
		Status:  "Unauthorized",
		Message: "Missing caller identity",
	})
}
