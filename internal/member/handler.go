package member

import (
	"errors"

	"github.com/DGymBook/be-starter-project/internal/api"
	"github.com/DGymBook/be-starter-project/internal/logger"
	"github.com/DGymBook/be-starter-project/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Handler serves gym-scoped member routes. The tenant middleware has already
// resolved :gymId to an existing gym before any of these run.
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	members, count, err := h.service.ListByGym(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		api.Internal(c, "Failed to fetch members")
		return
	}

	api.List(c, members, count)
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || m.GymID != c.Param("gymId") {
		if err != nil && !errors.Is(err, ErrMemberNotFound) {
			api.Internal(c, "Failed to fetch member")
			return
		}
		api.NotFound(c, "Member not found")
		return
	}

	api.OK(c, m)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	m, err := h.service.Create(c.Request.Context(), c.Param("gymId"), req)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.NotFound(c, "Gym not found")
			return
		}
		logger.Errorf("Failed to create member: %v", err)
		api.Internal(c, "Failed to create member")
		return
	}

	metrics.RecordEntityCreated("member")
	api.Created(c, m, "Member created successfully")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	if !h.ownedByGym(c) {
		return
	}

	m, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			api.NotFound(c, "Gym not found")
		case errors.Is(err, ErrMemberNotFound):
			api.NotFound(c, "Member not found")
		default:
			api.Internal(c, "Failed to update member")
		}
		return
	}

	api.OKWithMessage(c, m, "Member updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	if !h.ownedByGym(c) {
		return
	}

	m, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			api.NotFound(c, "Member not found")
			return
		}
		api.Internal(c, "Failed to delete member")
		return
	}

	metrics.RecordEntityDeleted("member")
	api.OKWithMessage(c, m, "Member deleted successfully")
}

// ownedByGym verifies the member in :id belongs to the gym in :gymId. A
// member of another gym is reported as missing, not forbidden.
func (h *Handler) ownedByGym(c *gin.Context) bool {
	m, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMemberNotFound) {
			api.NotFound(c, "Member not found")
		} else {
			api.Internal(c, "Failed to fetch member")
		}
		return false
	}

	if m.GymID != c.Param("gymId") {
		api.NotFound(c, "Member not found")
		return false
	}

	return true
}
