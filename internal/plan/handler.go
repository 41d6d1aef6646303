package plan

import (
	"errors"

	"github.com/DGymBook/be-starter-project/internal/api"
	"github.com/DGymBook/be-starter-project/internal/logger"
	"github.com/DGymBook/be-starter-project/internal/metrics"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	plans, count, err := h.service.ListByGym(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		api.Internal(c, "Failed to fetch plans")
		return
	}

	api.List(c, plans, count)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil || p.GymID != c.Param("gymId") {
		if err != nil && !errors.Is(err, ErrPlanNotFound) {
			api.Internal(c, "Failed to fetch plan")
			return
		}
		api.NotFound(c, "Plan not found")
		return
	}

	api.OK(c, p)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.Param("gymId"), req)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.NotFound(c, "Gym not found")
			return
		}
		logger.Errorf("Failed to create plan: %v", err)
		api.Internal(c, "Failed to create plan")
		return
	}

	metrics.RecordEntityCreated("plan")
	api.Created(c, p, "Plan created successfully")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlanRequest
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

	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrGymNotFound):
			api.NotFound(c, "Gym not found")
		case errors.Is(err, ErrPlanNotFound):
			api.NotFound(c, "Plan not found")
		default:
			api.Internal(c, "Failed to update plan")
		}
		return
	}

	api.OKWithMessage(c, p, "Plan updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	if !h.ownedByGym(c) {
		return
	}

	p, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrPlanNotFound):
			api.NotFound(c, "Plan not found")
		case errors.Is(err, ErrPlanInUse):
			api.BadRequest(c, "Cannot delete plan: it is referenced by existing memberships")
		default:
			api.Internal(c, "Failed to delete plan")
		}
		return
	}

	metrics.RecordEntityDeleted("plan")
	api.OKWithMessage(c, p, "Plan deleted successfully")
}

func (h *Handler) ownedByGym(c *gin.Context) bool {
	p, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrPlanNotFound) {
			api.NotFound(c, "Plan not found")
		} else {
			api.Internal(c, "Failed to fetch plan")
		}
		return false
	}

	if p.GymID != c.Param("gymId") {
		api.NotFound(c, "Plan not found")
		return false
	}

	return true
}
