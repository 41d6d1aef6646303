package gym

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
	gyms, count, err := h.service.List(c.Request.Context())
	if err != nil {
		api.Internal(c, "Failed to fetch gyms")
		return
	}

	api.List(c, gyms, count)
}

func (h *Handler) Get(c *gin.Context) {
	g, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.NotFound(c, "Gym not found")
			return
		}
		api.Internal(c, "Failed to fetch gym")
		return
	}

	api.OK(c, g)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		logger.Errorf("Failed to create gym: %v", err)
		api.Internal(c, "Failed to create gym")
		return
	}

	metrics.RecordEntityCreated("gym")
	api.Created(c, g, "Gym created successfully")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateGymRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	g, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.NotFound(c, "Gym not found")
			return
		}
		api.Internal(c, "Failed to update gym")
		return
	}

	api.OKWithMessage(c, g, "Gym updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	g, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrGymNotFound) {
			api.NotFound(c, "Gym not found")
			return
		}
		api.Internal(c, "Failed to delete gym")
		return
	}

	metrics.RecordEntityDeleted("gym")
	api.OKWithMessage(c, g, "Gym deleted successfully")
}
