package membership

import (
	"database/sql"
	"errors"

	"github.com/DGymBook/be-starter-project/internal/api"
	"github.com/DGymBook/be-starter-project/internal/logger"
	"github.com/DGymBook/be-starter-project/internal/member"
	"github.com/DGymBook/be-starter-project/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler resolves tenant ownership through the owning member, so it
// keeps a member repository next to the service.
type Handler struct {
	service Service
	members member.Repository
}

func NewHandler(service Service, members member.Repository) *Handler {
	return &Handler{service: service, members: members}
}

func (h *Handler) List(c *gin.Context) {
	memberships, count, err := h.service.ListByGym(c.Request.Context(), c.Param("gymId"))
	if err != nil {
		api.Internal(c, "Failed to fetch memberships")
		return
	}

	api.List(c, memberships, count)
}

func (h *Handler) Get(c *gin.Context) {
	ms := h.ownedByGym(c)
	if ms == nil {
		return
	}

	api.OK(c, ms)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	if !h.memberInGym(c, req.MemberID) {
		return
	}

	ms, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMemberOrPlanMissing):
			api.BadRequest(c, "Failed to create membership. Member or plan not found.")
		case errors.Is(err, ErrInvalidDate):
			api.BadRequest(c, "Invalid date format")
		default:
			logger.Errorf("Failed to create membership: %v", err)
			api.Internal(c, "Failed to create membership")
		}
		return
	}

	metrics.RecordMembershipCreated()
	api.Created(c, ms, "Membership created successfully")
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequest(c, "Invalid JSON body")
		return
	}
	if errs := api.ValidateStruct(req); errs != nil {
		api.ValidationFailed(c, errs)
		return
	}

	if h.ownedByGym(c) == nil {
		return
	}

	ms, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMembershipNotFound):
			api.NotFound(c, "Membership not found")
		case errors.Is(err, ErrInvalidDate):
			api.BadRequest(c, "Invalid date format")
		default:
			api.Internal(c, "Failed to update membership")
		}
		return
	}

	api.OKWithMessage(c, ms, "Membership updated successfully")
}

func (h *Handler) Delete(c *gin.Context) {
	if h.ownedByGym(c) == nil {
		return
	}

	ms, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			api.NotFound(c, "Membership not found")
		} else {
			api.Internal(c, "Failed to delete membership")
		}
		return
	}

	metrics.RecordEntityDeleted("membership")
	api.OKWithMessage(c, ms, "Membership deleted successfully")
}

// memberInGym rejects creations that reference a member outside the
// current gym before the service touches the plan.
func (h *Handler) memberInGym(c *gin.Context, memberID string) bool {
	if _, err := uuid.Parse(memberID); err != nil {
		api.BadRequest(c, "Member not found in this gym")
		return false
	}

	m, err := h.members.GetByID(c.Request.Context(), memberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			api.BadRequest(c, "Member not found in this gym")
		} else {
			api.Internal(c, "Failed to create membership")
		}
		return false
	}

	if m.GymID != c.Param("gymId") {
		api.BadRequest(c, "Member not found in this gym")
		return false
	}

	return true
}

// ownedByGym loads the membership and walks to its member; a
// membership owned by another gym reads as missing.
func (h *Handler) ownedByGym(c *gin.Context) *Membership {
	ms, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrMembershipNotFound) {
			api.NotFound(c, "Membership not found")
		} else {
			api.Internal(c, "Failed to fetch membership")
		}
		return nil
	}

	m, err := h.members.GetByID(c.Request.Context(), ms.MemberID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			api.NotFound(c, "Membership not found")
		} else {
			api.Internal(c, "Failed to fetch membership")
		}
		return nil
	}

	if m.GymID != c.Param("gymId") {
		api.NotFound(c, "Membership not found")
		return nil
	}

	return ms
}
