// Package tenant resolves the gym a request is scoped to. Every
// gym-scoped route group mounts Require so handlers can assume the
// gym in the path exists.
package tenant

import (
	"database/sql"
	"errors"

	"github.com/DGymBook/be-starter-project/internal/api"
	"github.com/DGymBook/be-starter-project/internal/gym"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const contextKey = "tenant.gym"

// Require aborts with the same 404 for a malformed id and a missing
// row, so gym ids cannot be probed.
func Require(gyms gym.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("gymId")
		if _, err := uuid.Parse(id); err != nil {
			api.NotFound(c, "Gym not found")
			c.Abort()
			return
		}

		g, err := gyms.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				api.NotFound(c, "Gym not found")
			} else {
				api.Internal(c, "Failed to resolve gym")
			}
			c.Abort()
			return
		}

		c.Set(contextKey, g)
		c.Next()
	}
}

// FromContext returns the gym resolved by Require, or nil when the
// route is not gym-scoped.
func FromContext(c *gin.Context) *gym.Gym {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	g, _ := v.(*gym.Gym)
	return g
}
