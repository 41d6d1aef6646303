package server

import (
	"context"
	"net/http"

	"github.com/DGymBook/be-starter-project/internal/config"
	"github.com/DGymBook/be-starter-project/internal/gym"
	"github.com/DGymBook/be-starter-project/internal/member"
	"github.com/DGymBook/be-starter-project/internal/membership"
	"github.com/DGymBook/be-starter-project/internal/plan"
	"github.com/DGymBook/be-starter-project/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	config *config.Config
}

func New(db *sqlx.DB, cfg *config.Config) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware(cfg.CORSOrigin))
	router.Use(RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	gymRepo := gym.NewRepository(db)
	memberRepo := member.NewRepository(db)
	planRepo := plan.NewRepository(db)
	membershipRepo := membership.NewRepository(db)

	gymHandler := gym.NewHandler(gym.NewService(gymRepo))
	memberHandler := member.NewHandler(member.NewService(memberRepo, gymRepo))
	planHandler := plan.NewHandler(plan.NewService(planRepo, gymRepo))
	membershipHandler := membership.NewHandler(
		membership.NewService(membershipRepo, memberRepo, planRepo), memberRepo)

	router.GET("/", Root)
	router.GET("/metrics", Metrics())

	api := router.Group("/api")
	api.GET("/health", Health)

	gyms := api.Group("/gyms")
	{
		gyms.GET("", gymHandler.List)
		gyms.POST("", gymHandler.Create)
		gyms.GET("/:id", gymHandler.Get)
		gyms.PATCH("/:id", gymHandler.Update)
		gyms.DELETE("/:id", gymHandler.Delete)
	}

	// Everything below is scoped to one gym resolved from the path.
	scoped := api.Group("/:gymId", tenant.Require(gymRepo))
	{
		members := scoped.Group("/members")
		members.GET("", memberHandler.List)
		members.POST("", memberHandler.Create)
		members.GET("/:id", memberHandler.Get)
		members.PATCH("/:id", memberHandler.Update)
		members.DELETE("/:id", memberHandler.Delete)

		plans := scoped.Group("/plans")
		plans.GET("", planHandler.List)
		plans.POST("", planHandler.Create)
		plans.GET("/:id", planHandler.Get)
		plans.PATCH("/:id", planHandler.Update)
		plans.DELETE("/:id", planHandler.Delete)

		memberships := scoped.Group("/memberships")
		memberships.GET("", membershipHandler.List)
		memberships.POST("", membershipHandler.Create)
		memberships.GET("/:id", membershipHandler.Get)
		memberships.PATCH("/:id", membershipHandler.Update)
		memberships.DELETE("/:id", membershipHandler.Delete)
	}

	return &Server{
		router: router,
		config: cfg,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func corsMiddleware(origin string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
