package server

import (
	"context"
	"net/http"
	"time"

	"tessalp/internal/access"
	"tessalp/internal/auth"
	"tessalp/internal/checkin"
	"tessalp/internal/class"
	"tessalp/internal/coach"
	"tessalp/internal/config"
	"tessalp/internal/email"
	"tessalp/internal/facility"
	"tessalp/internal/gym"
	"tessalp/internal/instructor"
	"tessalp/internal/member"
	"tessalp/internal/plan"
	"tessalp/internal/stats"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())

	gymService := gym.NewService(gym.NewRepository(db), cfg.GymAccessKey)
	gymHandler := gym.NewHandler(gymService, cfg.AuthSecret)

	memberRepo := member.NewRepository(db)
	memberService := member.NewService(memberRepo, emailService)
	memberHandler := member.NewHandler(memberService, cfg.AuthSecret)

	coachRepo := coach.NewRepository(db)
	coachService := coach.NewService(coachRepo, memberRepo)
	coachHandler := coach.NewHandler(coachService, cfg.AuthSecret)

	accessService := access.NewService(access.NewRepository(db), memberRepo, coachRepo, emailService)
	accessHandler := access.NewHandler(accessService, coachService)

	classHandler := class.NewHandler(class.NewService(class.NewRepository(db)))
	instructorHandler := instructor.NewHandler(instructor.NewService(instructor.NewRepository(db)))

	facilityHandler := facility.NewHandler(facility.NewService(facility.NewRepository(db)), gymService)

	planRepo := plan.NewRepository(db)
	planHandler := plan.NewHandler(plan.NewService(planRepo), gymService)

	checkinHandler := checkin.NewHandler(checkin.NewService(checkin.NewRepository(db), memberRepo))

	statsHandler := stats.NewHandler(stats.NewService(stats.NewRepository(db), planRepo))

	authLimit := RateLimitMiddleware(5, 10)

	api := router.Group("/api")
	{
		// Tenant directory and public per-gym reads. The :gymId segment
		// accepts a slug, a slug with spaces, or a numeric id.
		api.GET("/gyms", gymHandler.ListGyms)
		api.POST("/gyms", authLimit, gymHandler.CreateGym)
		api.GET("/gyms/:gymId", gymHandler.ResolvePublicGym)
		api.GET("/gyms/:gymId/schedules", gymHandler.PublicSchedules)
		api.GET("/gyms/:gymId/facilities", facilityHandler.PublicList)
		api.GET("/gyms/:gymId/membership-plans", planHandler.PublicList)

		// Global catalogs.
		api.GET("/classes", classHandler.List)
		api.POST("/classes", classHandler.Create)
		api.PUT("/classes/:id", classHandler.Update)
		api.DELETE("/classes/:id", classHandler.Delete)
		api.GET("/instructors", instructorHandler.List)
		api.POST("/instructors", instructorHandler.Create)
		api.PUT("/instructors/:id", instructorHandler.Update)
		api.DELETE("/instructors/:id", instructorHandler.Delete)

		// Gym admin authentication.
		gymAuth := api.Group("/gym/auth")
		{
			gymAuth.POST("/login", authLimit, gymHandler.Login)
			gymAuth.POST("/logout", gymHandler.Logout)
			gymAuth.GET("/me", auth.RequireGymSession(cfg.AuthSecret), gymHandler.Me)
			gymAuth.POST("/change-password", auth.RequireGymSession(cfg.AuthSecret), gymHandler.ChangePassword)
		}
		api.POST("/gym/:gymId/verify-access", authLimit, gymHandler.VerifyAccess)

		// Tenant-scoped admin routes. The middleware matches the path id
		// against the session, falling back to gym_access_<id> cookies.
		gymAdmin := api.Group("/gym/:gymId")
		gymAdmin.Use(auth.RequireGymIdentity(cfg.AuthSecret))
		{
			gymAdmin.GET("", gymHandler.GetGym)
			gymAdmin.GET("/schedules", gymHandler.GetSchedules)
			gymAdmin.PUT("/schedules", gymHandler.UpdateSchedules)

			gymAdmin.GET("/facilities", facilityHandler.List)
			gymAdmin.POST("/facilities", facilityHandler.Create)
			gymAdmin.PUT("/facilities/:id", facilityHandler.Update)
			gymAdmin.DELETE("/facilities/:id", facilityHandler.Delete)
			gymAdmin.PUT("/amenities", facilityHandler.ReplaceAmenities)

			gymAdmin.GET("/membership-plans", planHandler.List)
			gymAdmin.POST("/membership-plans", planHandler.Create)
			gymAdmin.PUT("/membership-plans/:id", planHandler.Update)
			gymAdmin.DELETE("/membership-plans/:id", planHandler.Delete)

			gymAdmin.GET("/members", memberHandler.ListMembers)
			gymAdmin.POST("/members", memberHandler.CreateMember)
			gymAdmin.PUT("/members/:id", memberHandler.UpdateMember)
			gymAdmin.DELETE("/members/:id", memberHandler.DeleteMember)

			gymAdmin.GET("/checkins", checkinHandler.ListForGym)
		}

		api.PUT("/gyms/:gymId", auth.RequireGymIdentity(cfg.AuthSecret), gymHandler.UpdateGym)

		// Stats resolve the tenant from whichever cookie is present.
		api.GET("/admin/stats", auth.RequireAnyGymIdentity(cfg.AuthSecret), statsHandler.Dashboard)

		// Member and coach portal.
		portalAuth := api.Group("/auth")
		{
			portalAuth.POST("/register", authLimit, memberHandler.Register)
			portalAuth.POST("/login", authLimit, memberHandler.Login)
			portalAuth.POST("/logout", memberHandler.Logout)
			portalAuth.GET("/me", auth.RequireUserSession(cfg.AuthSecret), memberHandler.Me)
		}

		userSession := auth.RequireUserSession(cfg.AuthSecret)
		api.POST("/purchases", userSession, memberHandler.RecordPurchase)
		api.GET("/purchases", userSession, memberHandler.ListPurchases)

		memberGroup := api.Group("/member")
		memberGroup.Use(userSession)
		{
			memberGroup.GET("/access", accessHandler.ListForMember)
			memberGroup.POST("/access", accessHandler.Respond)
		}

		coachGroup := api.Group("/coach")
		{
			coachGroup.POST("/register", authLimit, coachHandler.Register)
			coachGroup.POST("/login", authLimit, coachHandler.Login)
			coachGroup.GET("/dashboard", userSession, coachHandler.Dashboard)
			coachGroup.GET("/access", userSession, accessHandler.ListForCoach)
			coachGroup.POST("/access", userSession, accessHandler.CreateRequest)
		}

		api.POST("/checkins", checkinHandler.Record)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown drains in-flight requests before returning.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Router exposes the handler tree for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}
