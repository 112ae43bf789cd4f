package routes

import (
	"okr-tracker-backend/internal/api/handlers"
	"okr-tracker-backend/internal/api/middleware"
	"okr-tracker-backend/internal/auth"
	"okr-tracker-backend/internal/config"
	"okr-tracker-backend/internal/database"
	"okr-tracker-backend/internal/database/models"
	"okr-tracker-backend/internal/repository"
	"okr-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	membershipRepo := repository.NewMembershipRepository(db)
	objectiveRepo := repository.NewObjectiveRepository(db)
	keyResultRepo := repository.NewKeyResultRepository(db)
	updateRepo := repository.NewProgressUpdateRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, membershipRepo, validator)
	teamService := service.NewTeamService(teamRepo, membershipRepo, userRepo, validator)
	objectiveService := service.NewObjectiveService(objectiveRepo, teamRepo, membershipRepo, validator)
	keyResultService := service.NewKeyResultService(keyResultRepo, objectiveRepo, membershipRepo, updateRepo, validator)
	dashboardService := service.NewDashboardService(userRepo, teamRepo, objectiveRepo, keyResultRepo, updateRepo)
	managerService := service.NewManagerService(teamRepo, updateRepo)
	memberService := service.NewMemberService(teamRepo, updateRepo, func() error {
		return database.Ping(db)
	})

	// Initialize auth configuration and services
	sessionConfig, err := auth.LoadSessionConfig("config/session.yaml")
	if err != nil {
		logrus.Warnf("Failed to load session config: %v", err)
		sessionConfig = nil
	}
	authService := auth.NewAuthService(sessionConfig, cfg.JWTSecret, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	adminHandler := handlers.NewAdminHandler(userService, teamService, dashboardService)
	managerHandler := handlers.NewManagerHandler(managerService, objectiveService, keyResultService)
	memberHandler := handlers.NewMemberHandler(memberService, keyResultService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")

	// Auth routes (public)
	authGroup := v1.Group("/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.POST("/validate", authHandler.ValidateToken)
	}

	// Admin routes: platform-wide administration. Role matching is exact; an
	// admin is not implicitly a manager or member.
	admin := v1.Group("/admin")
	admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.UserRoleAdmin))
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)

		users := admin.Group("/users")
		{
			users.GET("", adminHandler.ListUsers)
			users.POST("", adminHandler.CreateUser)
			users.POST("/roles", adminHandler.BulkChangeRoles)
			users.GET("/:id", adminHandler.GetUser)
			users.PUT("/:id", adminHandler.UpdateUser)
			users.DELETE("/:id", adminHandler.DeleteUser)
		}

		teams := admin.Group("/teams")
		{
			teams.GET("", adminHandler.ListTeams)
			teams.POST("", adminHandler.CreateTeam)
			teams.GET("/overview", adminHandler.GetTeamsOverview)
			teams.GET("/:id", adminHandler.GetTeam)
			teams.PUT("/:id", adminHandler.UpdateTeam)
			teams.DELETE("/:id", adminHandler.DeleteTeam)
			teams.POST("/:id/members", adminHandler.AddTeamMember)
			teams.DELETE("/:id/members/:userId", adminHandler.RemoveTeamMember)
		}
	}

	// Manager routes: objective and key-result administration on managed teams
	manager := v1.Group("/manager")
	manager.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.UserRoleManager))
	{
		manager.GET("/dashboard", managerHandler.GetDashboard)
		manager.GET("/teams/:id/objectives", managerHandler.ListObjectives)

		objectives := manager.Group("/objectives")
		{
			objectives.POST("", managerHandler.CreateObjective)
			objectives.GET("/:id", managerHandler.GetObjectiveDetail)
			objectives.PUT("/:id", managerHandler.UpdateObjective)
			objectives.DELETE("/:id", managerHandler.DeleteObjective)
		}

		keyResults := manager.Group("/key-results")
		{
			keyResults.POST("", managerHandler.CreateKeyResult)
			keyResults.PUT("/:id", managerHandler.UpdateKeyResult)
			keyResults.DELETE("/:id", managerHandler.DeleteKeyResult)
		}
	}

	// Member routes: personal views and progress reporting
	member := v1.Group("/member")
	member.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(models.UserRoleMember))
	{
		member.GET("/dashboard", memberHandler.GetDashboard)
		member.GET("/objectives", memberHandler.ListObjectives)
		member.GET("/updates", memberHandler.GetUpdates)
		member.PUT("/key-results/:id/progress", memberHandler.UpdateProgress)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	return router
}
