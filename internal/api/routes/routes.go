package routes

import (
	"time"

	"calyx-crm-backend/internal/api/handlers"
	"calyx-crm-backend/internal/api/middleware"
	"calyx-crm-backend/internal/auth"
	"calyx-crm-backend/internal/config"
	"calyx-crm-backend/internal/database/models"
	"calyx-crm-backend/internal/logger"
	"calyx-crm-backend/internal/repository"
	"calyx-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics())

	validator := validator.New()
	log := logger.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	pipelineRepo := repository.NewPipelineRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	opportunityRepo := repository.NewOpportunityRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Services
	userService := service.NewUserService(userRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	pipelineService := service.NewPipelineService(pipelineRepo, opportunityRepo, validator)
	customerService := service.NewCustomerService(customerRepo, validator)
	leadService := service.NewLeadService(leadRepo, customerRepo, validator)
	opportunityService := service.NewOpportunityService(opportunityRepo, pipelineRepo, customerRepo, validator)
	activityService := service.NewActivityService(activityRepo, validator)
	dashboardService := service.NewDashboardService(opportunityRepo, activityRepo)
	forecastService := service.NewForecastService(opportunityRepo)
	settingsService := service.NewSettingsService(userRepo, validator)

	// Auth
	tokenTTL := time.Duration(cfg.JWTTTLMinutes) * time.Minute
	authService := auth.NewAuthService(userRepo, validator, cfg.JWTSecret, tokenTTL)
	authHandlers := auth.NewAuthHandlers(authService, log)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService, log)
	teamHandler := handlers.NewTeamHandler(teamService, log)
	pipelineHandler := handlers.NewPipelineHandler(pipelineService, log)
	customerHandler := handlers.NewCustomerHandler(customerService, log)
	leadHandler := handlers.NewLeadHandler(leadService, log)
	opportunityHandler := handlers.NewOpportunityHandler(opportunityService, log)
	activityHandler := handlers.NewActivityHandler(activityService, log)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, log)
	forecastHandler := handlers.NewForecastHandler(forecastService, log)
	settingsHandler := handlers.NewSettingsHandler(settingsService, log)
	configHandler := handlers.NewConfigHandler()

	// Operational endpoints
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/register", authHandlers.Register)
		authGroup.POST("/login", authHandlers.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandlers.Me)
	}

	// All remaining API endpoints require authentication
	api := router.Group("/api")
	api.Use(authMiddleware.RequireAuth())
	{
		api.GET("/health", healthHandler.Health)

		users := api.Group("/users")
		{
			users.GET("", userHandler.ListUsers)
			users.GET("/:id", userHandler.GetUser)
			users.PUT("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", authMiddleware.RequireRole(string(models.UserRoleAdmin)), userHandler.DeactivateUser)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), teamHandler.UpdateTeam)
			teams.DELETE("/:id", authMiddleware.RequireRole(string(models.UserRoleAdmin)), teamHandler.DeleteTeam)
			teams.POST("/:id/members", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), teamHandler.AddTeamMember)
			teams.DELETE("/:id/members/:memberId", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), teamHandler.RemoveTeamMember)
		}

		pipeline := api.Group("/pipeline")
		{
			pipeline.GET("", pipelineHandler.ListPipelines)
			pipeline.POST("", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), pipelineHandler.CreatePipeline)
			pipeline.GET("/stats/overview", pipelineHandler.GetPipelineStats)
			pipeline.GET("/:id", pipelineHandler.GetPipeline)
			pipeline.GET("/:id/opportunities", pipelineHandler.ListPipelineOpportunities)
			pipeline.PUT("/:id", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), pipelineHandler.UpdatePipeline)
			pipeline.DELETE("/:id", authMiddleware.RequireRole(string(models.UserRoleAdmin), string(models.UserRoleManager)), pipelineHandler.DeletePipeline)
		}

		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.ListCustomers)
			customers.POST("", customerHandler.CreateCustomer)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		leads := api.Group("/leads")
		{
			leads.GET("", leadHandler.ListLeads)
			leads.POST("", leadHandler.CreateLead)
			leads.GET("/:id", leadHandler.GetLead)
			leads.PUT("/:id", leadHandler.UpdateLead)
			leads.POST("/:id/convert", leadHandler.ConvertLead)
			leads.DELETE("/:id", leadHandler.DeleteLead)
		}

		opportunities := api.Group("/opportunities")
		{
			opportunities.GET("", opportunityHandler.ListOpportunities)
			opportunities.POST("", opportunityHandler.CreateOpportunity)
			opportunities.GET("/stats/overview", opportunityHandler.GetOpportunityStats)
			opportunities.GET("/:id", opportunityHandler.GetOpportunity)
			opportunities.PUT("/:id", opportunityHandler.UpdateOpportunity)
			opportunities.DELETE("/:id", opportunityHandler.DeleteOpportunity)
		}

		activities := api.Group("/activities")
		{
			activities.GET("", activityHandler.ListActivities)
			activities.POST("", activityHandler.CreateActivity)
			activities.GET("/:id", activityHandler.GetActivity)
			activities.PUT("/:id", activityHandler.UpdateActivity)
			activities.DELETE("/:id", activityHandler.DeleteActivity)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/stats", dashboardHandler.GetDashboard)
			dashboard.GET("/recent-activities", dashboardHandler.GetRecentActivities)
		}

		api.GET("/forecast", forecastHandler.GetForecast)

		settings := api.Group("/settings")
		{
			settings.GET("", settingsHandler.GetSettings)
			settings.PUT("", settingsHandler.UpdateSettings)
			settings.PUT("/theme", settingsHandler.UpdateTheme)
			settings.PUT("/notifications", settingsHandler.UpdateNotifications)
		}

		configGroup := api.Group("/config")
		{
			configGroup.GET("/activity-types", configHandler.GetActivityTypes)
			configGroup.GET("/lead-sources", configHandler.GetLeadSources)
			configGroup.GET("/opportunity-statuses", configHandler.GetOpportunityStatuses)
		}
	}

	return router
}
