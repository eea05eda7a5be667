package config

import (
	"gracebites-backend/internal/api/handlers"
	"gracebites-backend/internal/api/routes"
	"gracebites-backend/internal/middleware"
	"gracebites-backend/internal/utils"
	"gracebites-backend/internal/utils/storage"
	"gracebites-backend/pkg/analysis"
	"gracebites-backend/pkg/collaboration"
	"gracebites-backend/pkg/dashboard"
	"gracebites-backend/pkg/donation"
	"gracebites-backend/pkg/jwt"
	"gracebites-backend/pkg/profile"
	"gracebites-backend/pkg/request"
	"gracebites-backend/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	profileRepository := profile.NewProfileRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	requestRepository := request.NewRequestRepository(db)
	collaborationRepository := collaboration.NewCollaborationRepository(db)
	analysisRepository := analysis.NewAnalysisRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	profileService := profile.NewProfileService(profileRepository, userRepository, s3)
	donationService := donation.NewDonationService(donationRepository, s3)
	requestService := request.NewRequestService(requestRepository)
	collaborationService := collaboration.NewCollaborationService(
		collaborationRepository,
		donationRepository,
		requestRepository,
		analysisRepository,
	)
	analysisService := analysis.NewAnalysisService(analysisRepository, donationRepository)
	dashboardService := dashboard.NewDashboardService(
		donationRepository,
		requestRepository,
		collaborationRepository,
		userRepository,
		analysisService,
		profileService,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	requestHandler := handlers.NewRequestHandler(requestService, validator)
	collaborationHandler := handlers.NewCollaborationHandler(collaborationService, validator)
	profileHandler := handlers.NewProfileHandler(profileService, validator)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		UserHandler:          userHandler,
		DonationHandler:      donationHandler,
		RequestHandler:       requestHandler,
		CollaborationHandler: collaborationHandler,
		ProfileHandler:       profileHandler,
		DashboardHandler:     dashboardHandler,
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
