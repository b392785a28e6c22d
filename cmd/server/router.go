package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/sumaiya226/PCOS/internal/handlers"
	"github.com/sumaiya226/PCOS/internal/middleware"
	"github.com/sumaiya226/PCOS/internal/repository"
	"github.com/sumaiya226/PCOS/internal/service"
)

func setupRouter() *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	symptomLogRepo := repository.NewSymptomLogRepository(db)

	jwtService := service.NewJWTService(cfg.Auth.JWTSecret)
	userService := service.NewUserService(userRepo, jwtService)
	clinicalBundle, lifestyleBundle := service.LoadModelBundles(cfg.Models)
	predictionService := service.NewPredictionService(predictionRepo, profileRepo, clinicalBundle, lifestyleBundle)

	authHandlers := handlers.NewAuthHandlers(userService, jwtService)
	predictionHandlers := handlers.NewPredictionHandlers(predictionService)
	lifestyleHandlers := handlers.NewLifestyleHandlers(predictionService, symptomLogRepo)
	healthHandlers := handlers.NewHealthHandlers(db, predictionService)

	jwtMiddleware := middleware.NewJWTMiddleware(jwtService, userService)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	router.GET("/", healthHandlers.Home)
	router.GET("/health", healthHandlers.Health)
	router.GET("/features", predictionHandlers.Features)

	auth := router.Group("/auth")
	{
		auth.POST("/register", authHandlers.Register)
		auth.POST("/login", authHandlers.Login)
		auth.POST("/refresh", authHandlers.RefreshToken)
		auth.POST("/logout", authHandlers.Logout)
		auth.GET("/me", jwtMiddleware.RequireAuth(), authHandlers.GetProfile)
	}

	protected := router.Group("", jwtMiddleware.RequireAuth())
	{
		protected.POST("/predict", predictionHandlers.Predict)
		protected.GET("/predictions/history", predictionHandlers.History)

		lifestyle := protected.Group("/lifestyle")
		{
			lifestyle.POST("/assess", lifestyleHandlers.Assess)
			lifestyle.POST("/symptom-log", lifestyleHandlers.SaveSymptomLog)
			lifestyle.GET("/history", lifestyleHandlers.History)
		}
	}

	return router
}
