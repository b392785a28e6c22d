package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sumaiya226/PCOS/internal/service"
)

type HealthHandlers struct {
	db *gorm.DB
	s  *service.PredictionService
}

func NewHealthHandlers(db *gorm.DB, predictionService *service.PredictionService) *HealthHandlers {
	return &HealthHandlers{db: db, s: predictionService}
}

// GET /
func (h *HealthHandlers) Home(c *gin.Context) {
	status := "ready"
	if !h.s.ClinicalReady() {
		status = "model not loaded"
	}

	features := h.s.ClinicalFeatureNames()
	if features == nil {
		features = []string{}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "PCOS Prediction API with Authentication",
		"features": features,
		"status":   status,
	})
}

// GET /health
func (h *HealthHandlers) Health(c *gin.Context) {
	dbConnected := false
	if sqlDB, err := h.db.DB(); err == nil {
		dbConnected = sqlDB.Ping() == nil
	}

	c.JSON(http.StatusOK, gin.H{
		"status":                 "healthy",
		"timestamp":              time.Now().UTC(),
		"model_loaded":           h.s.ClinicalReady(),
		"lifestyle_model_loaded": h.s.LifestyleReady(),
		"features_count":         len(h.s.ClinicalFeatureNames()),
		"database_connected":     dbConnected,
	})
}
