package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sumaiya226/PCOS/internal/service"
)

type PredictionHandlers struct {
	s *service.PredictionService
}

func NewPredictionHandlers(predictionService *service.PredictionService) *PredictionHandlers {
	return &PredictionHandlers{s: predictionService}
}

// POST /predict
func (h *PredictionHandlers) Predict(c *gin.Context) {
	var input map[string]float64
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if len(input) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	response, err := h.s.Predict(c, c.GetString("user_id"), input)
	if err != nil {
		writeInferenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GET /predictions/history
func (h *PredictionHandlers) History(c *gin.Context) {
	predictions, err := h.s.History(c, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}

// GET /features
func (h *PredictionHandlers) Features(c *gin.Context) {
	if !h.s.ClinicalReady() {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Model not loaded"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"features":     h.s.ClinicalFeatureNames(),
		"feature_info": clinicalFeatureInfo,
	})
}

// clinicalFeatureInfo documents the expected input ranges for clients.
var clinicalFeatureInfo = map[string]gin.H{
	"Age":          {"description": "Age in years", "typical_range": "18-45"},
	"BMI":          {"description": "Body Mass Index", "typical_range": "18-35"},
	"Insulin":      {"description": "Insulin level (μIU/mL)", "typical_range": "5-25"},
	"Testosterone": {"description": "Testosterone level (ng/dL)", "typical_range": "15-85"},
	"LH":           {"description": "Luteinizing Hormone (mIU/mL)", "typical_range": "2-20"},
	"FSH":          {"description": "Follicle Stimulating Hormone (mIU/mL)", "typical_range": "3-12"},
	"Glucose":      {"description": "Glucose level (mg/dL)", "typical_range": "70-140"},
	"Cholesterol":  {"description": "Cholesterol level (mg/dL)", "typical_range": "150-250"},
}

// writeInferenceError maps service errors onto HTTP statuses shared by both
// inference endpoints.
func writeInferenceError(c *gin.Context, err error) {
	var missing *service.MissingFeatureError
	if errors.As(err, &missing) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             missing.Error(),
			"required_features": missing.Required,
		})
		return
	}

	var notLoaded *service.ErrModelNotLoaded
	if errors.As(err, &notLoaded) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": notLoaded.Error()})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "prediction failed", "details": err.Error()})
}
