package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sumaiya226/PCOS/internal/models"
	"github.com/sumaiya226/PCOS/internal/repository"
	"github.com/sumaiya226/PCOS/internal/service"
)

type LifestyleHandlers struct {
	s           *service.PredictionService
	symptomLogs *repository.SymptomLogRepository
}

func NewLifestyleHandlers(predictionService *service.PredictionService, symptomLogs *repository.SymptomLogRepository) *LifestyleHandlers {
	return &LifestyleHandlers{
		s:           predictionService,
		symptomLogs: symptomLogs,
	}
}

// POST /lifestyle/assess
func (h *LifestyleHandlers) Assess(c *gin.Context) {
	var input map[string]float64
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if len(input) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No data provided"})
		return
	}

	response, err := h.s.Assess(c, c.GetString("user_id"), input)
	if err != nil {
		writeInferenceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// POST /lifestyle/symptom-log
func (h *LifestyleHandlers) SaveSymptomLog(c *gin.Context) {
	var req models.SymptomLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	logDate := time.Now().UTC()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
			return
		}
		logDate = parsed
	}

	periodFlow := req.PeriodFlow
	if periodFlow == "" {
		periodFlow = "None"
	}

	log := &models.SymptomLog{
		UserID:         c.GetString("user_id"),
		LogDate:        logDate,
		AcneSeverity:   req.Acne,
		HirsutismScore: req.Hirsutism,
		HairLossScore:  req.HairLoss,
		FatigueLevel:   req.Fatigue,
		MoodSwings:     req.MoodChanges,
		AnxietyLevel:   req.Anxiety,
		SleepQuality:   req.SleepQuality,
		FoodCravings:   req.FoodCravings,
		Bloating:       req.Bloating,
		PeriodFlow:     periodFlow,
		PeriodActive:   req.PeriodActive,
	}

	if err := h.symptomLogs.Create(c, log); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save symptom log", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Symptom log saved successfully"})
}

// GET /lifestyle/history
func (h *LifestyleHandlers) History(c *gin.Context) {
	predictions, err := h.s.LifestyleHistory(c, c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get history", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"predictions": predictions})
}
