package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/sumaiya226/PCOS/internal/ml"
	"github.com/sumaiya226/PCOS/internal/models"
	"github.com/sumaiya226/PCOS/internal/service"
)

// stubStore satisfies service.PredictionStore without a database.
type stubStore struct{}

func (stubStore) Create(context.Context, *models.Prediction) error { return nil }
func (stubStore) ListByUser(context.Context, string) ([]models.Prediction, error) {
	return nil, nil
}
func (stubStore) CreateLifestyle(context.Context, *models.LifestylePrediction) error { return nil }
func (stubStore) ListLifestyleByUser(context.Context, string) ([]models.LifestylePrediction, error) {
	return nil, nil
}

// clinicalTestBundle trains a minimal two-feature pipeline.
func clinicalTestBundle(t *testing.T) *ml.Bundle {
	t.Helper()

	n := 60
	X := mat.NewDense(n, 2, nil)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		if i%2 == 0 {
			X.Set(i, 0, -2)
		} else {
			X.Set(i, 0, 2)
			y[i] = 1
		}
		X.Set(i, 1, float64(i%3))
	}

	scaler := ml.NewStandardScaler()
	scaled, err := scaler.FitTransform(X)
	require.NoError(t, err)
	model := ml.NewLogisticRegression()
	require.NoError(t, model.Fit(scaled, y))

	return ml.NewBundle(model, scaler, []string{"Age", "BMI"})
}

func newTestRouter(clinical *ml.Bundle) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewPredictionService(stubStore{}, nil, clinical, nil)
	h := NewPredictionHandlers(svc)

	router := gin.New()
	router.GET("/features", h.Features)
	router.POST("/predict", func(c *gin.Context) {
		c.Set("user_id", "test-user")
		h.Predict(c)
	})
	return router
}

func TestPredict_Success(t *testing.T) {
	router := newTestRouter(clinicalTestBundle(t))

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"Age": 2, "BMI": 1}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		PCOSRisk           int     `json:"pcos_risk"`
		Probability        float64 `json:"probability"`
		HealthyProbability float64 `json:"healthy_probability"`
		RiskLevel          string  `json:"risk_level"`
		PredictionText     string  `json:"prediction_text"`
		Confidence         float64 `json:"confidence"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.PCOSRisk)
	assert.Equal(t, "PCOS Likely", body.PredictionText)
	assert.Greater(t, body.Probability, 0.5)
	assert.InDelta(t, 1-body.Probability, body.HealthyProbability, 0.002)
	assert.NotEmpty(t, body.RiskLevel)
	assert.Equal(t, body.Probability, body.Confidence)
}

func TestPredict_ModelNotLoaded(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"Age": 30}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "train the model first")
}

func TestPredict_MissingFeature(t *testing.T) {
	router := newTestRouter(clinicalTestBundle(t))

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"Age": 30}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var body struct {
		Error            string   `json:"error"`
		RequiredFeatures []string `json:"required_features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "BMI")
	assert.Equal(t, []string{"Age", "BMI"}, body.RequiredFeatures)
}

func TestPredict_EmptyBody(t *testing.T) {
	router := newTestRouter(clinicalTestBundle(t))

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No data provided")
}

func TestPredict_NonNumericInput(t *testing.T) {
	router := newTestRouter(clinicalTestBundle(t))

	req := httptest.NewRequest(http.MethodPost, "/predict", strings.NewReader(`{"Age": "thirty"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFeatures_ModelNotLoaded(t *testing.T) {
	router := newTestRouter(nil)

	req := httptest.NewRequest(http.MethodGet, "/features", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestFeatures_ListsModelFeatures(t *testing.T) {
	router := newTestRouter(clinicalTestBundle(t))

	req := httptest.NewRequest(http.MethodGet, "/features", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Features []string `json:"features"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []string{"Age", "BMI"}, body.Features)
}
