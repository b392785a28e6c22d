package service

import (
	"testing"
)

func categories(input map[string]float64, riskLevel string) map[string]bool {
	out := make(map[string]bool)
	for _, rec := range GenerateRecommendations(input, riskLevel) {
		out[rec.Category] = true
	}
	return out
}

func TestGenerateRecommendations_LowRiskHealthyProfile(t *testing.T) {
	input := map[string]float64{
		"BMI":               22,
		"CycleRegularity":   0,
		"ExerciseFrequency": 5,
		"StressLevel":       3,
		"SleepQuality":      8,
		"Hirsutism":         0,
	}

	recs := GenerateRecommendations(input, "Low")
	if len(recs) != 0 {
		t.Errorf("healthy profile should yield no recommendations, got %d", len(recs))
	}
}

func TestGenerateRecommendations_RuleTriggers(t *testing.T) {
	tests := []struct {
		name     string
		input    map[string]float64
		category string
	}{
		{"high BMI", map[string]float64{"BMI": 30, "SleepQuality": 8, "ExerciseFrequency": 5}, "Weight Management"},
		{"irregular cycles", map[string]float64{"CycleRegularity": 2, "SleepQuality": 8, "ExerciseFrequency": 5}, "Menstrual Health"},
		{"low exercise", map[string]float64{"ExerciseFrequency": 1, "SleepQuality": 8}, "Physical Activity"},
		{"high stress", map[string]float64{"StressLevel": 8, "SleepQuality": 8, "ExerciseFrequency": 5}, "Mental Health"},
		{"poor sleep", map[string]float64{"SleepQuality": 3, "ExerciseFrequency": 5}, "Sleep Hygiene"},
		{"hirsutism", map[string]float64{"Hirsutism": 2, "SleepQuality": 8, "ExerciseFrequency": 5}, "Symptom Management"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := categories(tt.input, "Low")
			if !got[tt.category] {
				t.Errorf("expected category %q in %v", tt.category, got)
			}
		})
	}
}

func TestGenerateRecommendations_SleepRuleNeedsValue(t *testing.T) {
	// absent SleepQuality must not be treated as 0
	got := categories(map[string]float64{"ExerciseFrequency": 5}, "Low")
	if got["Sleep Hygiene"] {
		t.Error("sleep recommendation fired without a sleep answer")
	}
}

func TestGenerateRecommendations_HighRiskPrependsConsultation(t *testing.T) {
	input := map[string]float64{"BMI": 30, "SleepQuality": 8, "ExerciseFrequency": 5}

	recs := GenerateRecommendations(input, "High")
	if len(recs) < 2 {
		t.Fatalf("expected consultation plus BMI advice, got %d items", len(recs))
	}
	if recs[0].Category != "Medical Consultation" || recs[0].Priority != "urgent" {
		t.Errorf("first item = %s/%s, want Medical Consultation/urgent", recs[0].Category, recs[0].Priority)
	}
}
