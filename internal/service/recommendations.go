package service

import "github.com/sumaiya226/PCOS/internal/models"

// GenerateRecommendations builds personalized advice from the submitted
// lifestyle answers. Rules fire independently; a high overall risk prepends
// an urgent consultation item.
func GenerateRecommendations(input map[string]float64, riskLevel string) []models.Recommendation {
	var recommendations []models.Recommendation

	if input["BMI"] > 25 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Weight Management",
			Priority:    "high",
			Title:       "Focus on Weight Management",
			Description: "Your BMI indicates you may benefit from weight management. Even a 5-10% weight loss can significantly improve PCOS symptoms.",
			Actions: []string{
				"Consult a nutritionist",
				"Start with 150 minutes of exercise per week",
				"Track your food intake",
			},
		})
	}

	if input["CycleRegularity"] >= 1 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Menstrual Health",
			Priority:    "high",
			Title:       "Track Your Menstrual Cycle",
			Description: "Irregular cycles are a key PCOS symptom. Regular tracking helps identify patterns.",
			Actions: []string{
				"Use our symptom tracker daily",
				"Note cycle length and flow",
				"Consult a gynecologist if cycles are consistently irregular",
			},
		})
	}

	if input["ExerciseFrequency"] < 3 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Physical Activity",
			Priority:    "medium",
			Title:       "Increase Physical Activity",
			Description: "Regular exercise helps manage PCOS symptoms, improve insulin sensitivity, and reduce stress.",
			Actions: []string{
				"Aim for 30 minutes of activity 5 days a week",
				"Try a mix of cardio and strength training",
				"Start with walking or yoga",
			},
		})
	}

	if input["StressLevel"] > 6 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Mental Health",
			Priority:    "high",
			Title:       "Manage Stress Levels",
			Description: "High stress can worsen PCOS symptoms by affecting hormones.",
			Actions: []string{
				"Practice meditation or mindfulness",
				"Ensure 7-8 hours of sleep",
				"Consider counseling or therapy",
				"Try stress-reduction techniques like yoga",
			},
		})
	}

	if sleep, ok := input["SleepQuality"]; ok && sleep < 5 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Sleep Hygiene",
			Priority:    "medium",
			Title:       "Improve Sleep Quality",
			Description: "Poor sleep affects hormone balance and can worsen PCOS symptoms.",
			Actions: []string{
				"Maintain a regular sleep schedule",
				"Avoid screens before bedtime",
				"Create a relaxing bedtime routine",
			},
		})
	}

	if input["Hirsutism"] > 1 {
		recommendations = append(recommendations, models.Recommendation{
			Category:    "Symptom Management",
			Priority:    "medium",
			Title:       "Address Excess Hair Growth",
			Description: "Excess hair growth is a common PCOS symptom related to elevated androgens.",
			Actions: []string{
				"Consult a dermatologist",
				"Consider treatments like laser hair removal",
				"Check hormone levels with your doctor",
			},
		})
	}

	if riskLevel == "High" {
		urgent := models.Recommendation{
			Category:    "Medical Consultation",
			Priority:    "urgent",
			Title:       "Consult a Healthcare Provider",
			Description: "Your assessment suggests a higher risk of PCOS. Please consult a gynecologist or endocrinologist for proper diagnosis and treatment.",
			Actions: []string{
				"Schedule an appointment with a gynecologist",
				"Get blood tests (hormones, glucose, insulin)",
				"Discuss ultrasound examination if needed",
			},
		}
		recommendations = append([]models.Recommendation{urgent}, recommendations...)
	}

	return recommendations
}
