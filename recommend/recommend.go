// Package recommend derives diet and workout recommendations from a profile
// and a nutrition history. Derivation is a pure function over its arguments:
// no store access, no clock, no randomness.
package recommend

import (
	"math"

	"github.com/Snehagupta00/TrueGrit/models"
)

// BMI bucket thresholds. Buckets are inclusive on the upper side of each
// named threshold: <18.5 underweight, [18.5,25) normal, >=25 overweight.
const (
	bmiUnderweightBelow = 18.5
	bmiOverweightFrom   = 25.0
)

// DietRecommendation is the diet half of a bundle.
type DietRecommendation struct {
	Goal        string   `json:"goal"`
	Calories    string   `json:"calories"`
	Macros      string   `json:"macros"`
	Suggestions []string `json:"suggestions"`
}

// WorkoutRecommendation is the workout half of a bundle.
type WorkoutRecommendation struct {
	Frequency   string   `json:"frequency"`
	Intensity   string   `json:"intensity"`
	Focus       string   `json:"focus"`
	Suggestions []string `json:"suggestions"`
}

// Stats carries the derived numbers. The averages are nil when the nutrition
// history is empty: unavailable is not the same as zero.
type Stats struct {
	BMI         float64  `json:"bmi"`
	AvgCalories *float64 `json:"avgCalories,omitempty"`
	AvgProtein  *float64 `json:"avgProtein,omitempty"`
	AvgCarbs    *float64 `json:"avgCarbs,omitempty"`
	AvgFats     *float64 `json:"avgFats,omitempty"`
}

// Bundle is the full recommendation output.
type Bundle struct {
	Diet    DietRecommendation    `json:"diet"`
	Workout WorkoutRecommendation `json:"workout"`
	Stats   Stats                 `json:"stats"`
}

var dietUnderweight = DietRecommendation{
	Goal:     "Weight gain",
	Calories: "Increase daily caloric intake by 300-500 calories",
	Macros:   "Focus on protein (1.6-2g per kg body weight) and healthy fats",
	Suggestions: []string{
		"Protein-rich foods like chicken, fish, eggs, and legumes",
		"Healthy fats from nuts, avocados, and olive oil",
		"Complex carbs from whole grains, sweet potatoes, and fruits",
	},
}

var dietNormal = DietRecommendation{
	Goal:     "Maintenance and performance",
	Calories: "Maintain current caloric intake with focus on quality",
	Macros:   "Balanced macronutrient distribution",
	Suggestions: []string{
		"Varied protein sources including plant and animal options",
		"Complex carbohydrates for sustained energy",
		"Balanced fat intake from various sources",
	},
}

var dietOverweight = DietRecommendation{
	Goal:     "Weight management",
	Calories: "Maintain a moderate caloric deficit of 300-500 calories",
	Macros:   "Higher protein intake (1.6-2g per kg) and moderate carbs",
	Suggestions: []string{
		"Lean proteins like chicken breast, turkey, and fish",
		"High-fiber foods like vegetables, berries, and legumes",
		"Healthy fats in moderation from nuts, seeds, and avocados",
	},
}

var workoutByLevel = map[string]WorkoutRecommendation{
	models.FitnessBeginner: {
		Frequency: "3-4 days per week",
		Intensity: "Low to moderate",
		Focus:     "Building foundational strength and establishing habits",
		Suggestions: []string{
			"Full-body workouts focusing on compound movements",
			"Bodyweight exercises like squats, pushups, and lunges",
			"Moderate cardio sessions (20-30 min) like walking or cycling",
		},
	},
	models.FitnessIntermediate: {
		Frequency: "4-5 days per week",
		Intensity: "Moderate to high",
		Focus:     "Building muscle and improving cardiovascular fitness",
		Suggestions: []string{
			"Split routines (upper/lower or push/pull/legs)",
			"Incorporate progressive overload with weights",
			"Mix of strength training and interval cardio",
		},
	},
	models.FitnessAdvanced: {
		Frequency: "5-6 days per week",
		Intensity: "High with planned deload periods",
		Focus:     "Specific training goals and performance optimization",
		Suggestions: []string{
			"Periodized training programs with volume/intensity manipulation",
			"Specialized training splits based on goals",
			"Strategic cardio and recovery protocols",
		},
	},
}

// workoutFallback covers unset or unrecognized fitness levels, making the
// workout lookup total.
var workoutFallback = WorkoutRecommendation{
	Frequency: "Start with 2-3 days per week",
	Intensity: "Low to moderate",
	Focus:     "Building consistency and foundational fitness",
	Suggestions: []string{
		"Focus on learning proper form with basic movements",
		"Mix of cardio and basic strength exercises",
		"Gradually increase duration and intensity as fitness improves",
	},
}

// Derive computes the recommendation bundle for a profile and nutrition
// history. It returns false when weight, height, or fitness level is missing;
// the caller should prompt the user to complete their profile.
func Derive(profile models.Profile, entries []models.NutritionEntry) (Bundle, bool) {
	if profile.Weight == nil || *profile.Weight <= 0 ||
		profile.Height == nil || *profile.Height <= 0 ||
		profile.FitnessLevel == "" {
		return Bundle{}, false
	}

	heightMeters := *profile.Height / 100
	bmi := *profile.Weight / (heightMeters * heightMeters)

	bundle := Bundle{
		Diet:    dietFor(bmi),
		Workout: WorkoutFor(profile.FitnessLevel),
		Stats:   Stats{BMI: round(bmi, 1)},
	}

	if len(entries) > 0 {
		var calories, protein, carbs, fats float64
		for _, entry := range entries {
			calories += entry.Calories
			protein += entry.Protein
			carbs += entry.Carbs
			fats += entry.Fats
		}
		n := float64(len(entries))
		bundle.Stats.AvgCalories = ptr(round(calories/n, 0))
		bundle.Stats.AvgProtein = ptr(round(protein/n, 1))
		bundle.Stats.AvgCarbs = ptr(round(carbs/n, 1))
		bundle.Stats.AvgFats = ptr(round(fats/n, 1))
	}

	return bundle, true
}

func dietFor(bmi float64) DietRecommendation {
	switch {
	case bmi < bmiUnderweightBelow:
		return dietUnderweight
	case bmi >= bmiOverweightFrom:
		return dietOverweight
	default:
		return dietNormal
	}
}

// WorkoutFor returns the workout tuple for a fitness level. Unknown levels
// map to the generic fallback; the function never returns an empty tuple.
func WorkoutFor(fitnessLevel string) WorkoutRecommendation {
	if rec, ok := workoutByLevel[fitnessLevel]; ok {
		return rec
	}
	return workoutFallback
}

func round(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}

func ptr(v float64) *float64 {
	return &v
}
