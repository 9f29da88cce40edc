package models

import "time"

// Fitness levels accepted on a profile. Empty means the user has not set one.
const (
	FitnessBeginner     = "beginner"
	FitnessIntermediate = "intermediate"
	FitnessAdvanced     = "advanced"
)

// Goal types accepted on a goal.
const (
	GoalWeightLoss = "weight-loss"
	GoalMuscleGain = "muscle-gain"
	GoalSteps      = "steps"
)

// Activity intensities.
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// User mirrors the identity provider's subject; one row per owner,
// created lazily on first authenticated access.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:255;uniqueIndex;not null" json:"ownerId"`
	Name      string    `gorm:"size:255" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Profile holds the measurements that drive recommendations.
// Weight and Height are pointers so "not yet provided" survives the round
// trip as null instead of 0.
type Profile struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      string    `gorm:"size:255;uniqueIndex;not null" json:"ownerId"`
	Weight       *float64  `json:"weight"` // kg
	Height       *float64  `json:"height"` // cm
	FitnessLevel string    `gorm:"size:50" json:"fitnessLevel"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Activity is one logged exercise session. Append-only: there is no update
// or delete path.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:255;not null;index" json:"ownerId"`
	Type      string    `gorm:"size:255;not null" json:"type"`
	Duration  float64   `gorm:"not null" json:"duration"` // minutes
	Intensity string    `gorm:"size:50;not null" json:"intensity"`
	Calories  float64   `gorm:"not null" json:"calories"`
	CreatedAt time.Time `json:"createdAt"`
}

// NutritionEntry is one logged food item. Append-only.
type NutritionEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:255;not null;index" json:"ownerId"`
	Food      string    `gorm:"size:255;not null" json:"food"`
	Calories  float64   `gorm:"not null" json:"calories"`
	Carbs     float64   `gorm:"not null" json:"carbs"`
	Protein   float64   `gorm:"not null" json:"protein"`
	Fats      float64   `gorm:"not null" json:"fats"`
	CreatedAt time.Time `json:"createdAt"`
}

// Goal is a user-defined target. Unlike the activity and nutrition logs it
// can be updated and deleted by its owner.
type Goal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   string    `gorm:"size:255;not null;index" json:"ownerId"`
	Type      string    `gorm:"size:50;not null" json:"type"`
	Target    float64   `gorm:"not null" json:"target"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
