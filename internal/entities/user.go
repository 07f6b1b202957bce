package entities

import "time"

// User represents a user row in the database
type User struct {
	ID           string    `json:"id"` // UUID
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Don't expose password hash in JSON
	Preference   *string   `json:"preference"`
	WeightUnit   *string   `json:"weight_unit"`
	HeightUnit   *string   `json:"height_unit"`
	Weight       *float64  `json:"weight"`
	Height       *float64  `json:"height"`
	Name         *string   `json:"name"`
	ImageURI     *string   `json:"image_uri"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Allowed profile enumerations.
const (
	PreferenceCardio = "CARDIO"
	PreferenceWeight = "WEIGHT"

	WeightUnitKG  = "KG"
	WeightUnitLBS = "LBS"

	HeightUnitCM   = "CM"
	HeightUnitInch = "INCH"
)

// IsValidPreference reports whether preference is CARDIO or WEIGHT.
func IsValidPreference(preference string) bool {
	return preference == PreferenceCardio || preference == PreferenceWeight
}

// IsValidWeightUnit reports whether unit is KG or LBS.
func IsValidWeightUnit(unit string) bool {
	return unit == WeightUnitKG || unit == WeightUnitLBS
}

// IsValidHeightUnit reports whether unit is CM or INCH.
func IsValidHeightUnit(unit string) bool {
	return unit == HeightUnitCM || unit == HeightUnitInch
}
