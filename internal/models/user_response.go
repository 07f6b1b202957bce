package models

// ProfileResponse is returned by GET and PATCH /v1/user
type ProfileResponse struct {
	Preference *string  `json:"preference"`
	WeightUnit *string  `json:"weightUnit"`
	HeightUnit *string  `json:"heightUnit"`
	Weight     *float64 `json:"weight"`
	Height     *float64 `json:"height"`
	Email      string   `json:"email"`
	Name       *string  `json:"name"`
	ImageURI   *string  `json:"imageUri"`
}
