package models

// UpdateProfileRequest is the body of PATCH /v1/user.
// Optional fields left out of the request keep their stored value.
type UpdateProfileRequest struct {
	Preference string   `json:"preference" binding:"required,preference"`
	WeightUnit string   `json:"weightUnit" binding:"required,weightunit"`
	HeightUnit string   `json:"heightUnit" binding:"required,heightunit"`
	Weight     *float64 `json:"weight" binding:"omitempty,min=10,max=1000"`
	Height     *float64 `json:"height" binding:"omitempty,min=3,max=250"`
	Name       *string  `json:"name" binding:"omitempty,min=2,max=60"`
	ImageURI   *string  `json:"imageUri" binding:"omitempty,httpurl"`
}
