package schemas

// UploadResponse struct
type UploadResponse struct {
	URL string `json:"url" validate:"required"`
}

// LocationSchema struct is one device location fix
type LocationSchema struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Accuracy  float64 `json:"accuracy"`
	Altitude  float64 `json:"altitude"`
	Timestamp int64   `json:"timestamp"`
}
