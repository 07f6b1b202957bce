package models

// FileResponse is returned by POST /v1/file
type FileResponse struct {
	URI string `json:"uri"`
}
