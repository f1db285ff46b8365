package dto

import "time"

// DocumentResponse metadatos del documento subido: el cliente los conserva y
// los devuelve al crear la orden.
type DocumentResponse struct {
	FileName   string    `json:"fileName"`
	StoredPath string    `json:"storedPath"`
	SizeBytes  int64     `json:"sizeBytes"`
	TotalPages int       `json:"totalPages"`
	UploadedAt time.Time `json:"uploadedAt"`
}
