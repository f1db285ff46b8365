package entity

import "time"

// Document metadatos transitorios de un archivo subido para imprimir.
// No se persiste como entidad: el cliente los devuelve al crear la orden.
type Document struct {
	FileName   string
	StoredPath string
	SizeBytes  int64
	TotalPages int
	UploadedAt time.Time
}
