package usecase

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jhoicas/printhub-api/internal/application/dto"
	"github.com/jhoicas/printhub-api/internal/domain"
)

// DocumentUseCase subida e inspección de documentos a imprimir.
type DocumentUseCase struct {
	store     FileStore
	inspector PageInspector
	maxBytes  int64
}

// NewDocumentUseCase construye el caso de uso. maxUploadMB limita el tamaño aceptado.
func NewDocumentUseCase(store FileStore, inspector PageInspector, maxUploadMB int) *DocumentUseCase {
	return &DocumentUseCase{
		store:     store,
		inspector: inspector,
		maxBytes:  int64(maxUploadMB) * 1024 * 1024,
	}
}

// Upload guarda el archivo y extrae su total de páginas. El cliente conserva
// StoredPath y TotalPages y los devuelve al cotizar y al crear la orden.
func (uc *DocumentUseCase) Upload(ctx context.Context, fileName string, r io.Reader, size int64) (*dto.DocumentResponse, error) {
	if fileName == "" {
		return nil, domain.ErrInvalidInput
	}
	if uc.maxBytes > 0 && size > uc.maxBytes {
		return nil, domain.ErrInvalidInput
	}

	storedPath, err := uc.store.Save(ctx, fileName, r)
	if err != nil {
		return nil, fmt.Errorf("guardar documento: %w", err)
	}

	pages, err := uc.inspector.PageCount(ctx, storedPath)
	if err != nil {
		return nil, fmt.Errorf("inspeccionar documento: %w", err)
	}
	if pages < 1 {
		return nil, domain.ErrInvalidInput
	}

	return &dto.DocumentResponse{
		FileName:   fileName,
		StoredPath: storedPath,
		SizeBytes:  size,
		TotalPages: pages,
		UploadedAt: time.Now(),
	}, nil
}
