// Package document implementa la inspección de documentos subidos.
package document

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/jhoicas/printhub-api/internal/application/usecase"
)

var _ usecase.PageInspector = (*PDFInspector)(nil)

// PDFInspector extrae el total de páginas de un PDF con pdfcpu.
// Por ahora PDF es el único formato soportado para imprimir.
type PDFInspector struct {
	root string // raíz del almacenamiento local
}

// NewPDFInspector construye el inspector sobre el mismo root que el FileStore.
func NewPDFInspector(root string) *PDFInspector {
	return &PDFInspector{root: root}
}

// PageCount devuelve el total de páginas del documento.
func (i *PDFInspector) PageCount(_ context.Context, storedPath string) (int, error) {
	if strings.ToLower(filepath.Ext(storedPath)) != ".pdf" {
		return 0, fmt.Errorf("formato no soportado: %s", filepath.Ext(storedPath))
	}
	pages, err := api.PageCountFile(filepath.Join(i.root, storedPath))
	if err != nil {
		return 0, fmt.Errorf("contar páginas: %w", err)
	}
	return pages, nil
}
