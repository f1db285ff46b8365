// Package storage implementa el almacenamiento de documentos subidos sobre
// el sistema de archivos local.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/printhub-api/internal/application/usecase"
)

var _ usecase.FileStore = (*LocalStore)(nil)

// LocalStore guarda cada documento bajo root con un nombre UUID; la extensión
// original se conserva para que el inspector reconozca el formato. La ruta
// devuelta es relativa a root, nunca la elige el cliente.
type LocalStore struct {
	root string
}

// NewLocalStore construye el almacén y crea el directorio raíz si no existe.
func NewLocalStore(root string) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de almacenamiento: %w", err)
	}
	return &LocalStore{root: root}, nil
}

// Save persiste el contenido y devuelve la ruta interna asignada.
func (s *LocalStore) Save(_ context.Context, originalName string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	storedPath := uuid.New().String() + ext

	f, err := os.Create(filepath.Join(s.root, storedPath))
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return storedPath, nil
}

// Open abre un documento guardado por su ruta interna.
func (s *LocalStore) Open(_ context.Context, storedPath string) (io.ReadCloser, error) {
	// La ruta interna es un UUID generado por Save; rechazar cualquier cosa
	// que intente escapar del root.
	if storedPath != filepath.Base(storedPath) {
		return nil, fmt.Errorf("ruta inválida: %s", storedPath)
	}
	f, err := os.Open(filepath.Join(s.root, storedPath))
	if err != nil {
		return nil, fmt.Errorf("abrir archivo: %w", err)
	}
	return f, nil
}

// AbsolutePath devuelve la ruta absoluta de un documento (para inspección).
func (s *LocalStore) AbsolutePath(storedPath string) string {
	return filepath.Join(s.root, storedPath)
}
