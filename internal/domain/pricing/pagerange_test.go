package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/printhub-api/internal/domain/pricing"
)

func TestResolvePageRange(t *testing.T) {
	tests := []struct {
		name       string
		expr       string
		totalPages int
		want       []int
	}{
		{"expresión vacía devuelve todas", "", 5, []int{1, 2, 3, 4, 5}},
		{"all devuelve todas", "all", 3, []int{1, 2, 3}},
		{"all es case-insensitive", "ALL", 3, []int{1, 2, 3}},
		{"página única", "5", 10, []int{5}},
		{"rango simple", "1-5", 10, []int{1, 2, 3, 4, 5}},
		{"lista de páginas", "2,4,6", 10, []int{2, 4, 6}},
		{"mezcla con deduplicación y orden", "2-4,7,1-1", 10, []int{1, 2, 3, 4, 7}},
		{"tramos solapados se deduplican", "1-3,2-5", 10, []int{1, 2, 3, 4, 5}},
		{"rango se recorta al total", "8-20", 10, []int{8, 9, 10}},
		{"inicio menor a 1 se recorta", "0-2", 10, []int{1, 2}},
		{"start > end no aporta nada", "5-2", 10, nil},
		{"token no numérico se descarta", "abc,3", 5, []int{3}},
		{"rango con lado no numérico se descarta", "a-3,2", 5, []int{2}},
		{"página fuera de rango se descarta", "0,6,3", 5, []int{3}},
		{"espacios alrededor de tramos", " 1 , 3-4 ", 10, []int{1, 3, 4}},
		{"solo basura da vacío", "x,y,z", 5, nil},
		{"resultado en orden ascendente, no de entrada", "7,2,5", 10, []int{2, 5, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.ResolvePageRange(tt.expr, tt.totalPages)
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestResolvePageRange_AllEsSecuenciaCompleta verifica que "all" produce
// exactamente [1..totalPages] para varios tamaños de documento.
func TestResolvePageRange_AllEsSecuenciaCompleta(t *testing.T) {
	for _, total := range []int{1, 2, 10, 250} {
		got := pricing.ResolvePageRange("all", total)
		assert.Len(t, got, total)
		for i, p := range got {
			assert.Equal(t, i+1, p)
		}
	}
}

// TestResolvePageRange_SinDuplicadosYAscendente propiedad general: cualquier
// expresión devuelve páginas estrictamente crecientes.
func TestResolvePageRange_SinDuplicadosYAscendente(t *testing.T) {
	exprs := []string{"1-10,5-15,3", "9,9,9", "1-3,3-5", "all", "20-1,4,4-6"}
	for _, expr := range exprs {
		got := pricing.ResolvePageRange(expr, 20)
		for i := 1; i < len(got); i++ {
			assert.Greater(t, got[i], got[i-1], "expr %q: debe ser estrictamente ascendente", expr)
		}
	}
}
