// Package pricing implementa el núcleo de cotización de la tienda de impresión:
// resolución de rangos de páginas, selección de reglas de precio y cálculo del
// total. Todas las operaciones son funciones puras sobre sus argumentos; el
// catálogo de reglas se pasa explícito en cada llamada y nunca se muta.
package pricing

import (
	"sort"
	"strconv"
	"strings"
)

// ResolvePageRange interpreta una expresión de rango ("all", "1-5", "2,4,6",
// "1-3,7,10-12") contra el total de páginas del documento y devuelve las
// páginas activas, sin duplicados y en orden ascendente.
//
// La política es permisiva: un tramo que no parsea como número, o que queda
// fuera de [1, totalPages], se descarta en silencio sin abortar el resto de la
// expresión. Una expresión que no aporta ninguna página devuelve un slice
// vacío, que es una entrada válida (degenerada) para el cálculo, no un error.
func ResolvePageRange(expr string, totalPages int) []int {
	expr = strings.TrimSpace(expr)
	if expr == "" || strings.EqualFold(expr, "all") {
		pages := make([]int, 0, max(totalPages, 0))
		for i := 1; i <= totalPages; i++ {
			pages = append(pages, i)
		}
		return pages
	}

	seen := make(map[int]struct{})
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			start, end, ok := parseBounds(part)
			if !ok {
				continue
			}
			for i := max(1, start); i <= min(totalPages, end); i++ {
				seen[i] = struct{}{}
			}
		} else {
			page, err := strconv.Atoi(part)
			if err != nil || page < 1 || page > totalPages {
				continue
			}
			seen[page] = struct{}{}
		}
	}

	pages := make([]int, 0, len(seen))
	for p := range seen {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}

// parseBounds parsea un tramo "start-end". Si cualquiera de los dos lados no
// es un entero el tramo completo se descarta.
func parseBounds(part string) (start, end int, ok bool) {
	bounds := strings.SplitN(part, "-", 2)
	start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
	if err != nil {
		return 0, 0, false
	}
	end, err = strconv.Atoi(strings.TrimSpace(bounds[1]))
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}
