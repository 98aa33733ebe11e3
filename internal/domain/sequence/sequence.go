// Package sequence formatea los códigos secuenciales legibles (P001, S014).
//
// El número se toma de un contador estrictamente creciente incrementado de
// forma atómica junto al insert (secuencia de Postgres o contador atómico en
// memoria), nunca de un count puntual de la tabla: dos inserts concurrentes
// que cuentan la tabla pueden calcular el mismo número y colisionar.
package sequence

import "fmt"

// Prefijos de código por tipo de recurso.
const (
	ProductPrefix  = "P"
	SupplierPrefix = "S"
)

// Format produce prefix + número con padding a 3 dígitos (P001, S014).
// Pasado 999 el número se ensancha en lugar de truncarse (P1000).
func Format(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}
