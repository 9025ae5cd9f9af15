// Package normalize canonicaliza los campos de identidad de una tienda.
// La unicidad de tiendas es por el par (nombre, barrio), así que ambos campos
// se normalizan antes de comparar o persistir.
package normalize

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StoreName recorta, colapsa espacios internos y pasa a mayúsculas.
// Es idempotente: aplicarla sobre un valor ya canónico no lo cambia.
func StoreName(s string) string {
	return strings.ToUpper(collapse(s))
}

// Neighborhood recorta, colapsa espacios internos y pone cada palabra en
// Título ("san jose norte" -> "San Jose Norte"). Idempotente.
// El cases.Caser no es seguro para uso concurrente, se construye por llamada.
func Neighborhood(s string) string {
	return cases.Title(language.Spanish).String(strings.ToLower(collapse(s)))
}

// collapse elimina espacios al inicio/fin y reduce secuencias internas de
// espacio en blanco a un único espacio.
func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
