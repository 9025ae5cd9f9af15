package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/siloe-api/pkg/normalize"
)

func TestStoreName_Canonicaliza(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"tienda doña marta", "TIENDA DOÑA MARTA"},
		{"  Tienda   Doña Marta  ", "TIENDA DOÑA MARTA"},
		{"LA ESQUINA", "LA ESQUINA"},
		{"la\tesquina\n", "LA ESQUINA"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.StoreName(c.in), "entrada: %q", c.in)
	}
}

func TestStoreName_Idempotente(t *testing.T) {
	once := normalize.StoreName("  mi   Tienda  ")
	assert.Equal(t, once, normalize.StoreName(once))
}

func TestNeighborhood_TituloPorPalabra(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"san jose norte", "San Jose Norte"},
		{"SAN JOSE NORTE", "San Jose Norte"},
		{"  el   centro ", "El Centro"},
		{"kennedy", "Kennedy"},
		{"", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, normalize.Neighborhood(c.in), "entrada: %q", c.in)
	}
}

func TestNeighborhood_Idempotente(t *testing.T) {
	once := normalize.Neighborhood("  sAn   jOsE ")
	assert.Equal(t, once, normalize.Neighborhood(once))
}

// Dos escrituras distintas del mismo par (nombre, barrio) deben colisionar
// después de canonicalizar: así se detectan tiendas duplicadas.
func TestIdentidad_VariantesColisionan(t *testing.T) {
	name1 := normalize.StoreName("tienda la 15")
	name2 := normalize.StoreName("  TIENDA   LA 15 ")
	assert.Equal(t, name1, name2)

	n1 := normalize.Neighborhood("villa del prado")
	n2 := normalize.Neighborhood("VILLA   DEL PRADO")
	assert.Equal(t, n1, n2)
}
