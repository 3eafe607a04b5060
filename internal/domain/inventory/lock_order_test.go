package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Almacen-api/internal/domain/inventory"
)

func TestOrderLocations(t *testing.T) {
	first, second := inventory.OrderLocations("loc-b", "loc-a")
	assert.Equal(t, "loc-a", first)
	assert.Equal(t, "loc-b", second)

	// El orden no depende de cuál es origen y cuál destino.
	f2, s2 := inventory.OrderLocations("loc-a", "loc-b")
	assert.Equal(t, first, f2)
	assert.Equal(t, second, s2)
}

func TestOrderLocations_Iguales(t *testing.T) {
	first, second := inventory.OrderLocations("loc-x", "loc-x")
	assert.Equal(t, "loc-x", first)
	assert.Equal(t, "loc-x", second)
}
