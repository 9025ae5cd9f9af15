package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/siloe-api/internal/application/dto"
)

// El cuerpo de PUT /stores/:id distingue tres casos para route_id: clave
// ausente (conservar), null explícito (desasignar) y número (reasignar).
func TestOptionalID_TriEstado(t *testing.T) {
	var p dto.UpdateStorePayload

	// Clave ausente: Present queda en false
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X"}`), &p))
	assert.False(t, p.RouteID.Present)

	// null explícito: Present=true, Value=nil
	p = dto.UpdateStorePayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"route_id":null}`), &p))
	assert.True(t, p.RouteID.Present)
	assert.Nil(t, p.RouteID.Value)

	// Valor numérico
	p = dto.UpdateStorePayload{}
	require.NoError(t, json.Unmarshal([]byte(`{"route_id":7}`), &p))
	assert.True(t, p.RouteID.Present)
	require.NotNil(t, p.RouteID.Value)
	assert.Equal(t, int64(7), *p.RouteID.Value)
}

func TestOptionalID_RechazaBasura(t *testing.T) {
	var p dto.UpdateStorePayload
	err := json.Unmarshal([]byte(`{"route_id":"siete"}`), &p)
	assert.Error(t, err)
}

func TestDefaultPage(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 50, Offset: -3}
	p.DefaultPage()
	assert.Equal(t, 50, p.Limit)
	assert.Equal(t, 0, p.Offset)
}
