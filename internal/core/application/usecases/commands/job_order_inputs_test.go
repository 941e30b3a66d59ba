package commands_test

import (
	"encoding/json"
	"testing"

	"atelier/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRef_ID(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int64
	}{
		{"number", `12`, 12},
		{"numeric string", `"12"`, 12},
		{"padded numeric string", `" 7 "`, 7},
		{"object with numeric id", `{"id": 3, "name": "Linen"}`, 3},
		{"object with string id", `{"id": "4"}`, 4},
		{"surrounding whitespace", "  9\n", 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := commands.MaterialRefFromJSON(json.RawMessage(tt.raw)).ID()
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestMaterialRef_ID_Malformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ``},
		{"null", `null`},
		{"word", `"linen"`},
		{"fraction", `1.5`},
		{"object without id", `{"name": "Linen"}`},
		{"nested object id", `{"id": {"id": 1}}`},
		{"broken object", `{"id": `},
		{"boolean", `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.MaterialRefFromJSON(json.RawMessage(tt.raw)).ID()
			require.ErrorIs(t, err, commands.ErrMaterialRefIsMalformed)
		})
	}
}

func TestMaterialRefFromID(t *testing.T) {
	ref := commands.MaterialRefFromID(42)

	id, err := ref.ID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Equal(t, "42", ref.String())
}

func TestReplacement(t *testing.T) {
	kept := commands.Keep[commands.ItemInput]()
	assert.False(t, kept.Present)

	cleared := commands.Replace([]commands.ItemInput{})
	assert.True(t, cleared.Present)
	assert.Empty(t, cleared.Entries)
}
