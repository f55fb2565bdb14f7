package pet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	p, err := NewPet("c1", "Rex", "cachorro")
	require.NoError(t, err)

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "c1", p.ClientID)
	assert.Equal(t, "Rex", p.Name)
	assert.Equal(t, "cachorro", p.Species)
}

func TestNewPet_Validation(t *testing.T) {
	_, err := NewPet("", "Rex", "cachorro")
	assert.ErrorIs(t, err, ErrEmptyClientID)

	_, err = NewPet("c1", "", "cachorro")
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewPet("c1", "Rex", "")
	assert.ErrorIs(t, err, ErrEmptySpecies)
}

func TestPet_BelongsTo(t *testing.T) {
	p := &Pet{ClientID: "c1"}

	assert.True(t, p.BelongsTo("c1"))
	assert.False(t, p.BelongsTo("c2"))
}
