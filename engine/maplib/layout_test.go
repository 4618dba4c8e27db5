package maplib

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()

	require.NoError(t, l.Validate())
	assert.Equal(t, DefaultMapSize, l.Size)
	assert.Equal(t, SpriteGround, l.GroundSprite)
	assert.Len(t, l.Stacks, 12)
	assert.Equal(t, Stack{Column: 10, Row: 10, From: 1, To: 2, Sprite: SpriteBlock}, l.Stacks[0])
	require.Len(t, l.Units, 1)
	assert.Equal(t, 2, l.Units[0].Column)
	assert.Equal(t, 2, l.Units[0].Row)
}

func TestPrototypeLayout_FitsSize(t *testing.T) {
	for _, size := range []int{MinLayoutSize, 7, 9, 16} {
		l := PrototypeLayout(size)
		require.NoError(t, l.Validate(), "size %d", size)
		assert.Equal(t, size, l.Size)
		assert.Len(t, l.Stacks, size+1)
		assert.Equal(t, Stack{Column: size - 1, Row: size - 1, From: 1, To: 2, Sprite: SpriteBlock}, l.Stacks[0])
	}

	// Too small boards get the smallest layout that fits
	assert.Equal(t, MinLayoutSize, PrototypeLayout(2).Size)
	assert.Equal(t, DefaultLayout(), PrototypeLayout(DefaultMapSize))
}

func TestLayout_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(l *Layout)
	}{
		{name: "zero size", mutate: func(l *Layout) { l.Size = 0 }},
		{name: "stack outside", mutate: func(l *Layout) { l.Stacks[0].Column = 11 }},
		{name: "inverted floors", mutate: func(l *Layout) { l.Stacks[0].From = 3 }},
		{name: "negative floor", mutate: func(l *Layout) { l.Stacks[0].From = -1 }},
		{name: "unit outside", mutate: func(l *Layout) { l.Units[0].Row = -2 }},
		{name: "unit below ground", mutate: func(l *Layout) { l.Units[0].Floor = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := DefaultLayout()
			tt.mutate(l)
			assert.ErrorIs(t, l.Validate(), ErrInvalidLayout)
		})
	}
}

func TestLayout_SaveLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.json")
	want := DefaultLayout()

	require.NoError(t, want.SaveJSON(path))
	got, err := LoadJSON(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadJSON_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadJSON(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"size": `), 0644))
	_, err = LoadJSON(bad)
	assert.ErrorContains(t, err, "decode layout")

	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(invalid, []byte(`{"size": 4, "units": [{"column": 9, "row": 0}]}`), 0644))
	_, err = LoadJSON(invalid)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
