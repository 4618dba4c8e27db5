package maplib

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Sprite indexes of the isometric tileset
const (
	SpriteGround = 92
	SpriteBlock  = 93
	SpriteUnit   = 0
)

// ErrInvalidLayout is returned when a layout does not fit its map
var ErrInvalidLayout = errors.New("invalid layout")

// Stack places one tile per floor from From to To (inclusive) on a cell
type Stack struct {
	Column int   `json:"column"`
	Row    int   `json:"row"`
	From   Floor `json:"from"`
	To     Floor `json:"to"`
	Sprite int   `json:"sprite"`
}

// UnitPlacement declares a unit spawned at startup
type UnitPlacement struct {
	Name   string `json:"name"`
	Column int    `json:"column"`
	Row    int    `json:"row"`
	Floor  Floor  `json:"floor"`
	Sprite int    `json:"sprite"`
}

// Layout describes the initial population of a map
type Layout struct {
	Name         string          `json:"name"`
	Size         int             `json:"size"`
	GroundSprite int             `json:"ground_sprite"`
	Stacks       []Stack         `json:"stacks"`
	Units        []UnitPlacement `json:"units"`
}

// MinLayoutSize is the smallest board the prototype layout fits on
const MinLayoutSize = 4

// DefaultLayout returns the prototype board on the default map size
func DefaultLayout() *Layout {
	return PrototypeLayout(DefaultMapSize)
}

// PrototypeLayout returns the prototype board on a size by size map: a flat
// ground, a two-floor tower in the far corner, a step beside it and a raised
// back row. Sizes below MinLayoutSize are raised to it.
func PrototypeLayout(size int) *Layout {
	if size < MinLayoutSize {
		size = MinLayoutSize
	}
	far := size - 1
	l := &Layout{
		Name:         "Prototype",
		Size:         size,
		GroundSprite: SpriteGround,
		Stacks: []Stack{
			{Column: far, Row: far, From: 1, To: 2, Sprite: SpriteBlock},
			{Column: far - 1, Row: far, From: 1, To: 1, Sprite: SpriteBlock},
		},
		Units: []UnitPlacement{
			{Name: "Scout", Column: 2, Row: 2, Sprite: SpriteUnit},
		},
	}
	for x := 0; x < far; x++ {
		l.Stacks = append(l.Stacks, Stack{Column: x, Row: 0, From: 1, To: 1, Sprite: SpriteBlock})
	}
	return l
}

// Validate checks that every stack and unit lies on the map
func (l *Layout) Validate() error {
	if l.Size <= 0 {
		return fmt.Errorf("%w: size %d", ErrInvalidLayout, l.Size)
	}
	inside := func(col, row int) bool {
		return col >= 0 && row >= 0 && col < l.Size && row < l.Size
	}
	for i, s := range l.Stacks {
		if !inside(s.Column, s.Row) {
			return fmt.Errorf("%w: stack %d at (%d, %d) out of bounds", ErrInvalidLayout, i, s.Column, s.Row)
		}
		if s.From < 0 || s.From > s.To {
			return fmt.Errorf("%w: stack %d floors %d..%d", ErrInvalidLayout, i, s.From, s.To)
		}
	}
	for i, u := range l.Units {
		if !inside(u.Column, u.Row) {
			return fmt.Errorf("%w: unit %d (%s) at (%d, %d) out of bounds", ErrInvalidLayout, i, u.Name, u.Column, u.Row)
		}
		if u.Floor < 0 {
			return fmt.Errorf("%w: unit %d (%s) floor %d", ErrInvalidLayout, i, u.Name, u.Floor)
		}
	}
	return nil
}

// SaveJSON saves the layout to a JSON file
func (l *Layout) SaveJSON(path string) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadJSON loads and validates a layout from a JSON file
func LoadJSON(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("decode layout %s: %w", path, err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}
