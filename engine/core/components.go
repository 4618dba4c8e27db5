package core

import "github.com/1siamBot/iso-tactics/engine/maplib"

// Placement is where an entity sits on the map
type Placement struct {
	maplib.Position
}

func (p *Placement) Type() ComponentType { return CompPlacement }

// Tile is one block of terrain in a stack
type Tile struct {
	Sprite int // index into the tileset atlas
}

func (t *Tile) Type() ComponentType { return CompTile }

// Unit marks a selectable, movable piece
type Unit struct {
	Name   string
	Sprite int
}

func (u *Unit) Type() ComponentType { return CompUnit }
