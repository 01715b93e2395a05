package terrain

import (
	"fmt"

	"isles/internal/core"
)

// Tile is the visual class a consumer draws for a point.
type Tile uint8

const (
	TileWater Tile = iota
	TileLand
	TileCoast
	TileMountain
	TileRiver
)

func (t Tile) String() string {
	switch t {
	case TileWater:
		return "water"
	case TileLand:
		return "land"
	case TileCoast:
		return "coast"
	case TileMountain:
		return "mountain"
	case TileRiver:
		return "river"
	}
	return "unknown"
}

// Tile classifies p. River membership wins over the land type; snowcapped
// peaks draw as mountains. Scaffold points have no tile.
func (p Point) Tile() (Tile, error) {
	if p.River != None {
		return TileRiver, nil
	}
	switch p.Type {
	case core.LandLand:
		return TileLand, nil
	case core.LandCoast:
		return TileCoast, nil
	case core.LandMountain, core.LandSnowcapped:
		return TileMountain, nil
	}
	return TileWater, fmt.Errorf("%w: %v is %v", ErrUnclassifiable, p.At, p.Type)
}
