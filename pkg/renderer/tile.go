package renderer

import (
	"image"

	"github.com/df07/go-instance-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int                // Unique tile identifier, row-major over the grid
	Bounds image.Rectangle    // Pixel bounds (x0,y0,x1,y1)
	Random *core.RandomStream // Tile-specific random stream for deterministic results
}

// NewTile creates a tile whose random stream depends only on seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: core.NewRandomStream(tileSeed(seed, id)),
	}
}

// tileSeed mixes the render seed with the tile id
func tileSeed(seed int64, id int) int64 {
	return seed*1_000_003 + int64(id) + 1
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, seed int64) []*Tile {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}

	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), seed))
			tileID++
		}
	}

	return tiles
}
