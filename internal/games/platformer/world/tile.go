// Package world implements the platformer simulation: the static tile grid,
// the actors living on it, collision queries and the fixed-step update.
// It draws nothing and reads no devices; callers pass input in explicitly.
package world

// Tile is the label of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota // Passable space; also "no obstacle" in queries
	TileWall
	TileLava
)

// String returns the label used in level data and logs.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// tileChars maps plan characters to static tiles.
var tileChars = map[byte]Tile{
	' ': TileEmpty,
	'x': TileWall,
	'!': TileLava,
}
