package tile

type Tile byte

const (
	Floor Tile = iota
	Wall
	StairUp
)

// FromChar maps a map character to its tile. Unknown characters are floor.
func FromChar(c rune) Tile {
	switch c {
	case '#':
		return Wall
	case '<':
		return StairUp
	}
	return Floor
}

func (t Tile) IsWall() bool {
	return t == Wall
}

// IsBlocking reports whether the tile stops movement. Only walls are
// rasterized into voxels.
func (t Tile) IsBlocking() bool {
	return t == Wall
}

func (t Tile) Char() rune {
	switch t {
	case Wall:
		return '#'
	case StairUp:
		return '<'
	}
	return '.'
}

func (t Tile) String() string {
	switch t {
	case Floor:
		return "Floor"
	case Wall:
		return "Wall"
	case StairUp:
		return "StairUp"
	}
	return "Unknown"
}
