package tile

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/memmaker/tilemesh/engine/util"
	"github.com/pkg/errors"
)

// Area is an immutable stack of tile levels. Height counts levels (the Y
// axis), depth counts rows per level (the Z axis) and width counts columns
// (the X axis).
type Area struct {
	tiles  [][]Tile
	width  int
	height int
	depth  int
}

// NewArea builds an area from one description per level. Whitespace is
// stripped, every other character is mapped through FromChar.
func NewArea(width, depth int, levels []string) (*Area, error) {
	if width <= 0 || depth <= 0 {
		return nil, errors.Errorf("area dimensions must be positive, got width %d depth %d", width, depth)
	}
	tiles := make([][]Tile, len(levels))
	for y, level := range levels {
		row := make([]Tile, 0, width*depth)
		for _, c := range level {
			if isSpace(c) {
				continue
			}
			row = append(row, FromChar(c))
		}
		if len(row) != width*depth {
			return nil, errors.Errorf("level %d has %d tiles, expected %d (%dx%d)", y, len(row), width*depth, width, depth)
		}
		tiles[y] = row
	}
	return newArea(width, depth, tiles), nil
}

// ParseLevels infers width and depth from the rows of the first level. Every
// level must have the same number of rows and every row the same width.
func ParseLevels(levels []string) (*Area, error) {
	if len(levels) == 0 {
		return &Area{}, nil
	}
	width, depth := -1, 0
	for y, level := range levels {
		rows := splitRows(level)
		if y == 0 {
			depth = len(rows)
		} else if len(rows) != depth {
			return nil, errors.Errorf("level %d has %d rows, expected %d", y, len(rows), depth)
		}
		for z, row := range rows {
			n := utf8.RuneCountInString(row)
			if width < 0 {
				width = n
			}
			if n != width {
				return nil, errors.Errorf("level %d row %d has %d tiles, expected %d", y, z, n, width)
			}
		}
	}
	if depth == 0 {
		return nil, errors.New("first level has no rows")
	}
	return NewArea(width, depth, levels)
}

// FromTiles builds an area from already classified tiles, one slice per
// level laid out row by row.
func FromTiles(width, height, depth int, levels [][]Tile) (*Area, error) {
	if width < 0 || height < 0 || depth < 0 {
		return nil, errors.Errorf("negative area dimensions %dx%dx%d", width, height, depth)
	}
	if len(levels) != height {
		return nil, errors.Errorf("got %d levels, expected %d", len(levels), height)
	}
	tiles := make([][]Tile, height)
	for y, level := range levels {
		if len(level) != width*depth {
			return nil, errors.Errorf("level %d has %d tiles, expected %d", y, len(level), width*depth)
		}
		tiles[y] = append([]Tile(nil), level...)
	}
	return newArea(width, depth, tiles), nil
}

func newArea(width, depth int, tiles [][]Tile) *Area {
	a := &Area{
		tiles:  tiles,
		width:  width,
		height: len(tiles),
		depth:  depth,
	}
	util.LogTilesDebug(fmt.Sprintf("[Area] %dx%dx%d with %d walls", a.width, a.height, a.depth, a.WallCount()))
	return a
}

func isSpace(c rune) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func splitRows(level string) []string {
	var rows []string
	for _, line := range strings.Split(level, "\n") {
		line = strings.Map(func(c rune) rune {
			if isSpace(c) {
				return -1
			}
			return c
		}, line)
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}

func (a *Area) Width() int  { return a.width }
func (a *Area) Height() int { return a.height }
func (a *Area) Depth() int  { return a.depth }

// Size returns width, height and depth.
func (a *Area) Size() (int, int, int) {
	return a.width, a.height, a.depth
}

func (a *Area) Contains(x, y, z int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height && z >= 0 && z < a.depth
}

// TileAt does no bounds checking.
func (a *Area) TileAt(x, y, z int) Tile {
	return a.tiles[y][z*a.width+x]
}

// TileOrOpen returns Floor outside the area.
func (a *Area) TileOrOpen(x, y, z int) Tile {
	if !a.Contains(x, y, z) {
		return Floor
	}
	return a.TileAt(x, y, z)
}

func (a *Area) IsWall(x, y, z int) bool {
	return a.TileOrOpen(x, y, z).IsWall()
}

func (a *Area) WallCount() int {
	count := 0
	for _, level := range a.tiles {
		for _, t := range level {
			if t.IsWall() {
				count++
			}
		}
	}
	return count
}

// Render prints every level as rows of characters, levels separated by a
// blank line. The output parses back through ParseLevels.
func (a *Area) Render() string {
	var sb strings.Builder
	for y := 0; y < a.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for z := 0; z < a.depth; z++ {
			for x := 0; x < a.width; x++ {
				sb.WriteRune(a.TileAt(x, y, z).Char())
			}
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
