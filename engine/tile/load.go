package tile

import (
	"fmt"
	"os"
	"strings"

	"github.com/memmaker/tilemesh/engine/util"
	"github.com/pkg/errors"
)

// SplitLevels cuts a map text into levels at blank lines.
func SplitLevels(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var levels []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			levels = append(levels, strings.Join(current, "\n"))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return levels
}

func LoadFile(filename string) (*Area, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading map %s", filename)
	}
	area, err := ParseLevels(SplitLevels(string(data)))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing map %s", filename)
	}
	util.LogIOInfo(fmt.Sprintf("[Map] Loaded %s: %dx%dx%d", filename, area.Width(), area.Height(), area.Depth()))
	return area, nil
}
