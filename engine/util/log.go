package util

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogVoxel | LogTiles | LogIO | LogSystem | LogExport

var logOutput io.Writer = os.Stderr

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogVoxel LogCategory = 1 << iota
	LogTiles
	LogIO
	LogSystem
	LogExport
)

var levelNames = map[string]LogLevel{
	"error":   LogLevelError,
	"warning": LogLevelWarning,
	"warn":    LogLevelWarning,
	"info":    LogLevelInfo,
	"debug":   LogLevelDebug,
}

var categoryNames = map[string]LogCategory{
	"voxel":  LogVoxel,
	"tiles":  LogTiles,
	"io":     LogIO,
	"system": LogSystem,
	"export": LogExport,
}

// SetLogOutput redirects all log lines. A nil writer silences logging.
func SetLogOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	logOutput = w
}

func ParseLogLevel(name string) (LogLevel, error) {
	lvl, ok := levelNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, errors.Errorf("unknown log level %q", name)
	}
	return lvl, nil
}

// ParseLogCategories combines category names into one filter mask.
// "all" enables every category.
func ParseLogCategories(names []string) (LogCategory, error) {
	var mask LogCategory
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			for _, cat := range categoryNames {
				mask |= cat
			}
			continue
		}
		cat, ok := categoryNames[name]
		if !ok {
			return 0, errors.Errorf("unknown log category %q", name)
		}
		mask |= cat
	}
	return mask, nil
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	fmt.Fprintln(logOutput, txt)
}

func LogVoxelInfo(txt string) {
	log(LogVoxel, LogLevelInfo, txt)
}

func LogVoxelDebug(txt string) {
	log(LogVoxel, LogLevelDebug, txt)
}

func LogVoxelError(txt string) {
	log(LogVoxel, LogLevelError, txt)
}

func LogTilesInfo(txt string) {
	log(LogTiles, LogLevelInfo, txt)
}

func LogTilesDebug(txt string) {
	log(LogTiles, LogLevelDebug, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogSystemInfo(txt string) {
	log(LogSystem, LogLevelInfo, txt)
}

func LogSystemWarning(txt string) {
	log(LogSystem, LogLevelWarning, txt)
}

func LogExportInfo(txt string) {
	log(LogExport, LogLevelInfo, txt)
}

func LogExportDebug(txt string) {
	log(LogExport, LogLevelDebug, txt)
}
