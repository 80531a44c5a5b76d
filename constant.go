// FILE: constant.go
package dfslog

import (
	"strings"
)

// Level is the severity of a log message. Levels are totally ordered;
// comparison is numeric.
type Level int32

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
)

// Component tags the client subsystem a message originates from. Each
// component is a distinct bit so a sink's filter can accept a set of
// components at once.
type Component uint32

const (
	ComponentUnknown Component = 1 << iota
	ComponentRPC
	ComponentBlockReader
	ComponentFileHandle
	ComponentFileSystem
)

// ComponentAll enables every component bit, including bits not yet assigned
// to a named component.
const ComponentAll Component = 0xFFFFFFFF

// Fixed-width tags used by the console sink.
var levelTags = [...]string{
	"[TRACE ]",
	"[DEBUG ]",
	"[INFO  ]",
	"[WARN  ]",
	"[ERROR ]",
}

var componentTags = [...]string{
	"[Unknown     ]",
	"[RPC         ]",
	"[BlockReader ]",
	"[FileHandle  ]",
	"[FileSystem  ]",
}

// Tag returns the fixed-width console tag for the level.
// Out-of-range levels map to the trace tag.
func (l Level) Tag() string {
	if l < LevelTrace || l > LevelError {
		return levelTags[LevelTrace]
	}
	return levelTags[l]
}

// String returns the lowercase level name used in configuration.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Tag returns the fixed-width console tag for the component.
// Unrecognized components map to the Unknown tag.
func (c Component) Tag() string {
	switch c {
	case ComponentRPC:
		return componentTags[1]
	case ComponentBlockReader:
		return componentTags[2]
	case ComponentFileHandle:
		return componentTags[3]
	case ComponentFileSystem:
		return componentTags[4]
	default:
		return componentTags[0]
	}
}

// String returns the lowercase component name used in configuration.
func (c Component) String() string {
	switch c {
	case ComponentRPC:
		return "rpc"
	case ComponentBlockReader:
		return "blockreader"
	case ComponentFileHandle:
		return "filehandle"
	case ComponentFileSystem:
		return "filesystem"
	default:
		return "unknown"
	}
}

// LevelFromString converts a level name to its constant.
func LevelFromString(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return 0, fmtErrorf("invalid level string: '%s' (use trace, debug, info, warn, error)", levelStr)
	}
}

// ComponentFromString converts a component name to its constant.
func ComponentFromString(componentStr string) (Component, error) {
	switch strings.ToLower(strings.TrimSpace(componentStr)) {
	case "unknown":
		return ComponentUnknown, nil
	case "rpc":
		return ComponentRPC, nil
	case "blockreader", "block_reader":
		return ComponentBlockReader, nil
	case "filehandle", "file_handle":
		return ComponentFileHandle, nil
	case "filesystem", "file_system":
		return ComponentFileSystem, nil
	default:
		return 0, fmtErrorf("invalid component string: '%s' (use unknown, rpc, blockreader, filehandle, filesystem)", componentStr)
	}
}

// ComponentsFromString parses a comma-separated component list, or "all"
// for every component.
func ComponentsFromString(list string) (Component, error) {
	trimmed := strings.TrimSpace(list)
	if strings.EqualFold(trimmed, "all") {
		return ComponentAll, nil
	}

	var mask Component
	for _, part := range strings.Split(trimmed, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		c, err := ComponentFromString(part)
		if err != nil {
			return 0, err
		}
		mask |= c
	}
	if mask == 0 {
		return 0, fmtErrorf("component list '%s' enables nothing", list)
	}
	return mask, nil
}
