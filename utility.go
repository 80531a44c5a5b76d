// FILE: utility.go
package dfslog

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"
)

// fmtErrorf wrapper, keeps every package error under one prefix
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, "dfslog: ") {
		format = "dfslog: " + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%v; %w", err1, err2)
}

// combineConfigErrors flattens override parse failures into one error.
func combineConfigErrors(errs []error) error {
	var combined error
	for _, err := range errs {
		combined = combineErrors(combined, err)
	}
	return combined
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// goroutineID extracts the current goroutine's id from its stack header
// ("goroutine N [running]:"). Diagnostic display only, never used for
// control flow.
func goroutineID() string {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]

	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		return string(header[:i])
	}
	return "?"
}
