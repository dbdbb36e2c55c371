package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/favonia/cron-explainer/internal/pp"
)

// ErrUnknownFormat is wrapped by errors about unsupported output formats.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formats lists all supported formats.
//
//nolint:gochecknoglobals
var Formats = [...]Format{FormatText, FormatJSON, FormatYAML}

// DescribeFormats lists the supported formats in English.
func DescribeFormats() string {
	return pp.EnglishJoinMap(func(f Format) string { return string(f) }, Formats[:])
}

// ParseFormat reads a format name, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}
