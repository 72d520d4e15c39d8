package format

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

type Format int

const (
	JSONFormat Format = iota
	CSVFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"j":    JSONFormat,
		"json": JSONFormat,
		"c":    CSVFormat,
		"csv":  CSVFormat,
		"y":    YAMLFormat,
		"yaml": YAMLFormat,
		"yml":  YAMLFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case JSONFormat:
		return []byte("json"), nil
	case CSVFormat:
		return []byte("csv"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool { return f == JSONFormat }
func (f Format) IsCSV() bool  { return f == CSVFormat }
func (f Format) IsYAML() bool { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case JSONFormat:
		return ".json"
	case CSVFormat:
		return ".csv"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// FromPath guesses the format of a file from its extension.
func FromPath(path string) (Format, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return 0, false
	}
	f, err := ParseFormat(ext[1:])
	if err != nil {
		return 0, false
	}
	return f, true
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{JSONFormat, CSVFormat, YAMLFormat}
}
