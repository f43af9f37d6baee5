package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	ConfigFormat Format = iota
	JSONFormat
	JSONCompactFormat
	YAMLFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"c":       ConfigFormat,
		"config":  ConfigFormat,
		"ucl":     ConfigFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"jc":      JSONCompactFormat,
		"compact": JSONCompactFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
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
	case ConfigFormat:
		return []byte("config"), nil
	case JSONFormat:
		return []byte("json"), nil
	case JSONCompactFormat:
		return []byte("compact"), nil
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

func (f Format) IsJSON() bool   { return f == JSONFormat || f == JSONCompactFormat }
func (f Format) IsConfig() bool { return f == ConfigFormat }
func (f Format) IsYAML() bool   { return f == YAMLFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case ConfigFormat:
		return ".conf"
	case JSONFormat, JSONCompactFormat:
		return ".json"
	case YAMLFormat:
		return ".yaml"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{ConfigFormat, JSONFormat, JSONCompactFormat, YAMLFormat}
}
