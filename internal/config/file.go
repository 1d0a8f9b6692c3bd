package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/util"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrUnknownStyle      = errors.New("unknown style")
	ErrUnknownKeyboard   = errors.New("unknown keyboard hint")
	ErrBadLength         = errors.New("max_length must be positive")
	ErrBadFontSize       = errors.New("font_size must be positive")
)

// File is the on-disk configuration. TOML and YAML share the same keys.
type File struct {
	Path  string       `toml:"-" yaml:"-"`
	Field FieldSection `toml:"field" yaml:"field"`
	Host  HostSection  `toml:"host" yaml:"host"`
}

// FieldSection overrides models.DefaultFieldConfig. Zero values keep the default.
type FieldSection struct {
	MaxLength       int     `toml:"max_length" yaml:"max_length"`
	Secure          bool    `toml:"secure" yaml:"secure"`
	Style           string  `toml:"style" yaml:"style"`
	FontName        string  `toml:"font_name" yaml:"font_name"`
	FontSize        float64 `toml:"font_size" yaml:"font_size"`
	TextColor       string  `toml:"text_color" yaml:"text_color"`
	BorderColor     string  `toml:"border_color" yaml:"border_color"`
	CaretColor      string  `toml:"caret_color" yaml:"caret_color"`
	BackgroundColor string  `toml:"background_color" yaml:"background_color"`
	CaretWidth      float64 `toml:"caret_width" yaml:"caret_width"`
	CaretHeight     float64 `toml:"caret_height" yaml:"caret_height"`
	Keyboard        string  `toml:"keyboard" yaml:"keyboard"`
}

// HostSection configures the terminal host and previews.
type HostSection struct {
	Theme      string  `toml:"theme" yaml:"theme"`
	ExpectHash string  `toml:"expect_hash" yaml:"expect_hash"`
	LogFile    string  `toml:"log_file" yaml:"log_file"`
	Width      float64 `toml:"width" yaml:"width"`
	Height     float64 `toml:"height" yaml:"height"`
}

// DefaultPath is where Find looks when no path is given.
func DefaultPath() string {
	return filepath.Join(util.ConfigDir(AppName), ConfigFileName)
}

// Find loads path, or DefaultPath when path is empty. A missing default file
// is not an error and yields nil.
func Find(path string) (*File, error) {
	if path != "" {
		return LoadFile(util.ExpandHome(path))
	}
	path = DefaultPath()
	if _, err := os.Stat(path); err != nil {
		return nil, nil
	}
	return LoadFile(path)
}

// LoadFile reads a .toml, .yaml or .yml config file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.Path = path
	return f, nil
}

// Parse decodes data in the format named by ext. Unknown keys are rejected.
func Parse(ext string, data []byte) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&f); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.UnmarshalWithOptions(data, &f, yaml.DisallowUnknownField()); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, ext)
	}
	return &f, nil
}

// FieldConfig applies the field section on top of the defaults.
func (f *File) FieldConfig() (models.FieldConfig, error) {
	return f.FieldConfigFrom(models.DefaultFieldConfig())
}

// FieldConfigFrom applies the field section on top of base. Colors, font
// and caret size left unset keep base's values.
func (f *File) FieldConfigFrom(base models.FieldConfig) (models.FieldConfig, error) {
	cfg := base
	if f == nil {
		return cfg, nil
	}
	s := f.Field
	switch {
	case s.MaxLength < 0:
		return cfg, fmt.Errorf("%w: %d", ErrBadLength, s.MaxLength)
	case s.MaxLength > 0:
		cfg.MaxLength = s.MaxLength
	}
	cfg.Secure = s.Secure
	style, ok := models.ParseStyle(s.Style)
	if !ok {
		return cfg, fmt.Errorf("%w %q", ErrUnknownStyle, s.Style)
	}
	cfg.Style = style
	hint, ok := models.ParseKeyboardHint(s.Keyboard)
	if !ok {
		return cfg, fmt.Errorf("%w %q", ErrUnknownKeyboard, s.Keyboard)
	}
	cfg.KeyboardHint = hint
	if s.FontName != "" {
		cfg.Font.Name = s.FontName
	}
	switch {
	case s.FontSize < 0:
		return cfg, fmt.Errorf("%w: %v", ErrBadFontSize, s.FontSize)
	case s.FontSize > 0:
		cfg.Font.Size = s.FontSize
	}
	if s.CaretWidth > 0 {
		cfg.CaretSize.W = s.CaretWidth
	}
	if s.CaretHeight > 0 {
		cfg.CaretSize.H = s.CaretHeight
	}

	colors := []struct {
		key string
		val string
		dst *color.RGBA
	}{
		{"text_color", s.TextColor, &cfg.TextColor},
		{"border_color", s.BorderColor, &cfg.BorderColor},
		{"caret_color", s.CaretColor, &cfg.CaretColor},
		{"background_color", s.BackgroundColor, &cfg.BackgroundColor},
	}
	for _, c := range colors {
		if c.val == "" {
			continue
		}
		rgba, err := ParseColor(c.val)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", c.key, err)
		}
		*c.dst = rgba
	}
	return cfg, nil
}
