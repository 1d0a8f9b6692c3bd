package testutil

import (
	"image/color"

	"github.com/akyairhashvil/codefield/internal/models"
)

// ConfigBuilder provides fluent API for creating field configs.
type ConfigBuilder struct {
	cfg models.FieldConfig
}

func NewConfig() *ConfigBuilder {
	return &ConfigBuilder{cfg: models.DefaultFieldConfig()}
}

func (b *ConfigBuilder) WithMaxLength(n int) *ConfigBuilder {
	b.cfg.MaxLength = n
	return b
}

func (b *ConfigBuilder) Secure() *ConfigBuilder {
	b.cfg.Secure = true
	return b
}

func (b *ConfigBuilder) WithStyle(s models.Style) *ConfigBuilder {
	b.cfg.Style = s
	return b
}

func (b *ConfigBuilder) WithFont(name string, size float64) *ConfigBuilder {
	b.cfg.Font = models.Font{Name: name, Size: size}
	return b
}

func (b *ConfigBuilder) WithCaret(c color.RGBA, w, h float64) *ConfigBuilder {
	b.cfg.CaretColor = c
	b.cfg.CaretSize = models.Size{W: w, H: h}
	return b
}

func (b *ConfigBuilder) Build() models.FieldConfig {
	return b.cfg
}
