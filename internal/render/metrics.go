package render

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/codefield/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// sampleGlyph sizes every slot's glyph box, so narrow and wide characters
// share one centered box.
const sampleGlyph = "O"

// CellMetrics gives every glyph a unit box. Cell canvases only read the
// box center.
type CellMetrics struct{}

func (CellMetrics) GlyphSize(models.Font) models.Size {
	return models.Size{W: 1, H: 1}
}

// FaceMetrics measures glyphs with the Go font family at 72 DPI, so one point
// is one layout unit. Faces are cached per font; not safe for concurrent use.
type FaceMetrics struct {
	fonts map[string]*opentype.Font
	faces map[models.Font]font.Face
}

func NewFaceMetrics() *FaceMetrics {
	return &FaceMetrics{
		fonts: make(map[string]*opentype.Font),
		faces: make(map[models.Font]font.Face),
	}
}

// fontData maps font names to the bundled TTFs. Unknown names use Go Regular.
func fontData(name string) (string, []byte) {
	switch strings.ToLower(strings.ReplaceAll(name, " ", "-")) {
	case "go-bold", "bold", "semibold":
		return "go-bold", gobold.TTF
	case "go-medium", "medium":
		return "go-medium", gomedium.TTF
	case "go-mono", "mono", "monospace":
		return "go-mono", gomono.TTF
	default:
		return "go", goregular.TTF
	}
}

// Face returns a face for f, parsing the font on first use.
func (m *FaceMetrics) Face(f models.Font) (font.Face, error) {
	if face, ok := m.faces[f]; ok {
		return face, nil
	}
	key, data := fontData(f.Name)
	parsed, ok := m.fonts[key]
	if !ok {
		var err error
		parsed, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse font %s: %w", key, err)
		}
		m.fonts[key] = parsed
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("face %s: %w", f, err)
	}
	m.faces[f] = face
	return face, nil
}

// GlyphSize is the advance of "O" by the face's line height. A font that
// cannot be loaded falls back to a square of the point size.
func (m *FaceMetrics) GlyphSize(f models.Font) models.Size {
	face, err := m.Face(f)
	if err != nil {
		return models.Size{W: f.Size, H: f.Size}
	}
	return models.Size{
		W: fixedToFloat(font.MeasureString(face, sampleGlyph)),
		H: fixedToFloat(face.Metrics().Height),
	}
}

// Close releases cached faces.
func (m *FaceMetrics) Close() error {
	var first error
	for k, face := range m.faces {
		if err := face.Close(); err != nil && first == nil {
			first = err
		}
		delete(m.faces, k)
	}
	return first
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
