package render

import (
	"bytes"
	"image/color"
	"image/png"
	"testing"

	"github.com/akyairhashvil/codefield/internal/models"
	"github.com/akyairhashvil/codefield/internal/testutil"
)

func closeTo(a, b color.Color) bool {
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	near := func(x, y uint32) bool {
		if x > y {
			return x-y <= 0x0300
		}
		return y-x <= 0x0300
	}
	return near(ar, br) && near(ag, bg) && near(ab, bb) && near(aa, ba)
}

func TestRasterRendererBordered(t *testing.T) {
	cfg := testutil.NewConfig().WithMaxLength(4).Secure().Build()
	metrics := NewFaceMetrics()
	t.Cleanup(func() { _ = metrics.Close() })
	cmds := ComputeDrawCommands("12", cfg, testBounds, metrics)

	r := &RasterRenderer{Metrics: metrics}
	img, err := r.Render(cmds, testBounds)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 204 || img.Bounds().Dy() != 55 {
		t.Fatalf("unexpected image size %v", img.Bounds())
	}

	g := NewGeometry(testBounds, 4)
	dot := g.Slot(0).Center()
	if got := img.At(int(dot.X), int(dot.Y)); !closeTo(got, cfg.TextColor) {
		t.Fatalf("expected dot color at slot 0 center, got %v", got)
	}
	empty := g.Slot(3).Center()
	if got := img.At(int(empty.X), int(empty.Y)); !closeTo(got, cfg.BackgroundColor) {
		t.Fatalf("expected background in empty slot, got %v", got)
	}
	if got := img.At(100, 0); !closeTo(got, cfg.BorderColor) {
		t.Fatalf("expected top border at (100,0), got %v", got)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a > 0x0300 {
		t.Fatalf("expected rounded corner to stay transparent, alpha %d", a)
	}
}

func TestRasterRendererGlyphsAndScale(t *testing.T) {
	cfg := testutil.NewConfig().WithMaxLength(4).WithFont("Go-Bold", 39).Build()
	r := NewRasterRenderer(2)
	t.Cleanup(func() { _ = r.Metrics.Close() })
	cmds := ComputeDrawCommands("W", cfg, testBounds, r.Metrics)
	cmds = append(cmds, CaretCommand(1, cfg, testBounds))

	img, err := r.Render(cmds, testBounds)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if img.Bounds().Dx() != 408 || img.Bounds().Dy() != 110 {
		t.Fatalf("unexpected scaled size %v", img.Bounds())
	}

	slot := NewGeometry(testBounds, 4).Slot(0)
	inked := 0
	for y := int(slot.Y * 2); y < int(slot.Bottom()*2); y++ {
		for x := int(slot.X*2) + 2; x < int(slot.Right()*2)-2; x++ {
			if closeTo(img.At(x, y), cfg.TextColor) {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatalf("expected glyph pixels in slot 0")
	}

	caret := CaretFrame(1, cfg, testBounds).Center()
	if got := img.At(int(caret.X*2), int(caret.Y*2)); !closeTo(got, cfg.CaretColor) {
		t.Fatalf("expected caret color at caret center, got %v", got)
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, img); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatalf("png did not decode: %v", err)
	}
}

func TestRasterRendererRejectsEmptyBounds(t *testing.T) {
	r := NewRasterRenderer(1)
	if _, err := r.Render(nil, Rect{}); err == nil {
		t.Fatalf("expected empty bounds to fail")
	}
}

func TestFaceMetrics(t *testing.T) {
	m := NewFaceMetrics()
	t.Cleanup(func() { _ = m.Close() })
	small := m.GlyphSize(models.Font{Name: "Go", Size: 20})
	large := m.GlyphSize(models.Font{Name: "Go", Size: 40})
	if small.W <= 0 || small.H <= 0 {
		t.Fatalf("expected positive glyph size, got %+v", small)
	}
	if large.W <= small.W || large.H <= small.H {
		t.Fatalf("expected larger font to measure larger: %+v vs %+v", small, large)
	}
	if unknown := m.GlyphSize(models.Font{Name: "PingFangSC-Semibold", Size: 20}); unknown.W <= 0 {
		t.Fatalf("expected unknown font to fall back, got %+v", unknown)
	}
	if got := (CellMetrics{}).GlyphSize(models.Font{Size: 39}); got != (models.Size{W: 1, H: 1}) {
		t.Fatalf("unexpected cell metrics %+v", got)
	}
}

func TestRenderPDF(t *testing.T) {
	for _, cfg := range []models.FieldConfig{
		testutil.NewConfig().Build(),
		testutil.NewConfig().Secure().WithStyle(models.StyleUnderlined).Build(),
		testutil.NewConfig().WithFont("Go-Mono", 24).Build(),
	} {
		cmds := ComputeDrawCommands("A1b2", cfg, Rect{W: 295, H: 55}, CellMetrics{})
		cmds = append(cmds, CaretCommand(4, cfg, Rect{W: 295, H: 55}))
		var buf bytes.Buffer
		if err := RenderPDF(&buf, cmds, Rect{W: 295, H: 55}); err != nil {
			t.Fatalf("RenderPDF failed: %v", err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")) {
			t.Fatalf("output is not a pdf")
		}
	}
	if err := RenderPDF(&bytes.Buffer{}, nil, Rect{}); err == nil {
		t.Fatalf("expected empty bounds to fail")
	}
}

func TestCoreFont(t *testing.T) {
	cases := []struct{ name, family, style string }{
		{"Go", "Helvetica", ""},
		{"Go-Bold", "Helvetica", "B"},
		{"PingFangSC-Semibold", "Helvetica", "B"},
		{"Go-Mono", "Courier", ""},
	}
	for _, tc := range cases {
		family, style := coreFont(tc.name)
		if family != tc.family || style != tc.style {
			t.Fatalf("coreFont(%q) = %q %q, want %q %q", tc.name, family, style, tc.family, tc.style)
		}
	}
}
