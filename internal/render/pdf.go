package render

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/go-pdf/fpdf"
)

// RenderPDF writes a single page the size of bounds, in points, with cmds
// drawn as vector shapes. Glyphs use the closest PDF core font.
func RenderPDF(w io.Writer, cmds []Command, bounds Rect) error {
	if bounds.Right() <= 0 || bounds.Bottom() <= 0 {
		return fmt.Errorf("render: empty bounds %+v", bounds)
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: bounds.Right(), Ht: bounds.Bottom()},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for _, c := range cmds {
		switch c.Op {
		case OpFillRoundedRect:
			setFill(pdf, c.Color)
			pdf.RoundedRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Radius, "1234", "F")
		case OpStrokeRoundedRect:
			setDraw(pdf, c.Color)
			pdf.SetLineWidth(c.LineWidth)
			pdf.RoundedRect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, c.Radius, "1234", "D")
		case OpLine:
			setDraw(pdf, c.Color)
			pdf.SetLineWidth(c.LineWidth)
			pdf.Line(c.From.X, c.From.Y, c.To.X, c.To.Y)
		case OpFillEllipse:
			setFill(pdf, c.Color)
			center := c.Rect.Center()
			pdf.Ellipse(center.X, center.Y, c.Rect.W/2, c.Rect.H/2, 0, "F")
		case OpFillRect:
			setFill(pdf, c.Color)
			pdf.Rect(c.Rect.X, c.Rect.Y, c.Rect.W, c.Rect.H, "F")
		case OpGlyph:
			family, style := coreFont(c.Font.Name)
			pdf.SetFont(family, style, c.Font.Size)
			pdf.SetTextColor(int(c.Color.R), int(c.Color.G), int(c.Color.B))
			pdf.SetXY(c.Rect.X, c.Rect.Y)
			pdf.CellFormat(c.Rect.W, c.Rect.H, tr(c.Text), "", 0, "CM", false, 0, "")
		default:
			return fmt.Errorf("render: unsupported %s", c.Op)
		}
	}
	return pdf.Output(w)
}

func setFill(pdf *fpdf.Fpdf, c color.RGBA) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func setDraw(pdf *fpdf.Fpdf, c color.RGBA) {
	pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

// coreFont maps a font name onto Helvetica or Courier.
func coreFont(name string) (family, style string) {
	name = strings.ToLower(name)
	family = "Helvetica"
	if strings.Contains(name, "mono") {
		family = "Courier"
	}
	if strings.Contains(name, "bold") || strings.Contains(name, "semibold") {
		style = "B"
	}
	return family, style
}
