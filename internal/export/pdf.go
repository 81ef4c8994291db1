// Package export renders a committed document to PDF.
package export

import (
	"fmt"
	"log"

	"github.com/jung-kurt/gofpdf"

	"aboard/internal/state"
)

// pdfScale maps world units onto A4 millimetres.
const pdfScale = 3.0

// PDF writes the document's strokes, shapes, and text to a one-page
// PDF. Placed images and the in-progress draft are not exported.
func PDF(path string, doc *state.Document) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.AddPage()
	p.SetFont("Helvetica", "", 12)

	for _, s := range doc.Strokes {
		setColors(p, s.Color)
		p.SetLineWidth(s.Size / pdfScale)
		if len(s.Points) == 1 {
			pt := s.Points[0]
			p.Circle(pt.X/pdfScale, pt.Y/pdfScale, s.Size/2/pdfScale, "F")
			continue
		}
		for i := 1; i < len(s.Points); i++ {
			p.Line(
				s.Points[i-1].X/pdfScale, s.Points[i-1].Y/pdfScale,
				s.Points[i].X/pdfScale, s.Points[i].Y/pdfScale,
			)
		}
	}

	for _, s := range doc.Shapes {
		setColors(p, s.Color)
		p.SetLineWidth(s.Size / pdfScale)
		drawShape(p, s)
	}

	for _, t := range doc.Texts {
		p.SetTextColor(channel(t.Color[0]), channel(t.Color[1]), channel(t.Color[2]))
		p.SetFontSize(t.FontSize / pdfScale * 2.83) // mm to pt
		p.Text(t.X/pdfScale, t.Y/pdfScale, t.Text)
	}

	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("export pdf: %w", err)
	}
	log.Printf("export: wrote %s (%d strokes, %d shapes, %d texts)",
		path, len(doc.Strokes), len(doc.Shapes), len(doc.Texts))
	return nil
}

func drawShape(p *gofpdf.Fpdf, s state.Shape) {
	x, y := s.X/pdfScale, s.Y/pdfScale
	w, h := s.W/pdfScale, s.H/pdfScale

	// Normalize the signed extent; arrows keep the raw direction.
	nx, ny, nw, nh := x, y, w, h
	if nw < 0 {
		nx, nw = nx+nw, -nw
	}
	if nh < 0 {
		ny, nh = ny+nh, -nh
	}

	switch s.Kind {
	case state.ShapeRectangle:
		if nw == 0 || nh == 0 {
			return
		}
		radius := 0.1 * nw
		if nh < nw {
			radius = 0.1 * nh
		}
		p.RoundedRect(nx, ny, nw, nh, radius, "1234", "D")
	case state.ShapeCircle:
		r := nw / 2
		if nh < nw {
			r = nh / 2
		}
		p.Circle(nx+nw/2, ny+nh/2, r, "D")
	case state.ShapeTriangle:
		p.Line(nx+nw/2, ny, nx, ny+nh)
		p.Line(nx, ny+nh, nx+nw, ny+nh)
		p.Line(nx+nw, ny+nh, nx+nw/2, ny)
	case state.ShapeArrow:
		p.Line(x, y, x+w, y+h)
	}
}

func setColors(p *gofpdf.Fpdf, c state.RGB) {
	p.SetDrawColor(channel(c[0]), channel(c[1]), channel(c[2]))
	p.SetFillColor(channel(c[0]), channel(c[1]), channel(c[2]))
}

func channel(v float64) int {
	return int(v*255 + 0.5)
}
