package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"aboard/internal/geom"
)

// boardFile is the persisted document format. Placed images are
// deliberately absent: only strokes, shapes, text, and view/session
// state survive a save/reload cycle.
type boardFile struct {
	Strokes   []strokeRecord `json:"strokes"`
	Shapes    []shapeRecord  `json:"shapes"`
	TextItems []textRecord   `json:"text_items"`

	OffsetX   float64 `json:"offset_x"`
	OffsetY   float64 `json:"offset_y"`
	Zoom      float64 `json:"zoom"`
	BrushSize int     `json:"brush_size"`

	DarkMode   bool `json:"dark_mode"`
	BGColor    RGB  `json:"bg_color"`
	BrushColor RGB  `json:"brush_color"`
}

type strokeRecord struct {
	Points   [][2]float64 `json:"points"`
	Color    RGB          `json:"color"`
	Size     float64      `json:"size"`
	IsEraser bool         `json:"is_eraser"`
}

type shapeRecord struct {
	Type  ShapeKind `json:"type"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	W     float64   `json:"w"`
	H     float64   `json:"h"`
	Color RGB       `json:"color"`
	Size  float64   `json:"size"`
}

type textRecord struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Color    RGB     `json:"color"`
	FontSize float64 `json:"font_size"`
}

// defaultBoardFile carries the documented fallbacks: any field a loaded
// document is missing keeps the value set here.
func defaultBoardFile() boardFile {
	return boardFile{
		Zoom:       1.0,
		BrushSize:  DefaultBrushSize,
		BGColor:    White,
		BrushColor: Black,
	}
}

// Encode serializes the committed document and session palette. Drafts
// and images are not persisted.
func Encode(doc *Document, pal *Palette) ([]byte, error) {
	f := boardFile{
		Strokes:    make([]strokeRecord, 0, len(doc.Strokes)),
		Shapes:     make([]shapeRecord, 0, len(doc.Shapes)),
		TextItems:  make([]textRecord, 0, len(doc.Texts)),
		OffsetX:    doc.View.OffsetX,
		OffsetY:    doc.View.OffsetY,
		Zoom:       doc.View.Zoom,
		BrushSize:  doc.BrushSize,
		DarkMode:   pal.DarkMode,
		BGColor:    pal.Background,
		BrushColor: pal.Brush,
	}

	for _, s := range doc.Strokes {
		pts := make([][2]float64, len(s.Points))
		for i, p := range s.Points {
			pts[i] = [2]float64{p.X, p.Y}
		}
		f.Strokes = append(f.Strokes, strokeRecord{
			Points:   pts,
			Color:    s.Color,
			Size:     s.Size,
			IsEraser: s.Eraser,
		})
	}
	for _, s := range doc.Shapes {
		f.Shapes = append(f.Shapes, shapeRecord{
			Type: s.Kind,
			X:    s.X, Y: s.Y, W: s.W, H: s.H,
			Color: s.Color,
			Size:  s.Size,
		})
	}
	for _, t := range doc.Texts {
		f.TextItems = append(f.TextItems, textRecord{
			Text: t.Text,
			X:    t.X, Y: t.Y,
			Color:    t.Color,
			FontSize: t.FontSize,
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode board: %w", err)
	}
	return data, nil
}

// Decode restores a document and palette from persisted bytes. Missing
// fields fall back to defaults independently; a mistyped field keeps
// its default without rejecting the rest of the document. Only
// syntactically broken JSON is an error.
func Decode(data []byte) (*Document, *Palette, error) {
	f := defaultBoardFile()
	if err := json.Unmarshal(data, &f); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return nil, nil, fmt.Errorf("decode board: %w", err)
		}
	}

	doc := NewDocument()
	doc.View.OffsetX = f.OffsetX
	doc.View.OffsetY = f.OffsetY
	doc.View.Zoom = clampFloat(f.Zoom, geom.MinZoom, geom.MaxZoom)
	doc.SetBrushSize(f.BrushSize)

	for _, s := range f.Strokes {
		if len(s.Points) == 0 {
			continue
		}
		pts := make([]geom.Point, len(s.Points))
		for i, p := range s.Points {
			pts[i] = geom.Pt(p[0], p[1])
		}
		doc.Strokes = append(doc.Strokes, Stroke{
			Points: pts,
			Color:  s.Color,
			Size:   s.Size,
			Eraser: s.IsEraser,
		})
	}
	for _, s := range f.Shapes {
		doc.Shapes = append(doc.Shapes, Shape{
			Kind: s.Type,
			X:    s.X, Y: s.Y, W: s.W, H: s.H,
			Color: s.Color,
			Size:  s.Size,
		})
	}
	for _, t := range f.TextItems {
		if t.Text == "" {
			continue
		}
		doc.Texts = append(doc.Texts, TextItem{
			Text: t.Text,
			X:    t.X, Y: t.Y,
			Color:    t.Color,
			FontSize: t.FontSize,
		})
	}

	pal := &Palette{
		DarkMode:   f.DarkMode,
		Background: f.BGColor,
		Brush:      f.BrushColor,
	}
	return doc, pal, nil
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
