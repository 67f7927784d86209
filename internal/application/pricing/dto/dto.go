package dto

// TextElement is one positioned text draw on the board canvas.
type TextElement struct {
	Content string  `json:"content"`
	Font    string  `json:"font"`
	Align   string  `json:"align"`
	Color   string  `json:"color"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

// RectElement is a filled rectangle.
type RectElement struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// LineElement is a horizontal rule stroke.
type LineElement struct {
	X1          float64 `json:"x1"`
	Y1          float64 `json:"y1"`
	X2          float64 `json:"x2"`
	Y2          float64 `json:"y2"`
	StrokeWidth float64 `json:"stroke_width"`
}

// PriceBoardDTO is the daily market price board as a declarative draw
// list on a square canvas, painted in order: background, rects, texts,
// lines.
type PriceBoardDTO struct {
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	Background string        `json:"background"`
	Filename   string        `json:"filename"`
	Rects      []RectElement `json:"rects"`
	Texts      []TextElement `json:"texts"`
	Lines      []LineElement `json:"lines"`
}
