// Package poster models the declarative poster layout consumed by the
// external rasterizer: named text and image elements with positions on a
// square canvas. Generated content is merged into a layout through
// ContentPatch so that manual operator edits survive regeneration.
package poster

// Position is a 2D placement. Values are percentages of the canvas for
// announcement posters and absolute pixels for the price board.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Element is a positionable piece of content. DownloadPosition, when set,
// replaces Position at export resolution.
type Element struct {
	Content          string    `json:"content"`
	Position         Position  `json:"position"`
	DownloadPosition *Position `json:"download_position,omitempty"`
}

// PositionAt returns the element position for the requested layout mode.
func (e Element) PositionAt(download bool) Position {
	if download && e.DownloadPosition != nil {
		return *e.DownloadPosition
	}
	return e.Position
}

// DateCircle is the circular date badge: a label, the day number, and the
// month/year line, each independently positioned inside the circle.
type DateCircle struct {
	Position         Position  `json:"position"`
	DownloadPosition *Position `json:"download_position,omitempty"`
	Top              Element   `json:"top"`
	Main             Element   `json:"main"`
	Bottom           Element   `json:"bottom"`
}

// BackgroundStyle mirrors the CSS object-fit/object-position pair the
// renderer applies to the background image.
type BackgroundStyle struct {
	Fit      string `json:"fit"`
	Position string `json:"position"`
}

// Layout is the full poster description read once by the renderer per
// requested language variant.
type Layout struct {
	TopText           string          `json:"top_text"`
	Heading           Element         `json:"heading"`
	Paragraph         Element         `json:"paragraph"`
	BackgroundImage   string          `json:"background_image,omitempty"`
	BackgroundStyle   BackgroundStyle `json:"background_style"`
	HeaderFooterColor string          `json:"header_footer_color"`
	DateCircle        DateCircle      `json:"date_circle"`
	TopLeftLogo       string          `json:"top_left_logo,omitempty"`
	TopRightLogo      string          `json:"top_right_logo,omitempty"`
	FooterLogos       []string        `json:"footer_logos"`
}

// ForExport returns a copy of the layout with every download-resolution
// position promoted to the primary position, ready for the rasterizer.
func (l Layout) ForExport() Layout {
	l.Heading.Position = l.Heading.PositionAt(true)
	l.Heading.DownloadPosition = nil
	l.Paragraph.Position = l.Paragraph.PositionAt(true)
	l.Paragraph.DownloadPosition = nil
	if l.DateCircle.DownloadPosition != nil {
		l.DateCircle.Position = *l.DateCircle.DownloadPosition
		l.DateCircle.DownloadPosition = nil
	}
	for _, e := range []*Element{&l.DateCircle.Top, &l.DateCircle.Main, &l.DateCircle.Bottom} {
		e.Position = e.PositionAt(true)
		e.DownloadPosition = nil
	}
	return l
}

// DefaultLayout returns the sample poster shown before any generation:
// positions and styling for a fresh editing session.
func DefaultLayout() Layout {
	return Layout{
		TopText: "JAMHURI YA MUUNGANO WA TANZANIA\nWIZARA YA FEDHA\nSOKO LA BIDHAA TANZANIA",
		Heading: Element{
			Content:  "DENGU",
			Position: Position{X: 5, Y: 55},
		},
		Paragraph: Element{
			Content: "TMX, COPRA, WRRB, TCDC na Serikali ya Mikoa ya Singida na Dodoma " +
				"Zinawataarifu Wanunuzi na Wadau wote kushiriki mnada wa zao la DENGU " +
				"Mikoa ya Singida na Dodoma.\n\nMnada utafanyika Jumatano, tarehe 09/07/2025 " +
				"Kuanzia Saa Nne na nusu Asubuhi Kwa njia ya kielektroniki.\n\nKaribuni wote",
			Position: Position{X: 5, Y: 68},
		},
		BackgroundImage: "backgrounds/default-background.jpg",
		BackgroundStyle: BackgroundStyle{
			Fit:      "cover",
			Position: "center center",
		},
		HeaderFooterColor: "#fefadf",
		DateCircle: DateCircle{
			Position: Position{X: 15, Y: 35},
			Top:      Element{Content: "Tarehe", Position: Position{X: 50, Y: 20}},
			Main:     Element{Content: "09", Position: Position{X: 50, Y: 50}},
			Bottom:   Element{Content: "Julai\n2025", Position: Position{X: 50, Y: 80}},
		},
		TopLeftLogo:  "logos/government-logo.png",
		TopRightLogo: "logos/tmx-logo.png",
		FooterLogos: []string{
			"logos/tmx-logo.png",
			"logos/wrrb-logo.png",
			"logos/copra-logo.png",
		},
	}
}
