package poster

// ContentPatch carries composer-generated content. Applying a patch must
// never discard manual positioning work, so the patch holds content fields
// only and each field overwrites its target only when non-empty.
type ContentPatch struct {
	TopText          string   `json:"top_text,omitempty"`
	Heading          string   `json:"heading,omitempty"`
	Paragraph        string   `json:"paragraph,omitempty"`
	DateCircleTop    string   `json:"date_circle_top,omitempty"`
	DateCircleMain   string   `json:"date_circle_main,omitempty"`
	DateCircleBottom string   `json:"date_circle_bottom,omitempty"`
	FooterLogos      []string `json:"footer_logos,omitempty"`
}

// ApplyTo merges the patch into a layout. Positions, styles, background,
// and corner logos are left untouched; empty patch fields leave the prior
// content in place.
func (p ContentPatch) ApplyTo(layout Layout) Layout {
	if p.TopText != "" {
		layout.TopText = p.TopText
	}
	if p.Heading != "" {
		layout.Heading.Content = p.Heading
	}
	if p.Paragraph != "" {
		layout.Paragraph.Content = p.Paragraph
	}
	if p.DateCircleTop != "" {
		layout.DateCircle.Top.Content = p.DateCircleTop
	}
	if p.DateCircleMain != "" {
		layout.DateCircle.Main.Content = p.DateCircleMain
	}
	if p.DateCircleBottom != "" {
		layout.DateCircle.Bottom.Content = p.DateCircleBottom
	}
	if len(p.FooterLogos) > 0 {
		layout.FooterLogos = append([]string(nil), p.FooterLogos...)
	}
	return layout
}
