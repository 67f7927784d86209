package dto

import (
	"mnada/internal/domain/locale"
	"mnada/internal/domain/poster"
)

// PosterDTO is one composed poster variant: the generated content patch
// plus the patch already merged into the layout, so clients can either
// take the preview or re-apply the patch to an edited layout.
type PosterDTO struct {
	Language string              `json:"language"`
	Patch    poster.ContentPatch `json:"patch"`
	Layout   poster.Layout       `json:"layout"`
}

// PosterSetDTO carries the composed variants in request language order.
type PosterSetDTO struct {
	Posters []PosterDTO `json:"posters"`
}

// ExportJobDTO is one poster ready for rasterization: the deterministic
// output filename, the layout with export positions resolved, and the
// paragraph pre-tokenized into plain and bold runs.
type ExportJobDTO struct {
	Language       string        `json:"language"`
	Filename       string        `json:"filename"`
	Layout         poster.Layout `json:"layout"`
	ParagraphSpans []locale.Span `json:"paragraph_spans"`
}

// ExportSetDTO carries export jobs in request language order.
type ExportSetDTO struct {
	Jobs []ExportJobDTO `json:"jobs"`
}
