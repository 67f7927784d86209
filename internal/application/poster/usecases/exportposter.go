package usecases

import (
	"fmt"
	"strings"

	"mnada/internal/application/poster/dto"
	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/domain/poster"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
)

// ExportVariant pairs a finished layout with its language tag.
type ExportVariant struct {
	Language string
	Layout   poster.Layout
}

// ExportPosterCommand requests rasterizer-ready jobs for the finished
// layout variants. Crop and Date feed the deterministic filenames.
type ExportPosterCommand struct {
	Crop     string
	Date     string // ISO calendar date, YYYY-MM-DD
	Variants []ExportVariant
}

type ExportPosterUseCase struct {
	logger logger.Interface
}

func NewExportPosterUseCase(logger logger.Interface) *ExportPosterUseCase {
	return &ExportPosterUseCase{logger: logger}
}

// Execute resolves every variant to an export job in request order:
// download positions promoted, filename derived from crop, language, and
// date.
func (uc *ExportPosterUseCase) Execute(cmd ExportPosterCommand) (*dto.ExportSetDTO, error) {
	if len(cmd.Variants) == 0 {
		return nil, errors.NewValidationError("at least one poster variant is required")
	}
	crop, ok := catalog.ParseCrop(cmd.Crop)
	if !ok {
		return nil, errors.NewValidationError("a valid crop is required", fmt.Sprintf("unknown crop %q", cmd.Crop))
	}
	date, err := locale.ParseDate(cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be a valid ISO date", err.Error())
	}

	result := &dto.ExportSetDTO{}
	for _, variant := range cmd.Variants {
		lang := locale.ParseLang(variant.Language)
		layout := variant.Layout.ForExport()
		result.Jobs = append(result.Jobs, dto.ExportJobDTO{
			Language:       lang.String(),
			Filename:       exportFilename(crop, lang, date.Format("2006-01-02")),
			Layout:         layout,
			ParagraphSpans: locale.Spans(layout.Paragraph.Content),
		})
	}

	uc.logger.Infow("poster export prepared", "crop", crop.String(), "jobs", len(result.Jobs))
	return result, nil
}

// exportFilename builds poster-{crop-slug}-{lang}-{date}.png.
func exportFilename(crop catalog.Crop, lang locale.Lang, isoDate string) string {
	slug := strings.ReplaceAll(strings.ToLower(crop.String()), " ", "-")
	return fmt.Sprintf("poster-%s-%s-%s.png", slug, lang, isoDate)
}
