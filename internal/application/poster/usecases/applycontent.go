package usecases

import (
	"mnada/internal/domain/poster"
	"mnada/internal/shared/logger"
)

// ApplyContentCommand merges a generated content patch into a layout the
// operator may already have repositioned.
type ApplyContentCommand struct {
	Layout poster.Layout
	Patch  poster.ContentPatch
}

type ApplyContentUseCase struct {
	logger logger.Interface
}

func NewApplyContentUseCase(logger logger.Interface) *ApplyContentUseCase {
	return &ApplyContentUseCase{logger: logger}
}

// Execute returns the layout with the patch content merged in. Positions,
// background, styling, and corner logos are preserved as-is.
func (uc *ApplyContentUseCase) Execute(cmd ApplyContentCommand) (poster.Layout, error) {
	return cmd.Patch.ApplyTo(cmd.Layout), nil
}
