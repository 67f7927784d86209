package handlers

import (
	"github.com/gin-gonic/gin"

	"mnada/internal/application/poster/usecases"
	"mnada/internal/domain/poster"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
	"mnada/internal/shared/utils"
)

type PosterHandler struct {
	composePosterUC *usecases.ComposePosterUseCase
	applyContentUC  *usecases.ApplyContentUseCase
	exportPosterUC  *usecases.ExportPosterUseCase
	logger          logger.Interface
}

func NewPosterHandler(
	composePosterUC *usecases.ComposePosterUseCase,
	applyContentUC *usecases.ApplyContentUseCase,
	exportPosterUC *usecases.ExportPosterUseCase,
) *PosterHandler {
	return &PosterHandler{
		composePosterUC: composePosterUC,
		applyContentUC:  applyContentUC,
		exportPosterUC:  exportPosterUC,
		logger:          logger.NewLogger(),
	}
}

type ComposePosterRequest struct {
	Regions   []string `json:"regions" binding:"required,min=1"`
	Crop      string   `json:"crop" binding:"required"`
	Date      string   `json:"date" binding:"required"`
	Time      string   `json:"time" binding:"required,hhmm"`
	Languages []string `json:"languages"`
}

type ApplyContentRequest struct {
	Layout poster.Layout       `json:"layout"`
	Patch  poster.ContentPatch `json:"patch"`
}

type ExportVariantRequest struct {
	Language string        `json:"language" binding:"required"`
	Layout   poster.Layout `json:"layout"`
}

type ExportPosterRequest struct {
	Crop     string                 `json:"crop" binding:"required"`
	Date     string                 `json:"date" binding:"required"`
	Variants []ExportVariantRequest `json:"variants" binding:"required,min=1,dive"`
}

// GetDefaultLayout returns the sample layout a fresh editing session
// starts from.
func (h *PosterHandler) GetDefaultLayout(c *gin.Context) {
	utils.OKResponse(c, poster.DefaultLayout())
}

func (h *PosterHandler) ComposePoster(c *gin.Context) {
	var req ComposePosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for poster compose", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ComposePosterCommand{
		Regions:   req.Regions,
		Crop:      req.Crop,
		Date:      req.Date,
		Time:      req.Time,
		Languages: req.Languages,
	}

	result, err := h.composePosterUC.Execute(cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PosterHandler) ApplyContent(c *gin.Context) {
	var req ApplyContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for poster apply", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	result, err := h.applyContentUC.Execute(usecases.ApplyContentCommand{
		Layout: req.Layout,
		Patch:  req.Patch,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PosterHandler) ExportPoster(c *gin.Context) {
	var req ExportPosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for poster export", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ExportPosterCommand{
		Crop: req.Crop,
		Date: req.Date,
	}
	for _, variant := range req.Variants {
		cmd.Variants = append(cmd.Variants, usecases.ExportVariant{
			Language: variant.Language,
			Layout:   variant.Layout,
		})
	}

	result, err := h.exportPosterUC.Execute(cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
