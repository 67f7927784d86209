package handlers

import (
	"github.com/gin-gonic/gin"

	"mnada/internal/application/content/usecases"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
	"mnada/internal/shared/utils"
)

type ContentHandler struct {
	generateAnnouncementUC *usecases.GenerateAnnouncementUseCase
	logger                 logger.Interface
}

func NewContentHandler(generateAnnouncementUC *usecases.GenerateAnnouncementUseCase) *ContentHandler {
	return &ContentHandler{
		generateAnnouncementUC: generateAnnouncementUC,
		logger:                 logger.NewLogger(),
	}
}

type GenerateAnnouncementRequest struct {
	Regions []string `json:"regions" binding:"required,min=1"`
	Crop    string   `json:"crop" binding:"required"`
	Date    string   `json:"date" binding:"required"`
	Time    string   `json:"time" binding:"required,hhmm"`
}

func (h *ContentHandler) GenerateAnnouncement(c *gin.Context) {
	var req GenerateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for announcement", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.GenerateAnnouncementCommand{
		Regions: req.Regions,
		Crop:    req.Crop,
		Date:    req.Date,
		Time:    req.Time,
	}

	result, err := h.generateAnnouncementUC.Execute(cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
