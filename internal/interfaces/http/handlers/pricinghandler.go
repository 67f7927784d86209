package handlers

import (
	"github.com/gin-gonic/gin"

	"mnada/internal/application/pricing/usecases"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
	"mnada/internal/shared/utils"
)

type PricingHandler struct {
	generateBoardUC *usecases.GeneratePriceBoardUseCase
	logger          logger.Interface
}

func NewPricingHandler(generateBoardUC *usecases.GeneratePriceBoardUseCase) *PricingHandler {
	return &PricingHandler{
		generateBoardUC: generateBoardUC,
		logger:          logger.NewLogger(),
	}
}

type PriceRowRequest struct {
	Commodity string `json:"commodity" binding:"required"`
	Region    string `json:"region" binding:"required"`
	Union     string `json:"union"`
	HighPrice string `json:"high_price"`
	LowPrice  string `json:"low_price"`
	Weight    string `json:"weight"`
}

type PriceBoardRequest struct {
	Date string            `json:"date" binding:"required"`
	Rows []PriceRowRequest `json:"rows" binding:"required,min=1,max=4,dive"`
}

func (h *PricingHandler) GenerateBoard(c *gin.Context) {
	var req PriceBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for price board", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.GeneratePriceBoardCommand{Date: req.Date}
	for _, row := range req.Rows {
		cmd.Rows = append(cmd.Rows, usecases.PriceRowInput{
			Commodity: row.Commodity,
			Region:    row.Region,
			Union:     row.Union,
			HighPrice: row.HighPrice,
			LowPrice:  row.LowPrice,
			Weight:    row.Weight,
		})
	}

	result, err := h.generateBoardUC.Execute(cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
