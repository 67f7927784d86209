package usecases

import (
	"fmt"
	"strings"

	"mnada/internal/application/pricing/dto"
	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
)

const maxBoardRows = 4

// PriceRowInput is one commodity price entry. Union is optional; price and
// weight fields are free-form and render as "-" when blank.
type PriceRowInput struct {
	Commodity string
	Region    string
	Union     string
	HighPrice string
	LowPrice  string
	Weight    string
}

// GeneratePriceBoardCommand requests a daily market price board for up to
// four commodity rows.
type GeneratePriceBoardCommand struct {
	Date string // ISO calendar date, YYYY-MM-DD
	Rows []PriceRowInput
}

type GeneratePriceBoardUseCase struct {
	logger logger.Interface
}

func NewGeneratePriceBoardUseCase(logger logger.Interface) *GeneratePriceBoardUseCase {
	return &GeneratePriceBoardUseCase{logger: logger}
}

// Execute lays out the board as an ordered draw list on a 1000x1000 canvas.
func (uc *GeneratePriceBoardUseCase) Execute(cmd GeneratePriceBoardCommand) (*dto.PriceBoardDTO, error) {
	date, err := locale.ParseDate(cmd.Date)
	if err != nil {
		return nil, errors.NewValidationError("date must be a valid ISO date", err.Error())
	}
	if len(cmd.Rows) == 0 {
		return nil, errors.NewValidationError("at least one price row is required")
	}
	if len(cmd.Rows) > maxBoardRows {
		return nil, errors.NewValidationError(fmt.Sprintf("at most %d price rows are allowed", maxBoardRows))
	}

	board := &dto.PriceBoardDTO{
		Width:      1000,
		Height:     1000,
		Background: "#f5f5dc",
		Filename:   fmt.Sprintf("commodity-prices-%s.png", date.Format("2006-01-02")),
	}

	board.Texts = append(board.Texts,
		centered("THE UNITED REPUBLIC OF TANZANIA", "bold 24px Arial", "#000", 60),
		centered("MINISTRY OF FINANCE", "bold 24px Arial", "#000", 90),
		centered("TANZANIA MERCANTILE EXCHANGE", "bold 24px Arial", "#000", 120),
	)

	board.Rects = append(board.Rects, dto.RectElement{X: 50, Y: 150, Width: 900, Height: 80, Color: "#f5f5dc"})
	board.Texts = append(board.Texts,
		centered("Daily Market Price", "bold 36px Arial", "#fff", 185),
		centered(date.Format("02 January 2006"), "bold 36px Arial", "#fff", 220),
	)

	const headerY = 300.0
	board.Texts = append(board.Texts,
		left("Commodity", "bold 20px Arial", 80, headerY),
		left("High Price", "bold 20px Arial", 380, headerY),
		left("Low Price", "bold 20px Arial", 550, headerY),
		left("Weight", "bold 20px Arial", 720, headerY),
		left("(TZS/kg)", "bold 20px Arial", 380, headerY+25),
		left("(TZS/kg)", "bold 20px Arial", 550, headerY+25),
		left("(Kgs)", "bold 20px Arial", 720, headerY+25),
	)
	board.Lines = append(board.Lines, rule(headerY+35, 2))

	y := headerY + 70
	for i, row := range cmd.Rows {
		code, detail, err := commodityCode(row)
		if err != nil {
			return nil, err
		}

		board.Texts = append(board.Texts,
			left(code, "bold 24px Arial", 80, y),
			left(detail, "14px Arial", 80, y+20),
			left(orDash(row.HighPrice), "26px Arial", 380, y),
			left(orDash(row.LowPrice), "26px Arial", 550, y),
			left(orDash(row.Weight), "26px Arial", 720, y),
		)

		width := 1.0
		if i == len(cmd.Rows)-1 {
			width = 2.0
		}
		board.Lines = append(board.Lines, rule(y+35, width))
		y += 80
	}

	board.Texts = append(board.Texts,
		centered("tmx.tz     |       tmxtz1 |       tmx_tz |       www.tmx.co.tz", "16px Arial", "#000", 950),
	)

	uc.logger.Infow("price board generated", "date", cmd.Date, "rows", len(cmd.Rows))
	return board, nil
}

// commodityCode builds the short code line and the parenthesized detail
// line, e.g. "CF-SING" and "(Coffee - TANECU - Singida)". The union is
// elided when absent.
func commodityCode(row PriceRowInput) (code, detail string, err error) {
	crop, ok := catalog.ParseCrop(row.Commodity)
	if !ok {
		return "", "", errors.NewValidationError("a valid commodity is required", fmt.Sprintf("unknown commodity %q", row.Commodity))
	}
	region := catalog.NormalizeRegion(row.Region)
	if region == "" {
		return "", "", errors.NewValidationError("a region is required for every price row")
	}

	code = fmt.Sprintf("%s-%s", crop.Code(), region.Code())

	cropName := sentenceCase(crop.String())
	regionName := sentenceCase(string(region))
	union := strings.TrimSpace(row.Union)
	if union == "" || strings.EqualFold(union, "No Union") {
		detail = fmt.Sprintf("(%s - %s)", cropName, regionName)
	} else {
		detail = fmt.Sprintf("(%s - %s - %s)", cropName, union, regionName)
	}
	return code, detail, nil
}

// sentenceCase keeps the first rune and lowercases the rest, matching the
// board's display style for multi-word names ("Chick pea", "Dar es salaam").
func sentenceCase(s string) string {
	if s == "" {
		return s
	}
	return s[:1] + strings.ToLower(s[1:])
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func centered(content, font, color string, y float64) dto.TextElement {
	return dto.TextElement{Content: content, Font: font, Align: "center", Color: color, X: 500, Y: y}
}

func left(content, font string, x, y float64) dto.TextElement {
	return dto.TextElement{Content: content, Font: font, Align: "left", Color: "#000", X: x, Y: y}
}

func rule(y, width float64) dto.LineElement {
	return dto.LineElement{X1: 70, Y1: y, X2: 930, Y2: y, StrokeWidth: width}
}
