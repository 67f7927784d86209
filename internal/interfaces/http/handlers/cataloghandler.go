package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"

	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/shared/logger"
	"mnada/internal/shared/utils"
)

// PlatformLister exposes the registered publication platform names.
type PlatformLister interface {
	Platforms() []string
}

// CatalogHandler serves the static selection tables the client UIs build
// their pickers from.
type CatalogHandler struct {
	platforms PlatformLister
	logger    logger.Interface
}

func NewCatalogHandler(platforms PlatformLister) *CatalogHandler {
	return &CatalogHandler{
		platforms: platforms,
		logger:    logger.NewLogger(),
	}
}

type CropEntry struct {
	Name          string   `json:"name"`
	SwahiliName   string   `json:"swahili_name"`
	EnglishName   string   `json:"english_name"`
	Code          string   `json:"code"`
	Hashtag       string   `json:"hashtag"`
	Organizations []string `json:"organizations"`
}

type RegionEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

type CatalogResponse struct {
	Crops     []CropEntry   `json:"crops"`
	Regions   []RegionEntry `json:"regions"`
	Unions    []string      `json:"unions"`
	Languages []string      `json:"languages"`
	Platforms []string      `json:"platforms"`
}

func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	resp := CatalogResponse{}

	for _, crop := range catalog.Crops {
		resp.Crops = append(resp.Crops, CropEntry{
			Name:          crop.String(),
			SwahiliName:   crop.SwahiliName(),
			EnglishName:   crop.EnglishName(),
			Code:          crop.Code(),
			Hashtag:       crop.Hashtag(),
			Organizations: catalog.OrganizationNames(crop.Organizations()),
		})
	}

	for _, region := range catalog.Regions {
		resp.Regions = append(resp.Regions, RegionEntry{
			Name: region.String(),
			Code: region.Code(),
		})
	}

	for _, union := range catalog.Unions {
		resp.Unions = append(resp.Unions, union.String())
	}

	resp.Languages = []string{locale.Swahili.String(), locale.English.String()}

	resp.Platforms = h.platforms.Platforms()
	sort.Strings(resp.Platforms)

	utils.OKResponse(c, resp)
}
