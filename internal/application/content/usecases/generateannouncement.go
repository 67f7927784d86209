package usecases

import (
	"fmt"
	"strings"

	"mnada/internal/application/common"
	"mnada/internal/application/content/dto"
	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/infrastructure/platform"
	"mnada/internal/shared/logger"
)

// GenerateAnnouncementCommand is the operator selection for one auction
// announcement. The caption bodies are always bilingual; no language
// toggle applies here.
type GenerateAnnouncementCommand struct {
	Regions []string
	Crop    string
	Date    string // ISO calendar date, YYYY-MM-DD
	Time    string // 24-hour HH:MM
}

type GenerateAnnouncementUseCase struct {
	profiles ProfileSource
	logger   logger.Interface
}

func NewGenerateAnnouncementUseCase(profiles ProfileSource, logger logger.Interface) *GenerateAnnouncementUseCase {
	return &GenerateAnnouncementUseCase{
		profiles: profiles,
		logger:   logger,
	}
}

func (uc *GenerateAnnouncementUseCase) Execute(cmd GenerateAnnouncementCommand) (*dto.AnnouncementDTO, error) {
	sel, err := common.ResolveSelection(cmd.Regions, cmd.Crop, cmd.Date, cmd.Time)
	if err != nil {
		uc.logger.Warnw("invalid announcement selection", "error", err)
		return nil, err
	}

	regionNames := locale.TitleCaseAll(sel.RegionNames())
	regionsSw := locale.FormatList(regionNames, locale.Swahili)
	regionsEn := locale.FormatList(regionNames, locale.English)

	orgNames := catalog.OrganizationNames(sel.Crop.Organizations())
	orgsSw := locale.FormatList(orgNames, locale.Swahili)
	orgsEn := locale.FormatList(orgNames, locale.English)

	videoTitle := strings.ToUpper(fmt.Sprintf(
		"[LIVE] %s TRADE SESSION %s (MNADA WA %s %s MBASHARA-TMX OTS | %s)",
		sel.Crop, regionsEn, sel.Crop.SwahiliName(), regionsSw, locale.FormatDateGB(sel.Date),
	))

	body := uc.captionBody(sel, regionsSw, regionsEn, orgsSw, orgsEn)

	facebook := uc.profiles.Profile(platform.Facebook)
	instagram := uc.profiles.Profile(platform.Instagram)

	result := &dto.AnnouncementDTO{
		VideoTitle:       videoTitle,
		Facebook:         uc.auctionCaption(body, sel.Crop, facebook),
		Instagram:        uc.auctionCaption(body, sel.Crop, instagram),
		FacebookResults:  uc.resultsCaption(facebook),
		InstagramResults: uc.resultsCaption(instagram),
	}

	uc.logger.Infow("announcement generated",
		"crop", sel.Crop.String(),
		"regions", len(sel.Regions),
		"date", cmd.Date,
	)

	return result, nil
}

// captionBody builds the bilingual caption body shared by all platforms.
// Only the English sentence carries region-count agreement.
func (uc *GenerateAnnouncementUseCase) captionBody(sel common.Selection, regionsSw, regionsEn, orgsSw, orgsEn string) string {
	regionWord := "Region"
	if len(sel.Regions) > 1 {
		regionWord = "Regions"
	}

	return fmt.Sprintf(
		"Karibuni kushiriki kwenye mauzo wa zao la %s Mkoa wa %s kupitia Mfumo wa Mauzo "+
			"wa Kieletroniki wa TMX kwa kushirikiana na %s.\n\n"+
			"We welcome you all to participate in %s trading through TMX Online Trading System "+
			"in collaboration with %s in %s %s.",
		strings.ToLower(sel.Crop.SwahiliName()), regionsSw, orgsSw,
		strings.ToLower(sel.Crop.String()), orgsEn, regionsEn, regionWord,
	)
}

func (uc *GenerateAnnouncementUseCase) auctionCaption(body string, crop catalog.Crop, profile platform.Profile) string {
	hashtags := strings.Join(profile.Hashtags, " ") + " " + crop.Hashtag()
	return body + "\n\n" + strings.Join(profile.Mentions, "\n") + "\n\n" + hashtags
}

// resultsCaption builds the fixed price-announcement caption; only the
// mention block differs between platforms.
func (uc *GenerateAnnouncementUseCase) resultsCaption(profile platform.Profile) string {
	return "Taarifa za Bei za Bidhaa leo. Kwa taarifa zaidi tembelea tovuti kupitia " +
		"kiunga kwenye bio.\n\n" +
		"Commodity Price Information Today. For more information, visit our website " +
		"through the links in bio.\n\n" +
		strings.Join(profile.Mentions, "\n") + "\n\n" +
		strings.Join(profile.ResultsHashtags, " ")
}
