package usecases

import (
	"fmt"
	"strings"

	"mnada/internal/application/common"
	"mnada/internal/application/poster/dto"
	"mnada/internal/domain/catalog"
	"mnada/internal/domain/locale"
	"mnada/internal/domain/poster"
	"mnada/internal/shared/logger"
)

// ComposePosterCommand is the operator selection for poster generation.
// Languages lists the requested variants in output order; an empty list
// defaults to Swahili.
type ComposePosterCommand struct {
	Regions   []string
	Crop      string
	Date      string // ISO calendar date, YYYY-MM-DD
	Time      string // 24-hour HH:MM
	Languages []string
}

type ComposePosterUseCase struct {
	logos  LogoResolver
	logger logger.Interface
}

func NewComposePosterUseCase(logos LogoResolver, logger logger.Interface) *ComposePosterUseCase {
	return &ComposePosterUseCase{
		logos:  logos,
		logger: logger,
	}
}

// Execute generates one content patch per requested language and returns
// each patch alongside a preview built from the default layout. Callers
// holding an edited layout re-apply the patch themselves so manual
// positioning survives regeneration.
func (uc *ComposePosterUseCase) Execute(cmd ComposePosterCommand) (*dto.PosterSetDTO, error) {
	sel, err := common.ResolveSelection(cmd.Regions, cmd.Crop, cmd.Date, cmd.Time)
	if err != nil {
		uc.logger.Warnw("invalid poster selection", "error", err)
		return nil, err
	}

	langs := resolveLanguages(cmd.Languages)

	result := &dto.PosterSetDTO{}
	for _, lang := range langs {
		patch := uc.contentPatch(sel, lang)
		result.Posters = append(result.Posters, dto.PosterDTO{
			Language: lang.String(),
			Patch:    patch,
			Layout:   patch.ApplyTo(poster.DefaultLayout()),
		})
	}

	uc.logger.Infow("poster content composed",
		"crop", sel.Crop.String(),
		"regions", len(sel.Regions),
		"languages", len(langs),
	)

	return result, nil
}

// contentPatch renders every generated text for one language variant.
func (uc *ComposePosterUseCase) contentPatch(sel common.Selection, lang locale.Lang) poster.ContentPatch {
	locations := locale.FormatList(locale.TitleCaseAll(sel.RegionNames()), lang)
	orgs := locale.FormatList(catalog.OrganizationNames(sel.Crop.Organizations()), lang)
	formattedTime, _ := locale.FormatTime(sel.Time, lang)
	weekday := locale.WeekdayName(sel.Date, lang)
	dateGB := locale.FormatDateGB(sel.Date)
	plural := len(sel.Regions) > 1

	patch := poster.ContentPatch{
		DateCircleMain:   fmt.Sprintf("%02d", sel.Date.Day()),
		DateCircleBottom: fmt.Sprintf("%s\n%d", locale.MonthName(sel.Date, lang), sel.Date.Year()),
		FooterLogos:      uc.footerLogos(sel.Crop),
	}

	if lang == locale.English {
		cropEnglish := sel.Crop.EnglishName()
		regionWord := "Region"
		if plural {
			regionWord = "Regions"
		}
		patch.TopText = "THE UNITED REPUBLIC OF TANZANIA\nMINISTRY OF FINANCE\nTANZANIA MERCANTILE EXCHANGE"
		patch.Heading = strings.ToUpper(cropEnglish)
		patch.Paragraph = fmt.Sprintf(
			"TMX, %s and the Regional Government of **%s** invite all Buyers and Stakeholders "+
				"to participate in the %s auction from the **%s** %s.\n\n"+
				"The auction will be held electronically on **%s**, **%s**, starting at **%s**.\n\n"+
				"All are welcome",
			orgs, locations, strings.ToLower(cropEnglish), locations, regionWord,
			weekday, dateGB, formattedTime,
		)
		patch.DateCircleTop = "Date"
		return patch
	}

	cropSwahili := sel.Crop.SwahiliName()
	government := "Serikali ya Mkoa wa"
	regionPhrase := "Mkoa wa"
	if plural {
		government = "Serikali ya Mikoa ya"
		regionPhrase = "Mikoa ya"
	}
	patch.TopText = "JAMHURI YA MUUNGANO WA TANZANIA\nWIZARA YA FEDHA\nSOKO LA BIDHAA TANZANIA"
	patch.Heading = strings.ToUpper(cropSwahili)
	patch.Paragraph = fmt.Sprintf(
		"TMX, %s na %s **%s** Zinawataarifu Wanunuzi na Wadau wote kushiriki mnada "+
			"wa zao la %s %s **%s**.\n\n"+
			"Mnada utafanyika **%s**, tarehe **%s** Kuanzia **%s** Kwa njia ya kielektroniki.\n\n"+
			"Karibuni wote",
		orgs, government, locations, strings.ToLower(cropSwahili), regionPhrase, locations,
		weekday, dateGB, formattedTime,
	)
	patch.DateCircleTop = "Tarehe"
	return patch
}

// footerLogos builds the footer strip: TMX first, then each sponsoring
// organization's logo, deduplicated by asset path. Organizations without a
// registered logo are omitted.
func (uc *ComposePosterUseCase) footerLogos(crop catalog.Crop) []string {
	orgs := append([]catalog.Organization{catalog.OrgTMX}, crop.Organizations()...)

	seen := make(map[string]struct{}, len(orgs))
	logos := make([]string, 0, len(orgs))
	for _, org := range orgs {
		ref, ok := uc.logos.Logo(org)
		if !ok {
			continue
		}
		if _, dup := seen[ref]; dup {
			continue
		}
		seen[ref] = struct{}{}
		logos = append(logos, ref)
	}
	return logos
}

// resolveLanguages parses the requested language list, dropping duplicates
// after normalization and defaulting to Swahili when empty.
func resolveLanguages(raw []string) []locale.Lang {
	if len(raw) == 0 {
		return []locale.Lang{locale.Swahili}
	}
	seen := make(map[locale.Lang]struct{}, len(raw))
	langs := make([]locale.Lang, 0, len(raw))
	for _, s := range raw {
		lang := locale.ParseLang(s)
		if _, dup := seen[lang]; dup {
			continue
		}
		seen[lang] = struct{}{}
		langs = append(langs, lang)
	}
	return langs
}
