package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnada/internal/domain/catalog"
	"mnada/internal/domain/poster"
	"mnada/internal/shared/errors"
	"mnada/internal/shared/logger"
)

func newComposeUC() *ComposePosterUseCase {
	return NewComposePosterUseCase(testLogos(), logger.NewLogger())
}

func TestComposePosterSwahili(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA", "DODOMA"},
		Crop:      "CHICK PEA",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw"},
	})
	require.NoError(t, err)
	require.Len(t, result.Posters, 1)

	variant := result.Posters[0]
	assert.Equal(t, "sw", variant.Language)

	patch := variant.Patch
	assert.Equal(t, "JAMHURI YA MUUNGANO WA TANZANIA\nWIZARA YA FEDHA\nSOKO LA BIDHAA TANZANIA", patch.TopText)
	assert.Equal(t, "DENGU", patch.Heading)
	assert.Equal(t,
		"TMX, COPRA, TCDC, na WRRB na Serikali ya Mikoa ya **Singida na Dodoma** "+
			"Zinawataarifu Wanunuzi na Wadau wote kushiriki mnada wa zao la dengu "+
			"Mikoa ya **Singida na Dodoma**.\n\n"+
			"Mnada utafanyika **Jumatano**, tarehe **09/07/2025** Kuanzia "+
			"**Saa Nne na nusu Asubuhi** Kwa njia ya kielektroniki.\n\n"+
			"Karibuni wote",
		patch.Paragraph)
	assert.Equal(t, "Tarehe", patch.DateCircleTop)
	assert.Equal(t, "09", patch.DateCircleMain)
	assert.Equal(t, "Julai\n2025", patch.DateCircleBottom)
}

func TestComposePosterEnglish(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA", "DODOMA"},
		Crop:      "CHICK PEA",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"en"},
	})
	require.NoError(t, err)
	require.Len(t, result.Posters, 1)

	patch := result.Posters[0].Patch
	assert.Equal(t, "THE UNITED REPUBLIC OF TANZANIA\nMINISTRY OF FINANCE\nTANZANIA MERCANTILE EXCHANGE", patch.TopText)
	assert.Equal(t, "CHICK PEAS", patch.Heading)
	assert.Equal(t,
		"TMX, COPRA, TCDC, and WRRB and the Regional Government of **Singida and Dodoma** "+
			"invite all Buyers and Stakeholders to participate in the chick peas auction "+
			"from the **Singida and Dodoma** Regions.\n\n"+
			"The auction will be held electronically on **Wednesday**, **09/07/2025**, "+
			"starting at **10:30 AM**.\n\n"+
			"All are welcome",
		patch.Paragraph)
	assert.Equal(t, "Date", patch.DateCircleTop)
	assert.Equal(t, "July\n2025", patch.DateCircleBottom)
}

func TestComposePosterSingularRegionAgreement(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA"},
		Crop:      "COFFEE",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw", "en"},
	})
	require.NoError(t, err)
	require.Len(t, result.Posters, 2)

	sw := result.Posters[0].Patch.Paragraph
	assert.Contains(t, sw, "Serikali ya Mkoa wa **Singida**")
	assert.Contains(t, sw, "zao la kahawa Mkoa wa **Singida**")
	assert.NotContains(t, sw, "Mikoa ya")

	en := result.Posters[1].Patch.Paragraph
	assert.Contains(t, en, "from the **Singida** Region.")
	assert.NotContains(t, en, "Regions.")
}

func TestComposePosterDefaultsToSwahili(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions: []string{"SINGIDA"},
		Crop:    "COFFEE",
		Date:    "2025-07-09",
		Time:    "10:30",
	})
	require.NoError(t, err)
	require.Len(t, result.Posters, 1)
	assert.Equal(t, "sw", result.Posters[0].Language)
}

func TestComposePosterFooterLogos(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA"},
		Crop:      "COFFEE",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/images/logos/tmx-logo.png",
		"/images/logos/tcb-logo.png",
		"/images/logos/tcdc-logo.png",
		"/images/logos/wrrb-logo.png",
	}, result.Posters[0].Patch.FooterLogos)
}

func TestComposePosterOmitsUnregisteredLogos(t *testing.T) {
	// GEMSTONE is sponsored by MC and RMO; RMO carries no logo.
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"ARUSHA"},
		Crop:      "GEMSTONE",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/images/logos/tmx-logo.png",
		"/images/logos/mc-logo.png",
	}, result.Posters[0].Patch.FooterLogos)
}

func TestComposePosterDeduplicatesFooterLogos(t *testing.T) {
	uc := NewComposePosterUseCase(&logoResolverMock{
		logos: map[catalog.Organization]string{
			catalog.OrgTMX:  "/images/logos/tmx-logo.png",
			catalog.OrgTCB:  "/images/logos/tmx-logo.png",
			catalog.OrgTCDC: "/images/logos/tcdc-logo.png",
			catalog.OrgWRRB: "/images/logos/wrrb-logo.png",
		},
	}, logger.NewLogger())

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA"},
		Crop:      "COFFEE",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"/images/logos/tmx-logo.png",
		"/images/logos/tcdc-logo.png",
		"/images/logos/wrrb-logo.png",
	}, result.Posters[0].Patch.FooterLogos)
}

func TestComposePosterPreviewKeepsDefaultPositions(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Regions:   []string{"SINGIDA"},
		Crop:      "COFFEE",
		Date:      "2025-07-09",
		Time:      "10:30",
		Languages: []string{"sw"},
	})
	require.NoError(t, err)

	defaults := poster.DefaultLayout()
	layout := result.Posters[0].Layout
	assert.Equal(t, defaults.Heading.Position, layout.Heading.Position)
	assert.Equal(t, defaults.Paragraph.Position, layout.Paragraph.Position)
	assert.Equal(t, defaults.HeaderFooterColor, layout.HeaderFooterColor)
	assert.Equal(t, "KAHAWA", layout.Heading.Content)
}

func TestComposePosterValidation(t *testing.T) {
	uc := newComposeUC()

	result, err := uc.Execute(ComposePosterCommand{
		Crop: "COFFEE",
		Date: "2025-07-09",
		Time: "10:30",
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Nil(t, result)
}
