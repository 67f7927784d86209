// Package catalog holds the static lookup tables for tradable crops,
// auction regions, and sponsoring organizations. The tables are process-wide
// constants; every crop in the active enumeration must have an entry in each
// table, which the package tests assert exhaustively.
package catalog

import "strings"

// Crop is a tradable commodity category.
type Crop string

const (
	CropCoffee    Crop = "COFFEE"
	CropSesame    Crop = "SESAME"
	CropSoya      Crop = "SOYA"
	CropBean      Crop = "BEAN"
	CropCocoa     Crop = "COCOA"
	CropChickPea  Crop = "CHICK PEA"
	CropPigeonPea Crop = "PIGEON PEA"
	CropCashew    Crop = "CASHEW"
	CropCotton    Crop = "COTTON"
	CropSunflower Crop = "SUNFLOWER"
	CropGroundnut Crop = "GROUNDNUT"
	CropGemstone  Crop = "GEMSTONE"
	CropGreenGram Crop = "GREEN GRAM"
)

// Crops lists every crop in selection order.
var Crops = []Crop{
	CropCoffee,
	CropSesame,
	CropSoya,
	CropBean,
	CropCocoa,
	CropChickPea,
	CropPigeonPea,
	CropCashew,
	CropCotton,
	CropSunflower,
	CropGroundnut,
	CropGemstone,
	CropGreenGram,
}

var cropSwahiliNames = map[Crop]string{
	CropCoffee:    "KAHAWA",
	CropSesame:    "UFUTA",
	CropSoya:      "SOYA",
	CropBean:      "MAHARAGE",
	CropCocoa:     "KAKAO",
	CropChickPea:  "DENGU",
	CropPigeonPea: "MBAAZI",
	CropCashew:    "KOROSHO",
	CropCotton:    "PAMBA",
	CropSunflower: "ALIZETI",
	CropGroundnut: "KARANGA",
	CropGemstone:  "MADINI",
	CropGreenGram: "CHOROKO",
}

var cropEnglishNames = map[Crop]string{
	CropCoffee:    "Coffee",
	CropSesame:    "Sesame",
	CropSoya:      "Soya",
	CropBean:      "Beans",
	CropCocoa:     "Cocoa",
	CropChickPea:  "Chick Peas",
	CropPigeonPea: "Pigeon Peas",
	CropCashew:    "Cashews",
	CropCotton:    "Cotton",
	CropSunflower: "Sunflower",
	CropGroundnut: "Groundnuts",
	CropGemstone:  "Gemstones",
	CropGreenGram: "Green Grams",
}

var cropOrganizations = map[Crop][]Organization{
	CropCoffee:    {OrgTCB, OrgTCDC, OrgWRRB},
	CropCashew:    {OrgCBT, OrgTCDC, OrgWRRB},
	CropGemstone:  {OrgMC, OrgRMO},
	CropSesame:    {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropSoya:      {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropBean:      {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropCocoa:     {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropChickPea:  {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropPigeonPea: {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropCotton:    {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropSunflower: {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropGroundnut: {OrgCOPRA, OrgTCDC, OrgWRRB},
	CropGreenGram: {OrgCOPRA, OrgTCDC, OrgWRRB},
}

var cropCodes = map[Crop]string{
	CropCoffee:    "CF",
	CropSesame:    "SS",
	CropSoya:      "SY",
	CropBean:      "BN",
	CropCocoa:     "CC",
	CropChickPea:  "CP",
	CropPigeonPea: "PP",
	CropCashew:    "CW",
	CropCotton:    "CT",
	CropSunflower: "SF",
	CropGroundnut: "GN",
	CropGemstone:  "GM",
	CropGreenGram: "GG",
}

func (c Crop) String() string {
	return string(c)
}

func (c Crop) IsValid() bool {
	_, ok := cropSwahiliNames[c]
	return ok
}

// SwahiliName returns the canonical Swahili crop name (uppercase).
func (c Crop) SwahiliName() string {
	return cropSwahiliNames[c]
}

// EnglishName returns the English display name.
func (c Crop) EnglishName() string {
	return cropEnglishNames[c]
}

// Organizations returns the crop's sponsoring organizations in footer order.
func (c Crop) Organizations() []Organization {
	orgs := cropOrganizations[c]
	out := make([]Organization, len(orgs))
	copy(out, orgs)
	return out
}

// Code returns the short trading code, falling back to the first two
// letters of the crop name.
func (c Crop) Code() string {
	if code, ok := cropCodes[c]; ok {
		return code
	}
	name := string(c)
	if len(name) > 2 {
		name = name[:2]
	}
	return strings.ToUpper(name)
}

// Hashtag returns the crop-derived social hashtag: lowercased with
// internal spaces removed, e.g. "#chickpea".
func (c Crop) Hashtag() string {
	return "#" + strings.ReplaceAll(strings.ToLower(string(c)), " ", "")
}

// ParseCrop validates an operator-supplied crop name.
func ParseCrop(s string) (Crop, bool) {
	c := Crop(strings.ToUpper(strings.TrimSpace(s)))
	return c, c.IsValid()
}
