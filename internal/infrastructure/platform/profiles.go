// Package platform holds the per-platform publication profiles: the fixed
// mention-tag blocks and hashtag sets appended to generated captions.
// Platforms share body text and differ only in this data, so the
// differences live here as configuration rather than as code paths.
package platform

// Profile is the publication configuration for one target platform.
type Profile struct {
	Mentions        []string `yaml:"mentions"`
	Hashtags        []string `yaml:"hashtags"`
	ResultsHashtags []string `yaml:"results_hashtags"`
}

const (
	Facebook  = "facebook"
	Instagram = "instagram"
)

// auctionHashtags is the shared hashtag block for auction announcements;
// the composer appends one crop-derived hashtag after it.
var auctionHashtags = []string{
	"#oilseeds", "#buyers", "#trading", "#commodityexchangemarkets", "#commoditiesexchange",
	"#agriculture", "#commoditiestrading", "#seller", "#commoditytraders", "#agriculturalcommodityexhange",
	"#farmersmarket", "#onlinetradingsystem", "#agriculturalcommodityexchange", "#onlinetrading",
	"#commoditytrader", "#traders", "#tradingcommodities", "#OnlineTradingPlatform", "#buyer",
	"#commoditiesmarket", "#commodities", "#buyersmarket", "#TradingCommodities", "#trader",
	"#SellersMarket", "#online", "#agriculturalcommodities", "#farmer",
}

// resultsHashtags is the fixed block for price-announcement posts.
var resultsHashtags = []string{
	"#sesame", "#chickpeas", "#coffee", "#soya", "#kahawa", "#commodityexchangemarkets",
	"#commoditiesexchange", "#agriculture", "#commoditiestrading", "#seller", "#commoditytraders",
	"#agriculturalcommodityexhange", "#farmersmarket", "#onlinetradingsystem",
	"#agriculturalcommodityexchange", "#onlinetrading", "#commoditytrader", "#traders",
	"#tradingcommodities", "#sesameseeds", "#OnlineTradingPlatform",
}

func defaultProfiles() map[string]Profile {
	return map[string]Profile{
		Facebook: {
			Mentions: []string{
				"@Samia Suluhu Hassan",
				"@Ikulu Mawasiliano",
				"@Wizara ya Fedha",
				"@Wizara ya Viwanda na Biashara",
				"@Ofisi ya Rais - Tamisemi",
				"@Capital Market & Security Authority",
				"@Bank of Tanzania",
				"@Tume Ya Maendeleo Ya Ushirika",
				"@Bodi ya Usimamizi wa Stakabadhi za Ghala-WRRB",
			},
			Hashtags:        auctionHashtags,
			ResultsHashtags: resultsHashtags,
		},
		Instagram: {
			Mentions: []string{
				"@samia_suluhu_hassan",
				"@ikulu_mawasiliano",
				"@urtmof",
				"@viwandabiashara",
				"@ortamisemi",
				"@cmsa.go.tz",
				"@bankoftanzania_",
				"@ushirika_tcdc",
				"@wrrbwrs",
			},
			Hashtags:        auctionHashtags,
			ResultsHashtags: resultsHashtags,
		},
	}
}
