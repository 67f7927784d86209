package catalog

import "strings"

// Region is an administrative area used for announcement targeting.
type Region string

// Regions lists the selectable regions in UI order.
var Regions = []Region{
	"SINGIDA", "MBEYA", "MANYARA", "RUVUMA", "MTWARA", "DODOMA", "LINDI",
	"MOROGORO", "PWANI", "ARUSHA", "DAR ES SALAAM", "GEITA", "IRINGA",
	"KAGERA", "KATAVI", "KIGOMA", "KILIMANJARO", "MARA", "MWANZA", "NJOMBE",
	"PEMBA", "RUKWA", "SHINYANGA", "SIMIYU", "SONGWE", "TABORA", "TANGA",
	"ZANZIBAR",
}

var regionCodes = map[Region]string{
	"SINGIDA":       "SING",
	"MBEYA":         "MBEY",
	"MANYARA":       "MANY",
	"RUVUMA":        "RUVU",
	"MTWARA":        "MTWR",
	"DODOMA":        "DDM",
	"LINDI":         "LIND",
	"MOROGORO":      "MORO",
	"PWANI":         "PWAN",
	"ARUSHA":        "ARUS",
	"DAR ES SALAAM": "DSM",
	"GEITA":         "GEIT",
	"IRINGA":        "IRIN",
	"KAGERA":        "KAGE",
	"KATAVI":        "KATA",
	"KIGOMA":        "KIGO",
	"KILIMANJARO":   "KILI",
	"MARA":          "MARA",
	"MWANZA":        "MWAN",
	"NJOMBE":        "NJOM",
	"PEMBA":         "PEMB",
	"RUKWA":         "RUKW",
	"SHINYANGA":     "SHIN",
	"SIMIYU":        "SIMI",
	"SONGWE":        "SONG",
	"TABORA":        "TABO",
	"TANGA":         "TANG",
	"ZANZIBAR":      "ZANZ",
}

func (r Region) String() string {
	return string(r)
}

// Code returns the registered short code. A region without a registered
// code gets the first four characters of its name uppercased; this
// fallback never fails.
func (r Region) Code() string {
	if code, ok := regionCodes[r]; ok {
		return code
	}
	name := strings.ToUpper(string(r))
	if len(name) > 4 {
		name = name[:4]
	}
	return name
}

// NormalizeRegion maps operator input onto the canonical uppercase form.
// Unknown regions are still accepted; they only lose the curated code.
func NormalizeRegion(s string) Region {
	return Region(strings.ToUpper(strings.TrimSpace(s)))
}
