package catalog

// Union is a cooperative union optionally attached to a price-board row.
type Union string

// Unions lists the cooperative unions selectable on the price board.
var Unions = []Union{
	"TANECU",
	"DODOMA CC",
	"KONDOA",
	"KICU",
	"MTWARA COOP",
	"LINDI UNION",
	"MOROGORO FARMERS",
	"PWANI COOP",
	"ARUSHA UNION",
	"MBEYA FARMERS",
	"SINGIDA COOP",
}

func (u Union) String() string {
	return string(u)
}
