package catalog

// Organization is a sponsoring or regulatory body co-branded on posters
// and captions.
type Organization string

const (
	// OrgTMX is the exchange itself; it always leads the poster footer.
	OrgTMX   Organization = "TMX"
	OrgWRRB  Organization = "WRRB"
	OrgCOPRA Organization = "COPRA"
	OrgTCDC  Organization = "TCDC"
	OrgTCB   Organization = "TCB"
	OrgCBT   Organization = "CBT"
	OrgMC    Organization = "MC"
	OrgRMO   Organization = "RMO"
)

func (o Organization) String() string {
	return string(o)
}

// OrganizationNames renders an organization list as plain strings for the
// list formatters.
func OrganizationNames(orgs []Organization) []string {
	names := make([]string, len(orgs))
	for i, o := range orgs {
		names[i] = string(o)
	}
	return names
}
