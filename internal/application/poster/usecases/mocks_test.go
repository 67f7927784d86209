package usecases

import "mnada/internal/domain/catalog"

type logoResolverMock struct {
	logos map[catalog.Organization]string
}

func (m *logoResolverMock) Logo(org catalog.Organization) (string, bool) {
	ref, ok := m.logos[org]
	return ref, ok
}

func testLogos() *logoResolverMock {
	return &logoResolverMock{
		logos: map[catalog.Organization]string{
			catalog.OrgTMX:   "/images/logos/tmx-logo.png",
			catalog.OrgWRRB:  "/images/logos/wrrb-logo.png",
			catalog.OrgCOPRA: "/images/logos/copra-logo.png",
			catalog.OrgTCDC:  "/images/logos/tcdc-logo.png",
			catalog.OrgTCB:   "/images/logos/tcb-logo.png",
			catalog.OrgCBT:   "/images/logos/cbt-logo.png",
			catalog.OrgMC:    "/images/logos/mc-logo.png",
		},
	}
}
