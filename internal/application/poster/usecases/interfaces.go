package usecases

import "mnada/internal/domain/catalog"

// LogoResolver resolves an organization to a logo asset reference. The
// second return reports whether a logo is registered; organizations
// without one are omitted from poster footers.
type LogoResolver interface {
	Logo(org catalog.Organization) (string, bool)
}
