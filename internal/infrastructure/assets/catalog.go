// Package assets resolves organization logos and poster backgrounds to
// asset references for the external renderer. The core never embeds image
// bytes; operator uploads pass through as opaque references.
package assets

import (
	"path"

	"mnada/internal/domain/catalog"
)

var defaultLogos = map[catalog.Organization]string{
	catalog.OrgTMX:   "logos/tmx-logo.png",
	catalog.OrgWRRB:  "logos/wrrb-logo.png",
	catalog.OrgCOPRA: "logos/copra-logo.png",
	catalog.OrgTCDC:  "logos/tcdc-logo.png",
	catalog.OrgTCB:   "logos/tcb-logo.png",
	catalog.OrgCBT:   "logos/cbt-logo.png",
	catalog.OrgMC:    "logos/mc-logo.png",
}

// Catalog maps organizations to logo asset paths under a base path.
type Catalog struct {
	basePath string
	logos    map[catalog.Organization]string
}

// NewCatalog creates a catalog with the registered logo set. Organizations
// without a registered logo (for example RMO) are simply absent; callers
// must treat that as omit-from-output, never as an error.
func NewCatalog(basePath string) *Catalog {
	return &Catalog{
		basePath: basePath,
		logos:    defaultLogos,
	}
}

// Logo returns the asset reference for an organization logo, or false when
// none is registered.
func (c *Catalog) Logo(org catalog.Organization) (string, bool) {
	rel, ok := c.logos[org]
	if !ok {
		return "", false
	}
	return path.Join(c.basePath, rel), true
}
