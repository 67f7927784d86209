package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnada/internal/domain/catalog"
)

func TestCatalogLogo(t *testing.T) {
	c := NewCatalog("/images")

	ref, ok := c.Logo(catalog.OrgTMX)
	require.True(t, ok)
	assert.Equal(t, "/images/logos/tmx-logo.png", ref)

	ref, ok = c.Logo(catalog.OrgWRRB)
	require.True(t, ok)
	assert.Equal(t, "/images/logos/wrrb-logo.png", ref)
}

func TestCatalogUnregisteredOrganization(t *testing.T) {
	c := NewCatalog("/images")

	// RMO deliberately has no logo; callers omit it from output.
	ref, ok := c.Logo(catalog.OrgRMO)
	assert.False(t, ok)
	assert.Empty(t, ref)
}

func TestCatalogBasePathJoining(t *testing.T) {
	c := NewCatalog("/assets/static/")

	ref, ok := c.Logo(catalog.OrgCOPRA)
	require.True(t, ok)
	assert.Equal(t, "/assets/static/logos/copra-logo.png", ref)
}
