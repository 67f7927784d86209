package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mnada/internal/shared/logger"
)

func TestRegistryDefaults(t *testing.T) {
	r := NewRegistry("", logger.NewLogger())

	facebook := r.Profile(Facebook)
	assert.NotEmpty(t, facebook.Mentions)
	assert.NotEmpty(t, facebook.Hashtags)
	assert.NotEmpty(t, facebook.ResultsHashtags)
	assert.Contains(t, facebook.Mentions, "@Samia Suluhu Hassan")

	instagram := r.Profile(Instagram)
	assert.Contains(t, instagram.Mentions, "@ikulu_mawasiliano")

	// Both platforms share the hashtag blocks.
	assert.Equal(t, facebook.Hashtags, instagram.Hashtags)
	assert.Equal(t, facebook.ResultsHashtags, instagram.ResultsHashtags)
}

func TestRegistryUnknownPlatform(t *testing.T) {
	r := NewRegistry("", logger.NewLogger())

	profile := r.Profile("tiktok")
	assert.Empty(t, profile.Mentions)
	assert.Empty(t, profile.Hashtags)
}

func TestRegistryLoadMissingFileKeepsDefaults(t *testing.T) {
	r := NewRegistry(filepath.Join(t.TempDir(), "absent.yaml"), logger.NewLogger())

	require.NoError(t, r.Load())
	assert.NotEmpty(t, r.Profile(Facebook).Mentions)
}

func TestRegistryLoadOverridesPerField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	content := []byte(`facebook:
  mentions:
    - "@Override One"
    - "@Override Two"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	r := NewRegistry(path, logger.NewLogger())
	require.NoError(t, r.Load())

	facebook := r.Profile(Facebook)
	assert.Equal(t, []string{"@Override One", "@Override Two"}, facebook.Mentions)
	// Untouched fields keep the built-in values.
	assert.NotEmpty(t, facebook.Hashtags)
	assert.NotEmpty(t, facebook.ResultsHashtags)

	// Other platforms are unaffected.
	assert.Contains(t, r.Profile(Instagram).Mentions, "@ikulu_mawasiliano")
}

func TestRegistryLoadNewPlatform(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	content := []byte(`twitter:
  mentions:
    - "@tmx_tz"
  hashtags:
    - "#mnada"
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	r := NewRegistry(path, logger.NewLogger())
	require.NoError(t, r.Load())

	twitter := r.Profile("twitter")
	assert.Equal(t, []string{"@tmx_tz"}, twitter.Mentions)
	assert.Equal(t, []string{"#mnada"}, twitter.Hashtags)
	assert.Contains(t, r.Platforms(), "twitter")
}

func TestRegistryLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "platforms.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	r := NewRegistry(path, logger.NewLogger())
	assert.Error(t, r.Load())
}
