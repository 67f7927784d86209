package usecases

import "mnada/internal/infrastructure/platform"

// ProfileSource resolves the publication profile (mention tags, hashtag
// blocks) for a target platform.
type ProfileSource interface {
	Profile(name string) platform.Profile
}
