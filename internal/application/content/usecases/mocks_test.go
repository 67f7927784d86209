package usecases

import "mnada/internal/infrastructure/platform"

type profileSourceMock struct {
	profileFunc func(name string) platform.Profile
}

func (m *profileSourceMock) Profile(name string) platform.Profile {
	if m.profileFunc != nil {
		return m.profileFunc(name)
	}
	return platform.Profile{}
}
