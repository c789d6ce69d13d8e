package mocks

import (
	"github.com/brettbedarf/fsnode/filesystem"
	"github.com/stretchr/testify/mock"
)

// MockVolumeSource implements filesystem.VolumeSource for testing across packages
type MockVolumeSource struct {
	mock.Mock
}

func (m *MockVolumeSource) Volumes() ([]filesystem.Volume, error) {
	args := m.Called()

	// Handle function return types (for media inserted/removed between calls)
	if fn, ok := args.Get(0).(func() []filesystem.Volume); ok {
		return fn(), args.Error(1)
	}

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]filesystem.Volume), args.Error(1)
}
