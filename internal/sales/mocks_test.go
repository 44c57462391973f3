package sales

import "github.com/stretchr/testify/mock"

// MockTerritory implements territory.Provider for testing
type MockTerritory struct {
	mock.Mock
}

func (m *MockTerritory) Multiplier(commodity string) float64 {
	args := m.Called(commodity)
	return args.Get(0).(float64)
}
