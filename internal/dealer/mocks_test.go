package dealer

import (
	"github.com/stretchr/testify/mock"

	"github.com/hypez33/grow-lab-zen-sub000/internal/warehouse"
)

// MockSeller implements warehouse.Seller for testing
type MockSeller struct {
	mock.Mock
}

func (m *MockSeller) BulkSell(commodity string, grams int, simulate bool) warehouse.Result {
	args := m.Called(commodity, grams, simulate)
	return args.Get(0).(warehouse.Result)
}
