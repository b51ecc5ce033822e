package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"acctfilter/internal/exporter"
	"acctfilter/internal/table"
)

// MockResultSaver is a testify mock of ResultSaver
type MockResultSaver struct {
	mock.Mock
}

// Save records the call and returns the configured result
func (m *MockResultSaver) Save(ctx context.Context, base string, format exporter.Format, t *table.Table) (*exporter.Result, error) {
	args := m.Called(ctx, base, format, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exporter.Result), args.Error(1)
}
