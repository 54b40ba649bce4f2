package mocks

import (
	"github.com/phrazzld/clients-api/internal/service"
	"github.com/stretchr/testify/mock"
)

// TestifyMockOperationRecorder is a mock of service.OperationRecorder for use with testify/mock
type TestifyMockOperationRecorder struct {
	mock.Mock
}

// Ensure TestifyMockOperationRecorder implements service.OperationRecorder
var _ service.OperationRecorder = (*TestifyMockOperationRecorder)(nil)

// RecordOperation is a mock implementation of service.OperationRecorder.RecordOperation
func (m *TestifyMockOperationRecorder) RecordOperation(operation string, err error) {
	m.Called(operation, err)
}
