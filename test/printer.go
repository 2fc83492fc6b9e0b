package test

import (
	"fmt"
	"sync"

	"github.com/loilo-inc/spinkit/logger"
)

type MockPrinter struct {
	mu     sync.Mutex
	Stdout []string
	Stderr []string
	Logs   []string
}

var _ logger.Printer = (*MockPrinter)(nil)

func NewMockPrinter() *MockPrinter {
	return &MockPrinter{}
}

func (m *MockPrinter) Successf(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stdout = append(m.Stdout, fmt.Sprintf(format, args...))
	m.Logs = append(m.Logs, fmt.Sprintf(format, args...))
}

func (m *MockPrinter) Failuref(format string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Stderr = append(m.Stderr, fmt.Sprintf(format, args...))
	m.Logs = append(m.Logs, fmt.Sprintf(format, args...))
}
