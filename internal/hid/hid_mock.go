package hid

import (
	"errors"
	"sync"
)

// MockDevice is an in-memory Device for tests. Responses are scripted
// with QueueResponse and handed out in order by GetFeatureReport; every
// frame written with SendFeatureReport is recorded.
type MockDevice struct {
	mu        sync.Mutex
	sent      [][]byte
	responses [][]byte

	// SendErr and ReadErr, when set, fail the next corresponding call.
	SendErr error
	ReadErr error

	closed bool
}

func NewMockDevice() *MockDevice {
	return &MockDevice{}
}

// QueueResponse scripts the next frame returned by GetFeatureReport.
func (m *MockDevice) QueueResponse(buf []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, append([]byte(nil), buf...))
}

// Sent returns copies of every frame written so far.
func (m *MockDevice) Sent() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([][]byte, len(m.sent))
	for i, b := range m.sent {
		out[i] = append([]byte(nil), b...)
	}
	return out
}

func (m *MockDevice) SendFeatureReport(_ byte, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SendErr != nil {
		err := m.SendErr
		m.SendErr = nil
		return err
	}
	m.sent = append(m.sent, append([]byte(nil), data...))
	return nil
}

func (m *MockDevice) GetFeatureReport(_ byte) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReadErr != nil {
		err := m.ReadErr
		m.ReadErr = nil
		return nil, err
	}
	if len(m.responses) == 0 {
		return nil, errors.New("mock: no response queued")
	}
	resp := m.responses[0]
	m.responses = m.responses[1:]
	return resp, nil
}

func (m *MockDevice) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called.
func (m *MockDevice) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}
