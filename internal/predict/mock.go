package predict

import (
	"context"
	"sync"
)

// MockResponse is a canned response for the MockClient.
type MockResponse struct {
	Result *Result
	Err    error
}

// MockClient is a deterministic Client for testing. It returns canned
// responses in FIFO order and records all requests.
type MockClient struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Questionnaire
}

var _ Client = (*MockClient)(nil)

// NewMockClient creates a MockClient with the given canned responses.
func NewMockClient(responses ...MockResponse) *MockClient {
	return &MockClient{responses: responses}
}

// Predict returns the next canned response or ErrServiceUnavailable if
// the queue is empty.
func (m *MockClient) Predict(_ context.Context, q Questionnaire) (*Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, q)

	if len(m.responses) == 0 {
		return nil, &ErrServiceUnavailable{}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return nil, resp.Err
	}
	return resp.Result, nil
}

// AddResponse appends a canned response to the queue.
func (m *MockClient) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Predict calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
