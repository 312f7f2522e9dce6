package predict

import (
	"context"
	"encoding/json"
	"fmt"
)

// Client is the external prediction service boundary. Predict sends one
// questionnaire and returns the service's classification, or an error
// when the call or its response is unusable.
type Client interface {
	Predict(ctx context.Context, q Questionnaire) (*Result, error)
}

// ErrServiceUnavailable indicates the prediction service is down or
// unreachable.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("prediction service unavailable: %v", e.Err)
	}
	return "prediction service unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResponse indicates the service returned content that does
// not conform to the response schema, or that violates the
// classification/probability invariant.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid prediction response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }
