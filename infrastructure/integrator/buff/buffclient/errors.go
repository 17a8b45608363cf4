package buffclient

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrRequestFailed indica que a API respondeu com status fora da faixa 2xx
	ErrRequestFailed = errors.New("request failed")
	// ErrNetworkFailure indica que a requisição não chegou a ser concluída
	ErrNetworkFailure = errors.New("network failure")
)

// RequestError carrega o texto cru devolvido pela API
type RequestError struct {
	Operation  string
	StatusCode int
	Status     string
	Body       string
}

func (e *RequestError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("failed to %s (%s)", e.Operation, e.Status)
	}
	return fmt.Sprintf("failed to %s (%s): %s", e.Operation, e.Status, e.Body)
}

func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}

type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *NetworkError) Is(target error) bool {
	return target == ErrNetworkFailure
}

// Unwrap preserva context.Canceled e context.DeadlineExceeded
func (e *NetworkError) Unwrap() error {
	return e.Err
}
