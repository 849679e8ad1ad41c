package services

import (
	"github.com/custodia-labs/orderflow/internal/logger"
)

// run executes one remote operation with uniform logging: the outcome
// is logged and the error, if any, is returned unchanged so callers
// see the original kind and message. Every domain-service remote call
// goes through this wrapper.
func run[T any](label string, fn func() (T, error)) (T, error) {
	result, err := fn()
	if err != nil {
		logger.Error("%s failed: %v", label, err)
		return result, err
	}
	logger.Debug("%s successful", label)
	return result, nil
}
