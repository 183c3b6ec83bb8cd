package validator_test

import (
	"testing"

	"github.com/goliatone/go-fieldcheck/pkg/messages"
	"github.com/goliatone/go-fieldcheck/pkg/validator"
)

var defaults = messages.Defaults()

// outcome is what a validator call reported: the violated key and its
// message, or the zero value when the value passed.
type outcome struct {
	Key     messages.Key
	Message string
}

func valid() outcome {
	return outcome{}
}

func failed(key messages.Key) outcome {
	return outcome{Key: key, Message: defaults.Format(key, 0)}
}

func failedWith(key messages.Key, bound float64) outcome {
	return outcome{Key: key, Message: defaults.Format(key, bound)}
}

func outcomeOf(t *testing.T, err error) outcome {
	t.Helper()

	if err == nil {
		return valid()
	}
	violation, ok := validator.AsViolation(err)
	if !ok {
		t.Fatalf("expected a violation, got %v", err)
	}
	return outcome{Key: violation.Key, Message: violation.Message}
}
