package parser_test

import (
	"context"

	"github.com/goliatone/go-fieldcheck/pkg/testsupport"
)

func cancelledContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(testsupport.Context())
	cancel()
	return ctx, cancel
}
