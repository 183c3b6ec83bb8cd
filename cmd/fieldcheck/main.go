package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/goliatone/go-fieldcheck/internal/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}, prompt.NewSurveyDriver())
	stop()
	os.Exit(code)
}
