package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-fieldcheck"
	"github.com/goliatone/go-fieldcheck/internal/config"
	"github.com/goliatone/go-fieldcheck/internal/httpapi"
	"github.com/goliatone/go-fieldcheck/internal/logging"
	"github.com/goliatone/go-fieldcheck/internal/prompt"
	"github.com/goliatone/go-fieldcheck/pkg/fieldset"
	"github.com/goliatone/go-fieldcheck/pkg/messages"
	pkgopenapi "github.com/goliatone/go-fieldcheck/pkg/openapi"
	"github.com/goliatone/go-fieldcheck/pkg/orchestrator"
)

const (
	exitOK         = 0
	exitViolations = 1
	exitError      = 2
)

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

type options struct {
	source      string
	operation   string
	values      string
	messages    string
	preset      string
	envFile     string
	logLevel    string
	logFormat   string
	serve       string
	interactive bool
	list        bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fieldcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.source, "source", "", "OpenAPI document path or http(s) URL")
	fs.StringVar(&opts.operation, "operation", "", "operation ID whose request body is validated")
	fs.StringVar(&opts.values, "values", "-", "JSON request body file (- reads stdin)")
	fs.StringVar(&opts.messages, "messages", "", "JSON or YAML message catalog overrides (FIELDCHECK_MESSAGES)")
	fs.StringVar(&opts.preset, "preset", "", "JSON or YAML field spec preset (FIELDCHECK_PRESET)")
	fs.StringVar(&opts.envFile, "env-file", "", "dotenv file read before the environment is parsed")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (FIELDCHECK_LOG_LEVEL)")
	fs.StringVar(&opts.logFormat, "log-format", "", "log format: text or json (FIELDCHECK_LOG_FORMAT)")
	fs.BoolVar(&opts.interactive, "interactive", false, "prompt for the request body instead of reading -values")
	fs.BoolVar(&opts.list, "list", false, "list the operations in -source and exit")
	fs.StringVar(&opts.serve, "serve", "", "serve validation for every operation over HTTP on this address (FIELDCHECK_ADDR)")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if strings.TrimSpace(opts.source) == "" {
		return options{}, errors.New("-source is required")
	}
	return opts, nil
}

func run(ctx context.Context, args []string, std streams, driver prompt.Driver) int {
	opts, err := parseFlags(args, std.err)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(std.err, "fieldcheck: %v\n", err)
		return exitError
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(std.err, "fieldcheck: %v\n", err)
		return exitError
	}

	logger, err := logging.FromStrings(std.err, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintf(std.err, "fieldcheck: %v\n", err)
		return exitError
	}

	code, err := execute(ctx, opts, cfg, std, driver, logger)
	if err != nil {
		logger.Error("fieldcheck failed", slog.String("source", opts.source), slog.Any("error", err))
		return exitError
	}
	return code
}

func loadConfig(opts options) (config.Config, error) {
	var files []string
	if opts.envFile != "" {
		files = append(files, opts.envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return config.Config{}, err
	}
	if opts.messages != "" {
		cfg.Messages = opts.messages
	}
	if opts.preset != "" {
		cfg.Preset = opts.preset
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.LogFormat = opts.logFormat
	}
	if opts.serve != "" {
		cfg.Addr = opts.serve
	}
	return cfg, nil
}

func execute(ctx context.Context, opts options, cfg config.Config, std streams, driver prompt.Driver, logger *slog.Logger) (int, error) {
	source, err := pkgopenapi.ParseSource(opts.source)
	if err != nil {
		return exitError, err
	}
	loader := fieldcheck.NewLoader(pkgopenapi.WithHTTPFallback(cfg.HTTPTimeout))

	if opts.list {
		return exitOK, listOperations(ctx, loader, source, std.out)
	}

	orchestratorOpts, err := orchestratorOptions(cfg, logger)
	if err != nil {
		return exitError, err
	}
	orchestratorOpts = append(orchestratorOpts, fieldcheck.WithLoader(loader))

	if strings.TrimSpace(opts.operation) == "" {
		if cfg.Addr == "" {
			return exitError, errors.New("-operation or -serve is required")
		}
		return exitOK, serve(ctx, source, cfg.Addr, orchestratorOpts, logger)
	}

	set, err := fieldcheck.NewOrchestrator(orchestratorOpts...).FieldSet(ctx, fieldcheck.Request{
		Source:      source,
		OperationID: opts.operation,
	})
	if err != nil {
		return exitError, err
	}
	logger.Debug("operation resolved", slog.String("operation", opts.operation), slog.Int("fields", len(set.Fields())))

	var values map[string]any
	if opts.interactive {
		values, err = prompt.NewCollector(driver, set).Collect(ctx)
		if err != nil {
			return exitError, err
		}
		encoder := json.NewEncoder(std.out)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(values); err != nil {
			return exitError, err
		}
	} else {
		values, err = readValues(opts.values, std.in)
		if err != nil {
			return exitError, err
		}
	}

	report, err := set.Validate(values)
	if err != nil {
		return exitError, err
	}
	if report.Valid() {
		logger.Info("submission valid", slog.String("operation", opts.operation))
		return exitOK, nil
	}

	for _, path := range report.Paths() {
		fmt.Fprintf(std.out, "%s: %s\n", path, report.Message(path))
	}
	logger.Info("submission invalid", slog.String("operation", opts.operation), slog.Int("violations", len(report.Fields)))
	return exitViolations, nil
}

func orchestratorOptions(cfg config.Config, logger *slog.Logger) ([]orchestrator.Option, error) {
	var fieldCfg fieldset.Config
	if cfg.Messages != "" {
		catalog, err := messages.LoadFile(cfg.Messages)
		if err != nil {
			return nil, err
		}
		fieldCfg.Messages = catalog
		logger.Debug("message overrides loaded", slog.String("file", cfg.Messages))
	}

	opts := []orchestrator.Option{fieldcheck.WithConfig(fieldCfg)}
	if cfg.Preset != "" {
		data, err := os.ReadFile(cfg.Preset)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(data)
		if err != nil {
			return nil, err
		}
		opts = append(opts, fieldcheck.WithTransformers(preset))
		logger.Debug("preset loaded", slog.String("file", cfg.Preset))
	}
	return opts, nil
}

func serve(ctx context.Context, source pkgopenapi.Source, addr string, opts []orchestrator.Option, logger *slog.Logger) error {
	endpoints, err := fieldcheck.NewOrchestrator(opts...).Endpoints(ctx, fieldcheck.Request{Source: source})
	if err != nil {
		return err
	}
	return httpapi.New(endpoints, httpapi.WithLogger(logger)).Run(ctx, addr)
}

func readValues(path string, stdin io.Reader) (map[string]any, error) {
	var reader io.Reader = stdin
	if path != "" && path != "-" {
		file, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("read values: %w", err)
		}
		defer file.Close()
		reader = file
	}

	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	var values map[string]any
	if err := decoder.Decode(&values); err != nil {
		return nil, fmt.Errorf("decode values: %w", err)
	}
	if values == nil {
		return nil, errors.New("decode values: body must be a JSON object")
	}
	var extra json.RawMessage
	if err := decoder.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("decode values: unexpected data after the JSON object")
	}
	return values, nil
}

func listOperations(ctx context.Context, loader pkgopenapi.Loader, source pkgopenapi.Source, out io.Writer) error {
	doc, err := loader.Load(ctx, source)
	if err != nil {
		return err
	}
	operations, err := fieldcheck.NewParser().Operations(ctx, doc)
	if err != nil {
		return err
	}
	for _, id := range pkgopenapi.OperationIDs(operations) {
		op := operations[id]
		fmt.Fprintf(out, "%s\t%s %s\t%d fields\n", id, op.Method, op.Path, len(op.Fields))
	}
	return nil
}
