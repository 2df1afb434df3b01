// path: cmd/codescript/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	. "github.com/Protocol-Lattice/codescript/src"
	"github.com/Protocol-Lattice/codescript/src/config"
	"github.com/Protocol-Lattice/codescript/src/logging"
	"github.com/Protocol-Lattice/codescript/src/problem"
	"github.com/Protocol-Lattice/codescript/src/telemetry"
)

// Version is set via ldflags.
var Version = "dev"

// options are the command-line overrides. Only flags given on the command
// line replace configured values.
type options struct {
	problemURL    string
	feedbackURL   string
	logFile       string
	trace         bool
	traceEndpoint string
	version       bool

	set map[string]bool
}

func parseFlags(args []string) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet("codescript", flag.ContinueOnError)
	fs.StringVar(&o.problemURL, "problem-url", "", "Random problem endpoint (overrides RANDOM_PROBLEM_URL)")
	fs.StringVar(&o.feedbackURL, "feedback-url", "", "Feedback endpoint (overrides GENERATE_FEEDBACK_URL)")
	fs.StringVar(&o.logFile, "log-file", "", "Log file, empty disables logging (overrides CODESCRIPT_LOG_FILE)")
	fs.BoolVar(&o.trace, "trace", false, "Export OpenTelemetry traces")
	fs.StringVar(&o.traceEndpoint, "trace-endpoint", "", "OTLP/HTTP collector endpoint")
	fs.BoolVar(&o.version, "version", false, "Show version")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

func (o *options) apply(cfg *config.Config) {
	if o.set["problem-url"] {
		cfg.Endpoints.RandomProblemURL = o.problemURL
	}
	if o.set["feedback-url"] {
		cfg.Endpoints.GenerateFeedbackURL = o.feedbackURL
	}
	if o.set["log-file"] {
		cfg.Log.File = o.logFile
	}
	if o.set["trace"] {
		cfg.Trace.Enabled = o.trace
	}
	if o.set["trace-endpoint"] {
		cfg.Trace.Endpoint = o.traceEndpoint
	}
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}
	if opts.version {
		fmt.Println("codescript", Version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("❌ Failed to load configuration:", err)
		os.Exit(1)
	}
	opts.apply(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Println("❌ Invalid configuration:", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger, closeLog, err := logging.Open(cfg.Log.File)
	if err != nil {
		fmt.Println("⚠️ Logging disabled:", err)
		logger, closeLog = logging.Nop{}, func() error { return nil }
	}
	defer closeLog()

	tcfg := telemetry.DefaultConfig()
	tcfg.Enabled = cfg.Trace.Enabled
	tcfg.Endpoint = cfg.Trace.Endpoint
	tcfg.Version = Version
	if err := telemetry.Init(ctx, tcfg); err != nil {
		fmt.Println("⚠️ Tracing disabled:", err)
		_ = telemetry.Init(ctx, telemetry.DefaultConfig())
	}
	defer func() {
		if err := telemetry.Shutdown(context.Background()); err != nil {
			logger.Error(context.Background(), "telemetry shutdown", "error", err)
		}
	}()

	fmt.Println("⚡ Starting CodeScript workspace...")

	client := problem.NewClient(cfg.Endpoints.RandomProblemURL, cfg.Endpoints.GenerateFeedbackURL, cfg.HTTP.RequestTimeout)
	m := NewModel(ctx, client, logger)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, runErr := p.Run()
	m.Close()
	cancel()

	if !m.Drain(cfg.HTTP.ShutdownGrace) {
		logger.Error(context.Background(), "submission still in flight at exit", "grace", cfg.HTTP.ShutdownGrace.String())
	}

	if runErr != nil {
		fmt.Println("Error:", runErr)
		os.Exit(1)
	}
}
