// Command hordectl is a command line client for the AI Horde.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"

	"github.com/lapismyt/aihorde-go"
	"github.com/lapismyt/aihorde-go/internal/config"
	"github.com/lapismyt/aihorde-go/internal/history"
	"github.com/lapismyt/aihorde-go/internal/tracing"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = []command{
	{"whoami", "show the account owning the API key", runWhoAmI},
	{"user", "show a user by id", runUser},
	{"users", "list users", runUsers},
	{"submit", "submit an image generation", runSubmit},
	{"check", "show request progress", runCheck},
	{"status", "show request status and save images", runStatus},
	{"cancel", "cancel a request", runCancel},
	{"wait", "wait for a request to finish", runWait},
	{"models", "list active models", runModels},
	{"heartbeat", "check the horde is up and compatible", runHeartbeat},
	{"history", "list locally recorded requests", runHistory},
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: hordectl <command> [flags] [args]")
	fmt.Fprintln(w, "commands:")
	for _, c := range commands {
		fmt.Fprintf(w, "  %-10s %s\n", c.name, c.summary)
	}
	fmt.Fprintln(w, `run "hordectl <command> -h" for command flags`)
}

// usageError marks errors caused by bad arguments.
type usageError struct{ msg string }

func (e *usageError) Error() string { return e.msg }

func usagef(format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return exitUsage
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		a := &app{stdout: stdout, stderr: stderr}
		err := c.run(ctx, a, args[1:])
		a.close()

		var uerr *usageError
		switch {
		case err == nil:
			return exitOK
		case errors.Is(err, flag.ErrHelp):
			return exitUsage
		case errors.As(err, &uerr):
			fmt.Fprintf(stderr, "hordectl %s: %v\n", c.name, err)
			return exitUsage
		default:
			printError(stderr, c.name, err)
			return exitError
		}
	}

	fmt.Fprintf(stderr, "hordectl: unknown command %q\n", args[0])
	usage(stderr)
	return exitUsage
}

// app carries what every subcommand needs once its flags are parsed.
type app struct {
	stdout, stderr io.Writer

	cfg     *config.Config
	logger  logr.Logger
	client  *aihorde.Client
	history *history.Store

	// shutdownTracing flushes exported spans.
	shutdownTracing func(context.Context) error

	configPath string
	verbosity  int
}

// flags returns a flag set with the shared -config and -v flags.
func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("hordectl "+name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultPath()+")")
	fs.IntVar(&a.verbosity, "v", 0, "log verbosity; 1 logs every request")
	return fs
}

// setup parses flags, configures logging once and builds the client.
func (a *app) setup(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return err
	}

	stdr.SetVerbosity(a.verbosity)
	a.logger = stdr.New(log.New(a.stderr, "", log.LstdFlags)).WithName("hordectl")

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	// Spans go to stderr so stdout stays machine readable.
	tp, shutdown, err := tracing.Setup(context.Background(), cfg.Tracing, "hordectl", aihorde.Version, a.stderr)
	if err != nil {
		return err
	}
	a.shutdownTracing = shutdown

	opts := append(cfg.ClientOptions(), aihorde.WithLogger(a.logger), aihorde.WithTracerProvider(tp))
	a.client = aihorde.NewClient(opts...)
	a.logger.V(1).Info("client configured", "config", a.client.Config().String())
	return nil
}

// openHistory opens the history store, or returns nil when disabled. A
// broken history never fails the command that triggered it.
func (a *app) openHistory() *history.Store {
	if a.history != nil || !a.cfg.HistoryEnabled() {
		return a.history
	}
	store, err := history.Open(a.cfg.HistoryPath)
	if err != nil {
		a.logger.Error(err, "history disabled", "path", a.cfg.HistoryPath)
		return nil
	}
	a.history = store
	return store
}

func (a *app) close() {
	if a.shutdownTracing != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.shutdownTracing(ctx); err != nil {
			a.logger.Error(err, "flushing traces")
		}
		cancel()
	}
	if a.history != nil {
		if err := a.history.Close(); err != nil {
			a.logger.Error(err, "closing history")
		}
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printError(w io.Writer, cmd string, err error) {
	var herr *aihorde.Error
	if !errors.As(err, &herr) {
		fmt.Fprintf(w, "hordectl %s: %v\n", cmd, err)
		return
	}

	switch herr.Kind {
	case aihorde.KindAPI:
		fmt.Fprintf(w, "hordectl %s: horde rejected the request: %s", cmd, herr.Code)
		if herr.Message != "" {
			fmt.Fprintf(w, ": %s", herr.Message)
		}
		fmt.Fprintln(w)
		for field, msg := range herr.Fields {
			fmt.Fprintf(w, "  %s: %s\n", field, msg)
		}
	case aihorde.KindHTTPStatus:
		fmt.Fprintf(w, "hordectl %s: HTTP %d\n%s\n", cmd, herr.Status, herr.Body)
	default:
		fmt.Fprintf(w, "hordectl %s: %v\n", cmd, err)
	}
}
