// Command console runs the article analyzer in a terminal. With a TTY it
// opens the interactive UI; otherwise it prints one report and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/okian/pressdetective/internal/adapters/console"
	app "github.com/okian/pressdetective/internal/app"
	"github.com/okian/pressdetective/internal/config"
	"github.com/okian/pressdetective/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, term.IsTerminal(int(os.Stdout.Fd())))
	stop()
	os.Exit(code)
}

// run is main without the process globals. interactive selects the TUI.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, interactive bool) int {
	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(stderr)
	rawURL := fs.String("url", "", "article URL to analyze on start")
	logFile := fs.String("log-file", "", "write logs to this file instead of discarding them")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logOut, closeLog, err := openLog(*logFile, stderr, interactive)
	if err != nil {
		fmt.Fprintf(stderr, "failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return 1
	}
	if err := logger.Init(logger.WithWriter(logOut), logger.WithFormat(logger.Format(cfg.LogFormat))); err != nil {
		fmt.Fprintf(stderr, "failed to initialize logging: %v\n", err)
		return 1
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}

	svc, err := app.NewFromConfig(cfg, logger.Named("service"))
	if err != nil {
		fmt.Fprintf(stderr, "failed to build service: %v\n", err)
		return 1
	}
	if err := svc.Start(ctx); err != nil {
		fmt.Fprintf(stderr, "failed to start service: %v\n", err)
		return 1
	}
	defer svc.Stop()

	if interactive {
		err = console.Run(ctx, svc, *rawURL)
	} else {
		err = console.RunPlain(ctx, stdout, svc, *rawURL)
	}
	if err != nil {
		logger.Get().Error(ctx, "console exited with error", logger.Error(err))
		if interactive {
			fmt.Fprintf(stderr, "%v\n", err)
		}
		return 1
	}
	return 0
}

// openLog picks the log sink. The TUI owns the terminal, so without a file
// its logs are dropped; plain runs log to stderr.
func openLog(path string, stderr io.Writer, interactive bool) (io.Writer, func(), error) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { _ = f.Close() }, nil
	}
	if interactive {
		return io.Discard, func() {}, nil
	}
	return stderr, func() {}, nil
}
