package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/scan"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
)

// scannerConfig is the slice of the environment the scanner binary needs. It
// deliberately excludes the server-side sections so a scanner host does not
// have to carry database credentials.
type scannerConfig struct {
	Authority config.AuthorityConfig
	Scan      config.ScanConfig
}

// stdinSource feeds scan payloads from standard input, one per line. It
// stands in for a camera surface so the capture and validation pipeline can
// be driven from a terminal or a piped fixture file.
type stdinSource struct {
	reader io.Reader
}

func (s *stdinSource) Open(_ context.Context) (scan.FrameStream, error) {
	return &stdinStream{scanner: bufio.NewScanner(s.reader)}, nil
}

type stdinStream struct {
	scanner *bufio.Scanner
}

func (s *stdinStream) Next(ctx context.Context) (scan.Frame, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return scan.Frame(s.scanner.Text()), nil
}

func (s *stdinStream) Close() error {
	return nil
}

// lineDecoder treats every non-blank frame as a decoded payload.
type lineDecoder struct{}

func (lineDecoder) Decode(frame scan.Frame) (string, bool) {
	payload := strings.TrimSpace(string(frame))
	return payload, payload != ""
}

func main() {
	var (
		eventIDArg = flag.String("event", "", "event ID to validate against (required)")
		staffIDArg = flag.String("staff", "", "staff ID performing check-ins (required)")
		token      = flag.String("token", os.Getenv("SCANNER_TOKEN"), "bearer token for the authority")
	)
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	eventID, err := uuid.Parse(*eventIDArg)
	if err != nil {
		logger.Error("invalid -event value", "error", err)
		os.Exit(2)
	}
	staffID, err := uuid.Parse(*staffIDArg)
	if err != nil {
		logger.Error("invalid -staff value", "error", err)
		os.Exit(2)
	}

	var cfg scannerConfig
	if err := envconfig.Process("", &cfg); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	loop := scan.NewCaptureLoop(&stdinSource{reader: os.Stdin}, lineDecoder{}, cfg.Scan.FrameInterval, logger)
	client := scan.NewClient(cfg.Authority, *token)

	logger.Info("scanner ready", "event_id", eventID, "authority", cfg.Authority.BaseURL)

	for {
		payload, err := loop.Start(ctx)
		if err != nil {
			switch {
			case errors.Is(err, scan.ErrScanStopped):
				logger.Info("scanner stopped")
				return
			case errors.Is(err, io.EOF):
				logger.Info("input exhausted")
				return
			case errors.Is(err, scan.ErrCameraUnavailable):
				logger.Error("capture source unavailable", "error", err)
				os.Exit(1)
			default:
				logger.Error("capture failed", "error", err)
				os.Exit(1)
			}
		}

		code, err := scan.Normalize(payload)
		if err != nil {
			logger.Warn("unreadable payload, rescan", "error", err)
			continue
		}

		result, err := client.Validate(ctx, eventID, code, staffID)
		if err != nil {
			logger.Error("validation failed", "error", err)
			continue
		}

		printResult(result)
	}
}

func printResult(result *scan.ValidationResult) {
	if result.Valid {
		fmt.Printf("ADMIT  %s\n", summarize(result.Ticket))
		return
	}
	fmt.Printf("DENY   reason=%s  %s\n", result.Reason, summarize(result.Ticket))
}

func summarize(t *scan.TicketSnapshot) string {
	if t == nil {
		return ""
	}
	s := fmt.Sprintf("%s / %s (%s)", t.AttendeeName, t.EventTitle, t.TicketTypeName)
	if t.CheckedInAt != nil {
		s += fmt.Sprintf("  checked in at %s", t.CheckedInAt.Format("15:04:05"))
	}
	return s
}
