package scan

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"ticketgate/internal/pkg/errs"
)

var (
	ErrCameraUnavailable = errors.New("camera unavailable")
	ErrAlreadyScanning   = errors.New("capture loop already running")
	ErrScanStopped       = errors.New("scanning stopped")
)

// Frame is one sample from the capture surface. The decoder decides what the
// bytes mean; the loop never inspects them.
type Frame []byte

// FrameStream is an open camera session. Next blocks until a frame is
// available or the context ends; Close releases the underlying device and
// must tolerate being called more than once.
type FrameStream interface {
	Next(ctx context.Context) (Frame, error)
	Close() error
}

// FrameSource acquires the capture resource. Real camera surfaces live
// outside this core; tests and the CLI provide their own sources.
type FrameSource interface {
	Open(ctx context.Context) (FrameStream, error)
}

// Decoder attempts to read a payload out of a single frame. A miss is not an
// error, just "not yet".
type Decoder interface {
	Decode(frame Frame) (payload string, ok bool)
}

// CaptureLoop samples frames at a fixed cadence and decodes each one until a
// payload is found, the operator stops it, or the context ends. The loop is
// single-goroutine cooperative: at most one decode attempt is in flight per
// session, and it self-stops before the payload is handed to validation.
type CaptureLoop struct {
	source   FrameSource
	decoder  Decoder
	interval time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

func NewCaptureLoop(source FrameSource, decoder Decoder, interval time.Duration, logger *slog.Logger) *CaptureLoop {
	return &CaptureLoop{
		source:   source,
		decoder:  decoder,
		interval: interval,
		logger:   logger,
	}
}

// Start acquires the camera and runs the frame loop in the calling
// goroutine, returning the first decoded payload. The stream is released on
// every exit path: decode success, cancellation, Stop, and frame errors.
// Acquisition failure is reported as ErrCameraUnavailable and is never
// retried here; the operator re-triggers.
func (l *CaptureLoop) Start(ctx context.Context) (string, error) {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return "", ErrAlreadyScanning
	}
	loopCtx, cancel := context.WithCancel(ctx)
	l.running = true
	l.cancel = cancel
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.running = false
		l.cancel = nil
		l.mu.Unlock()
		cancel()
	}()

	stream, err := l.source.Open(loopCtx)
	if err != nil {
		return "", errs.Mark(err, ErrCameraUnavailable)
	}
	defer func() {
		if closeErr := stream.Close(); closeErr != nil {
			l.logger.Warn("failed to close frame stream", "error", closeErr.Error())
		}
	}()

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-loopCtx.Done():
			return "", errs.Mark(loopCtx.Err(), ErrScanStopped)
		case <-ticker.C:
			frame, err := stream.Next(loopCtx)
			if err != nil {
				if loopCtx.Err() != nil {
					return "", errs.Mark(loopCtx.Err(), ErrScanStopped)
				}
				return "", errs.Wrap(err, "frame read failed")
			}

			if payload, ok := l.decoder.Decode(frame); ok {
				return payload, nil
			}
		}
	}
}

// Stop cancels an in-progress loop. Safe to call any number of times, from
// any goroutine, including when the loop is not running.
func (l *CaptureLoop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
	}
}

// Running reports whether a capture session is active.
func (l *CaptureLoop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}
