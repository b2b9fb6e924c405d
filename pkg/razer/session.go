package razer

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/seagrayinc/razerctl/internal/hid"
	"github.com/seagrayinc/razerctl/internal/protocol"
)

const (
	// Minimum spacing between commands; the hardware answers BUSY when
	// polled faster than this. May need tuning per model.
	cmdDelay = 7 * time.Millisecond

	retryDelay  = 100 * time.Millisecond
	maxAttempts = 3
)

// Session owns one open device handle and serializes request/response
// exchanges over it. The protocol is strict request-then-response with a
// single frame in flight; concurrent callers are serialized by a mutex.
type Session struct {
	dev hid.Device
	log *slog.Logger

	mu      sync.Mutex
	lastCmd time.Time
}

// NewSession wraps an open device. A nil logger means slog.Default.
func NewSession(dev hid.Device, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{dev: dev, log: log}
}

// Close releases the device handle.
func (s *Session) Close() error { return s.dev.Close() }

// Run packs the report, performs the feature-report exchange and decodes
// the reply. BUSY and TIMEOUT replies are resent up to maxAttempts times
// with the same transaction id; any other non-OK status is returned as a
// *DeviceError. Transport failures surface as an error alongside a
// synthesized OS_ERROR status, and a short read synthesizes TIMEOUT
// rather than handing a partial frame to the decoder. name labels log
// entries and errors.
func (s *Session) Run(ctx context.Context, name string, r *protocol.Report) (protocol.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 1; ; attempt++ {
		req := r.Pack()
		s.log.Debug("request",
			slog.String("command", name),
			slog.String("frame", hex.EncodeToString(req)))

		if err := s.throttle(ctx); err != nil {
			return protocol.Response{}, err
		}
		if err := s.dev.SendFeatureReport(RequestReportID, req); err != nil {
			return protocol.Response{Status: protocol.StatusOSError},
				fmt.Errorf("%s: send report: %w", name, err)
		}

		// Continuation frames are fire-and-forget; the hardware only
		// answers the final packet of a sequence.
		if r.RemainingPackets() > 0 {
			return protocol.Response{Status: protocol.StatusOK}, nil
		}

		if err := s.throttle(ctx); err != nil {
			return protocol.Response{}, err
		}
		buf, err := s.dev.GetFeatureReport(ResponseReportID)
		if err != nil {
			return protocol.Response{Status: protocol.StatusOSError},
				fmt.Errorf("%s: read report: %w", name, err)
		}

		var resp protocol.Response
		if len(buf) != protocol.ReportSize {
			// The device never answered; report a timeout instead of
			// feeding a partial frame to the decoder.
			s.log.Warn("short read",
				slog.String("command", name),
				slog.Int("bytes", len(buf)))
			resp = protocol.Response{Status: protocol.StatusTimeout}
		} else {
			resp, err = protocol.ParseResponse(buf)
			if err != nil {
				return protocol.Response{Status: protocol.StatusOSError},
					fmt.Errorf("%s: %w", name, err)
			}
		}
		s.log.Debug("response",
			slog.String("command", name),
			slog.String("status", resp.Status.String()))

		if resp.Status.OK() {
			return resp, nil
		}
		if !resp.Status.Retryable() || attempt >= maxAttempts {
			return resp, &DeviceError{Command: name, Status: resp.Status}
		}

		s.log.Warn("retrying request",
			slog.String("command", name),
			slog.String("status", resp.Status.String()),
			slog.Int("attempt", attempt))
		select {
		case <-ctx.Done():
			return resp, ctx.Err()
		case <-time.After(retryDelay):
		}
	}
}

// throttle enforces the minimum spacing between commands.
func (s *Session) throttle(ctx context.Context) error {
	if wait := cmdDelay - time.Since(s.lastCmd); wait > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	s.lastCmd = time.Now()
	return nil
}
