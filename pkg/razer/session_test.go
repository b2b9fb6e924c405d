package razer

import (
	"context"
	"errors"
	"testing"

	"github.com/seagrayinc/razerctl/internal/hid"
	"github.com/seagrayinc/razerctl/internal/protocol"
)

// response builds a valid reply frame for a command.
func response(status protocol.Status, c Command, data []byte) []byte {
	buf := make([]byte, protocol.ReportSize)
	buf[0] = byte(status)
	buf[1] = protocol.DefaultTransactionID
	buf[5] = byte(len(data))
	buf[6] = c.Class
	buf[7] = c.ID
	copy(buf[8:], data)
	buf[88] = protocol.Checksum(buf[1:88])
	return buf
}

func TestSessionRun_OK(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.QueueResponse(response(protocol.StatusOK, GetFirmware, []byte{2, 1}))

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), GetFirmware.Name, GetFirmware.NewReport())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !resp.Status.OK() {
		t.Fatalf("status = %v", resp.Status)
	}
	if len(resp.Data) != 2 || resp.Data[0] != 2 || resp.Data[1] != 1 {
		t.Fatalf("data = %v", resp.Data)
	}

	sent := dev.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d frames, want 1", len(sent))
	}
	if len(sent[0]) != protocol.ReportSize {
		t.Fatalf("request length = %d", len(sent[0]))
	}
	if sent[0][6] != GetFirmware.Class || sent[0][7] != GetFirmware.ID {
		t.Fatalf("request command bytes = %02x %02x", sent[0][6], sent[0][7])
	}
}

func TestSessionRun_RetriesBusyThenSucceeds(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.QueueResponse(response(protocol.StatusBusy, GetSerial, nil))
	dev.QueueResponse(response(protocol.StatusOK, GetSerial, []byte("XX01")))

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), GetSerial.Name, GetSerial.NewReport())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if string(resp.Data) != "XX01" {
		t.Fatalf("data = %q", resp.Data)
	}
	if got := len(dev.Sent()); got != 2 {
		t.Fatalf("sent %d frames, want 2", got)
	}
}

func TestSessionRun_TerminalStatus(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.QueueResponse(response(protocol.StatusUnsupported, GetSerial, nil))

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), GetSerial.Name, GetSerial.NewReport())
	if err == nil {
		t.Fatal("expected error for UNSUPPORTED")
	}
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("error = %T, want *DeviceError", err)
	}
	if devErr.Status != protocol.StatusUnsupported || resp.Status != protocol.StatusUnsupported {
		t.Fatalf("status = %v / %v", devErr.Status, resp.Status)
	}
	if got := len(dev.Sent()); got != 1 {
		t.Fatalf("terminal status was retried: %d sends", got)
	}
}

func TestSessionRun_ExhaustsRetries(t *testing.T) {
	dev := hid.NewMockDevice()
	for i := 0; i < maxAttempts; i++ {
		dev.QueueResponse(response(protocol.StatusBusy, GetSerial, nil))
	}

	s := NewSession(dev, nil)
	_, err := s.Run(context.Background(), GetSerial.Name, GetSerial.NewReport())
	var devErr *DeviceError
	if !errors.As(err, &devErr) {
		t.Fatalf("error = %v, want *DeviceError", err)
	}
	if devErr.Status != protocol.StatusBusy {
		t.Fatalf("status = %v, want BUSY", devErr.Status)
	}
	if got := len(dev.Sent()); got != maxAttempts {
		t.Fatalf("sent %d frames, want %d", got, maxAttempts)
	}
}

func TestSessionRun_ShortReadIsTimeout(t *testing.T) {
	dev := hid.NewMockDevice()
	for i := 0; i < maxAttempts; i++ {
		dev.QueueResponse(make([]byte, 10))
	}

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), GetSerial.Name, GetSerial.NewReport())
	if err == nil {
		t.Fatal("expected error")
	}
	if resp.Status != protocol.StatusTimeout {
		t.Fatalf("status = %v, want TIMEOUT", resp.Status)
	}
}

func TestSessionRun_TransportError(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.SendErr = errors.New("device unplugged")

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), GetSerial.Name, GetSerial.NewReport())
	if err == nil {
		t.Fatal("expected error")
	}
	if resp.Status != protocol.StatusOSError {
		t.Fatalf("status = %v, want OS_ERROR", resp.Status)
	}
}

func TestSessionRun_ContinuationFrameSkipsRead(t *testing.T) {
	dev := hid.NewMockDevice()

	r := SetFrameDataMatrix.NewReport()
	r.SetRemainingPackets(2)

	s := NewSession(dev, nil)
	resp, err := s.Run(context.Background(), SetFrameDataMatrix.Name, r)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	// No response was queued: a continuation frame must not read at all.
	if !resp.Status.OK() {
		t.Fatalf("status = %v", resp.Status)
	}
	if got := len(dev.Sent()); got != 1 {
		t.Fatalf("sent %d frames, want 1", got)
	}
}

func TestSessionRun_ContextCancelled(t *testing.T) {
	dev := hid.NewMockDevice()
	dev.QueueResponse(response(protocol.StatusBusy, GetSerial, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewSession(dev, nil)
	if _, err := s.Run(ctx, GetSerial.Name, GetSerial.NewReport()); !errors.Is(err, context.Canceled) {
		t.Fatalf("error = %v, want context.Canceled", err)
	}
}
