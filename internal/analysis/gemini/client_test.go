package gemini

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"google.golang.org/genai"

	"github.com/sgunwal/capreports/internal/analysis"
)

func testClient(attempts int, getFile func(ctx context.Context, name string) (*genai.File, error)) *Client {
	cfg := Config{PollInterval: time.Millisecond, MaxPollAttempts: attempts}
	cfg.applyDefaults()
	return &Client{
		cfg:     cfg,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		getFile: getFile,
	}
}

func TestAwaitReady_BecomesActive(t *testing.T) {
	polls := 0
	c := testClient(10, func(_ context.Context, name string) (*genai.File, error) {
		polls++
		state := genai.FileStateProcessing
		if polls >= 3 {
			state = genai.FileStateActive
		}
		return &genai.File{Name: name, URI: "uri://" + name, MIMEType: "application/pdf", State: state}, nil
	})

	h := &analysis.Handle{ID: "files/abc", State: analysis.StatePending}
	ready, err := c.AwaitReady(context.Background(), h)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ready.State != analysis.StateActive {
		t.Errorf("state = %s, want ACTIVE", ready.State)
	}
	if polls != 3 {
		t.Errorf("polls = %d, want 3", polls)
	}
}

func TestAwaitReady_AlreadyActive(t *testing.T) {
	c := testClient(10, func(_ context.Context, _ string) (*genai.File, error) {
		t.Fatal("no poll expected for an ACTIVE handle")
		return nil, nil
	})

	h := &analysis.Handle{ID: "files/abc", State: analysis.StateActive}
	if _, err := c.AwaitReady(context.Background(), h); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAwaitReady_RemoteFailure(t *testing.T) {
	c := testClient(10, func(_ context.Context, name string) (*genai.File, error) {
		return &genai.File{Name: name, State: genai.FileStateFailed}, nil
	})

	h := &analysis.Handle{ID: "files/abc", State: analysis.StatePending}
	_, err := c.AwaitReady(context.Background(), h)
	if !errors.Is(err, analysis.ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", err)
	}
}

func TestAwaitReady_Timeout(t *testing.T) {
	polls := 0
	c := testClient(4, func(_ context.Context, name string) (*genai.File, error) {
		polls++
		return &genai.File{Name: name, State: genai.FileStateProcessing}, nil
	})

	h := &analysis.Handle{ID: "files/abc", State: analysis.StatePending}
	_, err := c.AwaitReady(context.Background(), h)
	if !errors.Is(err, analysis.ErrPollTimeout) {
		t.Fatalf("err = %v, want ErrPollTimeout", err)
	}
	if polls != 4 {
		t.Errorf("polls = %d, want the full attempt budget", polls)
	}
}

func TestAwaitReady_ContextCanceled(t *testing.T) {
	c := testClient(10, func(_ context.Context, name string) (*genai.File, error) {
		return &genai.File{Name: name, State: genai.FileStateProcessing}, nil
	})
	c.cfg.PollInterval = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &analysis.Handle{ID: "files/abc", State: analysis.StatePending}
	_, err := c.AwaitReady(ctx, h)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestMapState(t *testing.T) {
	tests := []struct {
		in   genai.FileState
		want analysis.State
	}{
		{genai.FileStateActive, analysis.StateActive},
		{genai.FileStateFailed, analysis.StateFailed},
		{genai.FileStateProcessing, analysis.StatePending},
		{genai.FileStateUnspecified, analysis.StatePending},
	}
	for _, tt := range tests {
		if got := mapState(tt.in); got != tt.want {
			t.Errorf("mapState(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMimeForPath(t *testing.T) {
	if got := mimeForPath("report.pdf"); got != "application/pdf" {
		t.Errorf("pdf mime = %q", got)
	}
	if got := mimeForPath("report"); got != "application/pdf" {
		t.Errorf("extensionless fallback = %q, want application/pdf", got)
	}
}
