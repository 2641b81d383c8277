package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/genai"

	"github.com/sgunwal/capreports/internal/analysis"
)

// NewClient builds a Gemini-backed analysis.DocumentAnalyzer. The client is
// an explicit object constructed with credentials; there is no package-level
// API state.
func NewClient(ctx context.Context, cfg Config, logger *slog.Logger) (*Client, error) {
	cfg.applyDefaults()
	if logger == nil {
		logger = slog.Default()
	}
	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	c := &Client{cfg: cfg, genai: gc, logger: logger}
	c.getFile = func(ctx context.Context, name string) (*genai.File, error) {
		return gc.Files.Get(ctx, name, nil)
	}
	return c, nil
}

var _ analysis.DocumentAnalyzer = (*Client)(nil)

// Submit uploads the document to the Files API.
func (c *Client) Submit(ctx context.Context, path string) (*analysis.Handle, error) {
	rid := uuid.New().String()
	start := time.Now()

	f, err := c.genai.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeForPath(path),
		DisplayName: filepath.Base(path),
	})
	if err != nil {
		c.logger.Error("analysis.upload.failed",
			"req_id", rid, "path", path, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return nil, fmt.Errorf("%w: %s: %v", analysis.ErrUpload, filepath.Base(path), err)
	}

	h := handleFromFile(f)
	c.logger.Info("analysis.upload.ok",
		"req_id", rid, "path", path, "file", h.ID, "state", string(h.State),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return h, nil
}

// AwaitReady polls the remote state at the configured fixed interval until
// it leaves PENDING, bounded by MaxPollAttempts.
func (c *Client) AwaitReady(ctx context.Context, h *analysis.Handle) (*analysis.Handle, error) {
	rid := uuid.New().String()
	start := time.Now()

	for attempt := 0; attempt < c.cfg.MaxPollAttempts; attempt++ {
		switch h.State {
		case analysis.StateActive:
			c.logger.Info("analysis.ready.ok",
				"req_id", rid, "file", h.ID, "polls", attempt,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return h, nil
		case analysis.StateFailed:
			c.logger.Error("analysis.ready.failed",
				"req_id", rid, "file", h.ID, "polls", attempt,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return nil, fmt.Errorf("%w: file %s", analysis.ErrNotReady, h.ID)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}

		f, err := c.getFile(ctx, h.ID)
		if err != nil {
			return nil, fmt.Errorf("poll file state: %w", err)
		}
		h = handleFromFile(f)
	}

	c.logger.Error("analysis.ready.timeout",
		"req_id", rid, "file", h.ID, "attempts", c.cfg.MaxPollAttempts,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return nil, fmt.Errorf("%w: file %s after %d attempts", analysis.ErrPollTimeout, h.ID, c.cfg.MaxPollAttempts)
}

// Complete sends the instruction plus the ready document to the model.
func (c *Client) Complete(ctx context.Context, prompt string, h *analysis.Handle) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromURI(h.URI, h.MIMEType),
	}
	return c.generate(ctx, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

// CompleteText is a text-only completion with no document attached.
func (c *Client) CompleteText(ctx context.Context, prompt, text string) (string, error) {
	parts := []*genai.Part{genai.NewPartFromText(prompt)}
	if text != "" {
		parts = append(parts, genai.NewPartFromText(text))
	}
	return c.generate(ctx, []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)})
}

func (c *Client) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	rid := uuid.New().String()
	start := time.Now()

	resp, err := c.genai.Models.GenerateContent(ctx, c.cfg.Model, contents, &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.cfg.Temperature),
	})
	if err != nil {
		c.logger.Error("analysis.complete.failed",
			"req_id", rid, "model", c.cfg.Model, "error", err,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		// Valid outcome: the model produced no content.
		c.logger.Warn("analysis.complete.empty",
			"req_id", rid, "model", c.cfg.Model,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return "", nil
	}
	c.logger.Info("analysis.complete.ok",
		"req_id", rid, "model", c.cfg.Model, "text_len", len(text),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return text, nil
}

// Release deletes the remote file best-effort. Remote storage leakage on
// cleanup failure is accepted; there is no retry.
func (c *Client) Release(ctx context.Context, h *analysis.Handle) {
	if h == nil || h.ID == "" {
		return
	}
	if _, err := c.genai.Files.Delete(ctx, h.ID, nil); err != nil {
		c.logger.Warn("analysis.release.failed", "file", h.ID, "error", err)
		return
	}
	c.logger.Info("analysis.release.ok", "file", h.ID)
}

func handleFromFile(f *genai.File) *analysis.Handle {
	return &analysis.Handle{
		ID:       f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    mapState(f.State),
	}
}

func mapState(s genai.FileState) analysis.State {
	switch s {
	case genai.FileStateActive:
		return analysis.StateActive
	case genai.FileStateFailed:
		return analysis.StateFailed
	default:
		return analysis.StatePending
	}
}

func mimeForPath(path string) string {
	if mt := mime.TypeByExtension(filepath.Ext(path)); mt != "" {
		return mt
	}
	return "application/pdf"
}
