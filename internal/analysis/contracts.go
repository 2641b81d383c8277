package analysis

import (
	"context"
	"errors"
)

// State is the remote-side processing status of an uploaded document.
type State string

const (
	StatePending State = "PENDING"
	StateActive  State = "ACTIVE"
	StateFailed  State = "FAILED"
)

// Handle identifies a document uploaded to the remote inference service
// for the duration of one document's processing.
type Handle struct {
	ID       string // remote resource name, e.g. "files/abc123"
	URI      string
	MIMEType string
	State    State
}

var (
	// ErrUpload means the transport rejected the file. Fatal for the
	// document only; the batch continues.
	ErrUpload = errors.New("upload rejected")
	// ErrNotReady means the remote service reported a failed processing state.
	ErrNotReady = errors.New("remote processing failed")
	// ErrPollTimeout means the remote state never left PENDING within the
	// configured attempt budget.
	ErrPollTimeout = errors.New("timed out waiting for remote processing")
)

// DocumentAnalyzer drives one document through upload, readiness polling,
// completion and cleanup. The batch driver depends on this interface.
type DocumentAnalyzer interface {
	// Submit uploads the document at path and returns its remote handle.
	Submit(ctx context.Context, path string) (*Handle, error)

	// AwaitReady polls the remote state at a fixed interval until it leaves
	// PENDING. It returns the refreshed handle once ACTIVE, ErrNotReady if
	// the state becomes FAILED, and ErrPollTimeout when the attempt budget
	// is exhausted.
	AwaitReady(ctx context.Context, h *Handle) (*Handle, error)

	// Complete sends the instruction plus the ready document to the model
	// and returns the raw response text. An empty string is a valid
	// "no content produced" outcome, not an error.
	Complete(ctx context.Context, prompt string, h *Handle) (string, error)

	// CompleteText is a text-only completion with no document attached.
	CompleteText(ctx context.Context, prompt, text string) (string, error)

	// Release deletes the remote file best-effort. Failures are logged,
	// never returned.
	Release(ctx context.Context, h *Handle)
}
