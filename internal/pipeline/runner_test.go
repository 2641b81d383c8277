package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/sgunwal/capreports/internal/analysis"
)

// mockAnalyzer counts calls so tests can assert exactly-once semantics for
// completion and cleanup.
type mockAnalyzer struct {
	submitErr   error
	awaitErr    error
	response    string
	completeErr error

	responses map[string]string // per-path responses for batch tests

	submits   int
	awaits    int
	completes int
	releases  int
	lastPath  string
}

func (m *mockAnalyzer) Submit(_ context.Context, path string) (*analysis.Handle, error) {
	m.submits++
	m.lastPath = path
	if m.submitErr != nil {
		return nil, m.submitErr
	}
	return &analysis.Handle{ID: "files/mock", URI: "uri://mock", MIMEType: "application/pdf", State: analysis.StatePending}, nil
}

func (m *mockAnalyzer) AwaitReady(_ context.Context, h *analysis.Handle) (*analysis.Handle, error) {
	m.awaits++
	if m.awaitErr != nil {
		return nil, m.awaitErr
	}
	ready := *h
	ready.State = analysis.StateActive
	return &ready, nil
}

func (m *mockAnalyzer) Complete(_ context.Context, _ string, _ *analysis.Handle) (string, error) {
	m.completes++
	if m.completeErr != nil {
		return "", m.completeErr
	}
	if m.responses != nil {
		return m.responses[m.lastPath], nil
	}
	return m.response, nil
}

func (m *mockAnalyzer) CompleteText(_ context.Context, _, _ string) (string, error) {
	return "", nil
}

func (m *mockAnalyzer) Release(_ context.Context, _ *analysis.Handle) {
	m.releases++
}

func TestProcessDocument_Success(t *testing.T) {
	mock := &mockAnalyzer{response: `[{"Category": "Solar Energy", "Action Description": "Install panels"}]`}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if !res.Structured || len(res.Records) != 1 {
		t.Errorf("records = %v (structured=%v), want 1 structured record", res.Records, res.Structured)
	}
	if mock.completes != 1 {
		t.Errorf("completes = %d, want exactly 1", mock.completes)
	}
	if mock.releases != 1 {
		t.Errorf("releases = %d, want exactly 1", mock.releases)
	}
}

func TestProcessDocument_UploadFailure(t *testing.T) {
	mock := &mockAnalyzer{submitErr: analysis.ErrUpload}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if !errors.Is(res.Err, analysis.ErrUpload) {
		t.Fatalf("err = %v, want ErrUpload", res.Err)
	}
	if mock.completes != 0 {
		t.Errorf("completes = %d, want 0", mock.completes)
	}
	// Nothing was uploaded, so there is nothing to release.
	if mock.releases != 0 {
		t.Errorf("releases = %d, want 0", mock.releases)
	}
}

func TestProcessDocument_RemoteProcessingFailed(t *testing.T) {
	mock := &mockAnalyzer{awaitErr: analysis.ErrNotReady}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if !errors.Is(res.Err, analysis.ErrNotReady) {
		t.Fatalf("err = %v, want ErrNotReady", res.Err)
	}
	if mock.completes != 0 {
		t.Errorf("completes = %d, want 0 for a FAILED document", mock.completes)
	}
	if mock.releases != 1 {
		t.Errorf("releases = %d, want exactly 1", mock.releases)
	}
}

func TestProcessDocument_CompletionFailure(t *testing.T) {
	mock := &mockAnalyzer{completeErr: errors.New("rpc deadline exceeded")}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if res.Err == nil {
		t.Fatal("expected an error")
	}
	if mock.releases != 1 {
		t.Errorf("releases = %d, want exactly 1", mock.releases)
	}
}

func TestProcessDocument_UnstructuredResponse(t *testing.T) {
	raw := "The report does not contain a machine-readable inventory.\nSee pages 10-14."
	mock := &mockAnalyzer{response: raw}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Structured {
		t.Error("prose must not be reported as structured")
	}
	// The raw text is preserved verbatim for the fallback artifact.
	if res.RawText != raw {
		t.Errorf("raw text = %q, want %q", res.RawText, raw)
	}
	if mock.releases != 1 {
		t.Errorf("releases = %d, want exactly 1", mock.releases)
	}
}

func TestProcessDocument_EmptyResponse(t *testing.T) {
	mock := &mockAnalyzer{response: ""}
	r := NewRunner(mock, nil)

	res := r.ProcessDocument(context.Background(), "/reports/aurora.pdf", "extract actions")
	if res.Err != nil {
		t.Fatalf("empty model output is not an error, got %v", res.Err)
	}
	if res.Structured || res.RawText != "" {
		t.Errorf("unexpected result: %+v", res)
	}
	if mock.releases != 1 {
		t.Errorf("releases = %d, want exactly 1", mock.releases)
	}
}

func TestProcessBatch_FailureIsolation(t *testing.T) {
	mock := &mockAnalyzer{
		responses: map[string]string{
			"/reports/a.pdf": `[{"Category": "Solar Energy", "Action Description": "One"},
				{"Category": "Wind Energy", "Action Description": "Two"},
				{"Category": "Building Retrofits", "Action Description": "Three"}]`,
			"/reports/b.pdf": "No structured data in this one.",
		},
	}
	r := NewRunner(mock, nil)

	results := r.ProcessBatch(context.Background(), []string{"/reports/a.pdf", "/reports/b.pdf"}, "extract actions")
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if !results[0].Structured || len(results[0].Records) != 3 {
		t.Errorf("doc A: records = %v", results[0].Records)
	}
	if results[1].Structured || results[1].RawText == "" {
		t.Errorf("doc B should fall back to raw text: %+v", results[1])
	}
	if mock.releases != 2 {
		t.Errorf("releases = %d, want one per uploaded document", mock.releases)
	}
}
