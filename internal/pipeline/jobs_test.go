package pipeline

import (
	"testing"
	"time"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	h1 := ContentHashHex([]byte("aaa"))
	h2 := ContentHashHex([]byte("bbb"))
	if h1 == h2 {
		t.Error("expected different hashes for different inputs")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := &Job{
		ID:        "test-1",
		Status:    StatusQueued,
		Phase:     "queued",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	transitions := []struct {
		status JobStatus
		phase  string
	}{
		{StatusReading, "reading document"},
		{StatusAnalyzing, "detecting sections"},
		{StatusStoring, "storing results"},
		{StatusCompleted, "done"},
	}

	for _, tr := range transitions {
		before := job.UpdatedAt
		// Small sleep to ensure time difference is detectable.
		time.Sleep(time.Millisecond)
		job.SetStatus(tr.status, tr.phase)

		if job.Status != tr.status {
			t.Errorf("expected status %q, got %q", tr.status, job.Status)
		}
		if job.Phase != tr.phase {
			t.Errorf("expected phase %q, got %q", tr.phase, job.Phase)
		}
		if !job.UpdatedAt.After(before) {
			t.Errorf("expected UpdatedAt to advance after SetStatus(%q)", tr.status)
		}
	}
}

func TestJob_SetStatusFailed(t *testing.T) {
	job := &Job{
		ID:        "test-fail",
		Status:    StatusAnalyzing,
		UpdatedAt: time.Now(),
	}
	job.SetStatus(StatusFailed, "analysis error")
	if job.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, job.Status)
	}
}

func TestJob_AddError(t *testing.T) {
	job := &Job{ID: "err-test", UpdatedAt: time.Now()}
	job.AddError("unsupported extension")
	job.AddError("store failed")

	snap := job.Snapshot()
	if len(snap.Progress.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(snap.Progress.Errors))
	}
	if snap.Progress.Errors[0] != "unsupported extension" {
		t.Errorf("expected first error %q, got %q", "unsupported extension", snap.Progress.Errors[0])
	}
}

func TestJob_SetResult(t *testing.T) {
	job := &Job{ID: "result-test", UpdatedAt: time.Now()}
	job.SetResult(7, 4200)

	snap := job.Snapshot()
	if snap.Progress.SectionsFound != 7 {
		t.Errorf("expected 7 sections, got %d", snap.Progress.SectionsFound)
	}
	if snap.Progress.TotalWords != 4200 {
		t.Errorf("expected 4200 words, got %d", snap.Progress.TotalWords)
	}
}

func TestJob_Input(t *testing.T) {
	job := &Job{ID: "data-test"}
	data := []byte("file content here")
	job.SetInput(data, []string{"A. Author"}, 12)

	got, authors, pages := job.Input()
	if string(got) != string(data) {
		t.Errorf("expected file data %q, got %q", data, got)
	}
	if len(authors) != 1 || authors[0] != "A. Author" {
		t.Errorf("unexpected authors: %v", authors)
	}
	if pages != 12 {
		t.Errorf("expected 12 pages, got %d", pages)
	}
}

func TestJobStore_Cleanup(t *testing.T) {
	s := NewJobStore(10 * time.Millisecond)
	job := &Job{ID: "old", UpdatedAt: time.Now().Add(-time.Minute)}
	s.Put(job)

	s.Cleanup()
	if s.Get("old") != nil {
		t.Error("expected expired job to be evicted")
	}

	fresh := &Job{ID: "fresh", UpdatedAt: time.Now()}
	s.Put(fresh)
	s.Cleanup()
	if s.Get("fresh") == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJob_SnapshotErrorsNotNil(t *testing.T) {
	// Snapshot should always return non-nil errors slice.
	job := &Job{ID: "snap-test", UpdatedAt: time.Now()}
	snap := job.Snapshot()
	if snap.Progress.Errors == nil {
		t.Error("expected non-nil errors slice in snapshot")
	}
	if len(snap.Progress.Errors) != 0 {
		t.Errorf("expected empty errors, got %d", len(snap.Progress.Errors))
	}
}
