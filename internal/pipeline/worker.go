package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/vedanth-raj/sectionize/internal/analyzer"
	"github.com/vedanth-raj/sectionize/internal/metrics"
	"github.com/vedanth-raj/sectionize/internal/paper"
	"github.com/vedanth-raj/sectionize/internal/reader"
	"github.com/vedanth-raj/sectionize/internal/store"
)

// Worker processes a single document job: read, analyze, store. A
// failure in one job never affects the rest of a batch.
type Worker struct {
	store       *store.Store
	log         *slog.Logger
	stats       *metrics.AnalysisStats
	analyzerCfg analyzer.Config
	strict      bool
}

func NewWorker(st *store.Store, log *slog.Logger, stats *metrics.AnalysisStats, cfg analyzer.Config) *Worker {
	return &Worker{
		store:       st,
		log:         log,
		stats:       stats,
		analyzerCfg: cfg,
		strict:      cfg.StrictSummary,
	}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID)
	start := time.Now()

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Read
	job.SetStatus(StatusReading, "reading")
	rd, err := reader.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "reading")
		return
	}

	data, authors, pages := job.Input()
	doc, err := rd.Read(bytes.NewReader(data), job.Filename)
	if err != nil {
		log.Error("read failed", "error", err)
		job.AddError(fmt.Sprintf("read: %s", err))
		job.SetStatus(StatusFailed, "reading")
		return
	}

	title := job.Title
	if title == "" {
		title = doc.Title
	}

	// Phase 2: Analyze
	job.SetStatus(StatusAnalyzing, "analyzing")
	meta := paper.Metadata{Title: title, Authors: authors, PageCount: pages}
	set := analyzer.DetectSections(doc.Text, meta, w.analyzerCfg)
	if set.Metadata.PageCount == 0 && len(set.Sections) > 0 {
		set.Metadata.PageCount = set.Sections[len(set.Sections)-1].EndPage
	}

	if err := analyzer.VerifySummary(&set, w.strict); err != nil {
		log.Error("summary invariant violation", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "analyzing")
		return
	}

	job.SetResult(set.Summary.TotalSections, set.Summary.TotalWords)
	log.Info("analyzed document", "sections", set.Summary.TotalSections, "words", set.Summary.TotalWords)

	// Phase 3: Store
	job.SetStatus(StatusStoring, "storing")
	if err := w.store.Put(job.DocID, &set); err != nil {
		log.Error("store failed", "error", err)
		job.AddError(fmt.Sprintf("store: %s", err))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	job.SetStatus(StatusCompleted, "done")
	if w.stats != nil {
		w.stats.Record(time.Since(start).Milliseconds())
	}
}
