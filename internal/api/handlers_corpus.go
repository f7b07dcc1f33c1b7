package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/vedanth-raj/sectionize/internal/corpus"
	"github.com/vedanth-raj/sectionize/internal/paper"
	"github.com/vedanth-raj/sectionize/internal/report"
)

type compareRequest struct {
	// DocIDs limits the comparison to specific stored documents.
	// Empty means the whole stored corpus.
	DocIDs []string `json:"doc_ids"`
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	cmp, ok := s.corpusComparison(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cmp)
}

func (s *Server) handleCorpusReport(w http.ResponseWriter, r *http.Request) {
	cmp, ok := s.corpusComparison(w, r)
	if !ok {
		return
	}
	// The text form renders from the same structure as the JSON form,
	// so the two can never disagree.
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, report.Corpus(cmp))
}

// corpusComparison resolves the requested document set and runs the
// comparison. Unknown doc ids become explicit skip records rather than
// failing the whole request.
func (s *Server) corpusComparison(w http.ResponseWriter, r *http.Request) (*paper.CorpusComparison, bool) {
	var req compareRequest
	if r.Method == http.MethodPost && r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return nil, false
		}
	}

	st := s.orchestrator.Store()
	var sets []paper.DocumentSectionSet
	var missing []paper.SkipRecord

	if len(req.DocIDs) == 0 {
		sets = st.All()
	} else {
		for i, id := range req.DocIDs {
			set, ok := st.Get(id)
			if !ok {
				missing = append(missing, paper.SkipRecord{
					Index:   i,
					Title:   id,
					Skipped: true,
					Reason:  "document not found",
				})
				continue
			}
			sets = append(sets, *set)
		}
	}

	cmp := corpus.Compare(sets)
	cmp.Skipped = append(cmp.Skipped, missing...)
	return &cmp, true
}
