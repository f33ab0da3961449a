package service

import (
	"context"
	"errors"
	"log"

	"ai4juris-backend/decision"
	"ai4juris-backend/models"
)

// LabelService runs the extract → normalize → canonicalize pipeline over the
// corpus and persists canonical decision labels.
type LabelService struct {
	store     DocumentStore
	canon     decision.CanonMap
	sources   []string
	batchSize int
}

// LabelServiceOption is a functional option for LabelService
type LabelServiceOption func(*LabelService)

// LabelWithStore sets the document store
func LabelWithStore(store DocumentStore) LabelServiceOption {
	return func(s *LabelService) {
		s.store = store
	}
}

// LabelWithCanonMap sets the canonical mapping table
func LabelWithCanonMap(canon decision.CanonMap) LabelServiceOption {
	return func(s *LabelService) {
		s.canon = canon
	}
}

// LabelWithSources restricts labeling to the given origin sources
func LabelWithSources(sources []string) LabelServiceOption {
	return func(s *LabelService) {
		s.sources = sources
	}
}

// LabelWithBatchSize sets how many rows are fetched per batch
func LabelWithBatchSize(size int) LabelServiceOption {
	return func(s *LabelService) {
		s.batchSize = size
	}
}

// NewLabelService creates a new label service
func NewLabelService(opts ...LabelServiceOption) *LabelService {
	s := &LabelService{batchSize: 500}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LabelReport aggregates the outcome of one labeling run. Extraction holds
// the corpus-wide from_extra/from_text/missing tallies.
type LabelReport struct {
	Extraction      decision.Stats `json:"extraction"`
	Labeled         int            `json:"labeled"`
	AlreadyLabeled  int            `json:"already_labeled"`
	UnmappedVariant int            `json:"unmapped_variant"`
	WriteFailures   int            `json:"write_failures"`
}

// LabelMissing walks the corpus in id order and persists a canonical label
// for every document whose variant maps confidently. UNSURE variants are
// counted but never persisted. Documents already labeled are skipped, so a
// rerun is idempotent. maxDocs <= 0 means no cap.
func (s *LabelService) LabelMissing(ctx context.Context, maxDocs int) (*LabelReport, error) {
	if s.store == nil {
		return nil, errors.New("document store not set")
	}
	if s.canon == nil {
		return nil, errors.New("canon map not set")
	}

	report := &LabelReport{}
	var lastID int64

	for {
		docs, err := s.store.ListAfterID(ctx, lastID, s.batchSize, s.sources)
		if err != nil {
			return report, err
		}
		if len(docs) == 0 {
			break
		}

		for _, doc := range docs {
			lastID = doc.ID

			if maxDocs > 0 && report.Extraction.TotalDocs >= maxDocs {
				return report, nil
			}

			if doc.Decision != nil && *doc.Decision != "" {
				report.AlreadyLabeled++
				continue
			}

			extra := ""
			if doc.DecisionExtra != nil {
				extra = *doc.DecisionExtra
			}

			variant, _ := decision.Extract(doc.TextPlain, extra, &report.Extraction)
			if variant == "" {
				continue
			}

			canon := s.canon.Canonicalize(variant)
			if canon == models.ClassUnsure {
				report.UnmappedVariant++
				continue
			}

			if err := s.store.UpdateDecision(ctx, doc.ID, canon); err != nil {
				log.Printf("Error labeling document %d: %v", doc.ID, err)
				report.WriteFailures++
				continue
			}
			report.Labeled++
		}
	}

	return report, nil
}

// CollectCandidates gathers, per canonical class, references to documents
// whose variant maps to that class, stopping once every class holds perClass
// candidates or the corpus is exhausted. The result feeds the balanced
// sampler when building training and evaluation sets.
func (s *LabelService) CollectCandidates(ctx context.Context, perClass, maxDocs int) (map[string][]decision.Candidate, *LabelReport, error) {
	if s.store == nil {
		return nil, nil, errors.New("document store not set")
	}
	if s.canon == nil {
		return nil, nil, errors.New("canon map not set")
	}

	pools := make(map[string][]decision.Candidate)
	for _, class := range s.canon.Classes() {
		pools[class] = nil
	}

	report := &LabelReport{}
	var lastID int64

	done := func() bool {
		for _, items := range pools {
			if len(items) < perClass {
				return false
			}
		}
		return true
	}

	for {
		docs, err := s.store.ListAfterID(ctx, lastID, s.batchSize, s.sources)
		if err != nil {
			return pools, report, err
		}
		if len(docs) == 0 {
			break
		}

		for _, doc := range docs {
			lastID = doc.ID

			if maxDocs > 0 && report.Extraction.TotalDocs >= maxDocs {
				return pools, report, nil
			}
			if done() {
				return pools, report, nil
			}

			extra := ""
			if doc.DecisionExtra != nil {
				extra = *doc.DecisionExtra
			}

			variant, _ := decision.Extract(doc.TextPlain, extra, &report.Extraction)
			if variant == "" {
				continue
			}

			canon := s.canon.Canonicalize(variant)
			if canon == models.ClassUnsure {
				report.UnmappedVariant++
				continue
			}
			if len(pools[canon]) >= perClass {
				continue
			}

			pools[canon] = append(pools[canon], decision.Candidate{
				Class:   canon,
				DocID:   doc.ID,
				Source:  doc.Source,
				Variant: variant,
			})
			report.Labeled++
		}
	}

	return pools, report, nil
}
