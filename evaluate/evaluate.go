// Package evaluate scores extracted key phrases against gold keyphrase sets.
//
// Precision, Recall and F1 are micro averaged: matches, assigned phrases and
// gold phrases are summed over all documents before dividing. Phrases match
// when their normalized forms are equal.
//
// Run evaluates a corpus laid out as the Inspec collection: one <id>.txt file
// per document plus a JSON gold file mapping ids to keyphrase labels.
package evaluate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/az-ai-labs/textrank/internal/textcase"
	"github.com/az-ai-labs/textrank/textrank"
)

// Gold maps a document id to its gold keyphrases.
type Gold map[string][]string

// Document is the evaluation of a single text.
type Document struct {
	ID       string   `json:"id"`
	Assigned []string `json:"assigned"`
	Gold     []string `json:"gold"`
	Matches  int      `json:"matches"`
}

// Report summarizes a corpus run. Documents are sorted by id.
type Report struct {
	Window       int        `json:"window"`
	Documents    []Document `json:"documents,omitempty"`
	Precision    float64    `json:"precision"`
	Recall       float64    `json:"recall"`
	F1           float64    `json:"f1"`
	MeanAssigned float64    `json:"mean_assigned"`
	MeanMatches  float64    `json:"mean_matches"`
}

// Precision is the share of assigned phrases that appear in the gold set of
// the same document. It returns 0 when nothing was assigned.
func Precision(assigned, gold [][]string) float64 {
	matches, total := 0, 0
	for i := range assigned {
		matches += intersect(assigned[i], at(gold, i))
		total += len(assigned[i])
	}
	return ratio(matches, total)
}

// Recall is the share of gold phrases that were assigned. It returns 0 when
// the gold sets are empty.
func Recall(assigned, gold [][]string) float64 {
	matches, total := 0, 0
	for i := range gold {
		matches += intersect(at(assigned, i), gold[i])
		total += len(gold[i])
	}
	return ratio(matches, total)
}

// F1 is the harmonic mean of Precision and Recall, or 0 when both are 0.
func F1(assigned, gold [][]string) float64 {
	p, r := Precision(assigned, gold), Recall(assigned, gold)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// LoadGold reads a gold file of the form {"id": [["phrase", ...], ...]}.
// The first entry of each label is the keyphrase; empty labels are skipped.
func LoadGold(path string) (Gold, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("evaluate: reading gold file: %w", err)
	}
	var raw map[string][][]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("evaluate: parsing gold file %s: %w", path, err)
	}

	gold := make(Gold, len(raw))
	for id, labels := range raw {
		phrases := make([]string, 0, len(labels))
		for _, label := range labels {
			if len(label) == 0 || strings.TrimSpace(label[0]) == "" {
				continue
			}
			phrases = append(phrases, label[0])
		}
		gold[id] = phrases
	}
	return gold, nil
}

// Run extracts phrases from docsDir/<id>.txt for every id in gold and scores
// them. Newlines are folded to spaces before extraction, and the default
// phrase count is used. Up to workers documents are processed at once;
// workers < 1 means one.
//
// A document whose text has nothing to rank scores as an empty assignment.
// A missing file, a configuration error or a cancelled ctx stops the run.
func Run(ctx context.Context, docsDir string, gold Gold, cfg textrank.Config, workers int) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	ids := make([]string, 0, len(gold))
	for id := range gold {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	docs := make([]Document, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, id := range ids {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			assigned, err := extract(filepath.Join(docsDir, id+".txt"), cfg)
			if err != nil {
				return fmt.Errorf("evaluate: document %s: %w", id, err)
			}
			docs[i] = Document{
				ID:       id,
				Assigned: assigned,
				Gold:     gold[id],
				Matches:  intersect(assigned, gold[id]),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rep := summarize(docs)
	rep.Window = cfg.Window
	log.Info("evaluation finished",
		zap.Int("documents", len(docs)),
		zap.Int("window", cfg.Window),
		zap.Float64("precision", rep.Precision),
		zap.Float64("recall", rep.Recall),
		zap.Float64("f1", rep.F1))
	return rep, nil
}

func extract(path string, cfg textrank.Config) ([]string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	text := strings.ReplaceAll(string(data), "\n", " ")

	phrases, err := textrank.MultiKeywords(text, 0, cfg)
	if errors.Is(err, textrank.ErrInvalidInput) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]string, len(phrases))
	for i, p := range phrases {
		out[i] = p.Text
	}
	return out, nil
}

func summarize(docs []Document) *Report {
	assigned := make([][]string, len(docs))
	gold := make([][]string, len(docs))
	nAssigned := make([]float64, len(docs))
	nMatches := make([]float64, len(docs))
	for i, d := range docs {
		assigned[i] = d.Assigned
		gold[i] = d.Gold
		nAssigned[i] = float64(len(d.Assigned))
		nMatches[i] = float64(d.Matches)
	}

	rep := &Report{
		Documents: docs,
		Precision: Precision(assigned, gold),
		Recall:    Recall(assigned, gold),
		F1:        F1(assigned, gold),
	}
	if len(docs) > 0 {
		rep.MeanAssigned = stat.Mean(nAssigned, nil)
		rep.MeanMatches = stat.Mean(nMatches, nil)
	}
	return rep
}

// intersect counts distinct normalized phrases present in both lists.
func intersect(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, s := range b {
		set[textcase.Normalize(s)] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(a))
	for _, s := range a {
		k := textcase.Normalize(s)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		if _, ok := set[k]; ok {
			n++
		}
	}
	return n
}

func at(lists [][]string, i int) []string {
	if i < len(lists) {
		return lists[i]
	}
	return nil
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
