// Command smoketest runs the extraction pipeline over every .txt file in a
// directory tree and reports invariant violations and corpus statistics.
//
//	smoketest ./corpus
//
// Per file it checks that the tokenizer reconstructs the input byte for
// byte, that the tagger emits one tag per non-space token, that ranking
// converges, that every score is at least 1-d, and that two runs produce the
// same ranking.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/az-ai-labs/textrank/tagger"
	"github.com/az-ai-labs/textrank/textrank"
	"github.com/az-ai-labs/textrank/tokenizer"
)

const (
	maxWorkers   = 4
	expectedArgs = 2
	outlierRatio = 3
)

type fileIterations struct {
	path       string
	iterations int
}

type Stats struct {
	mu              sync.Mutex
	filesScanned    int
	totalBytes      int64
	reconOK         int
	reconFail       int
	tagMismatch     int
	analyzed        int
	noCandidates    int
	unconverged     int
	scoreFloor      int
	nondeterminism  int
	vertices        []float64
	iterations      []fileIterations
	tokenTypeCounts map[tokenizer.TokenType]int
}

type fileResult struct {
	path        string
	bytes       int64
	tokenCounts map[tokenizer.TokenType]int
	reconFailed bool
	tagMismatch bool
	noCands     bool
	unconverged bool
	belowFloor  bool
	unstable    bool
	vertices    int
	iterations  int
}

func main() {
	if len(os.Args) != expectedArgs {
		fmt.Fprintf(os.Stderr, "Usage: %s <directory>\n", os.Args[0])
		os.Exit(1)
	}

	var paths []string
	err := filepath.WalkDir(os.Args[1], func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error walking directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "Found %d files to process\n", len(paths))
	start := time.Now()

	cfg := textrank.DefaultConfig()
	stats := &Stats{tokenTypeCounts: make(map[tokenizer.TokenType]int)}

	var g errgroup.Group
	g.SetLimit(maxWorkers)
	for _, path := range paths {
		g.Go(func() error {
			res, err := checkFile(path, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", path, err)
				return nil
			}
			stats.merge(res)
			return nil
		})
	}
	_ = g.Wait()

	flagIterationOutliers(stats)

	fmt.Fprintf(os.Stderr, "\nCompleted in %s\n\n", time.Since(start).Round(time.Millisecond))
	printStats(stats)
}

func checkFile(path string, cfg textrank.Config) (*fileResult, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}
	text := string(b)
	res := &fileResult{
		path:        path,
		bytes:       int64(len(b)),
		tokenCounts: make(map[tokenizer.TokenType]int),
	}

	var sb strings.Builder
	sb.Grow(len(text))
	nonSpace := 0
	for _, tok := range tokenizer.WordTokens(text) {
		res.tokenCounts[tok.Type]++
		sb.WriteString(tok.Text)
		if tok.Type != tokenizer.Space {
			nonSpace++
		}
	}
	if got := sb.String(); got != text {
		res.reconFailed = true
		pos, g, w := firstDivergence(text, got)
		fmt.Fprintf(os.Stderr, "RECON_FAIL: %s: first divergence at byte %d (got 0x%02x, want 0x%02x)\n",
			path, pos, g, w)
	}

	tagged, err := tagger.NewRules().Tag(text)
	if err != nil {
		return nil, err
	}
	if len(tagged) != nonSpace {
		res.tagMismatch = true
		fmt.Fprintf(os.Stderr, "TAG_MISMATCH: %s: %d tags for %d tokens\n", path, len(tagged), nonSpace)
	}

	an, err := textrank.Analyze(text, cfg)
	if errors.Is(err, textrank.ErrInvalidInput) {
		res.noCands = true
		return res, nil
	}
	if err != nil {
		return nil, err
	}
	res.vertices = an.Graph.Len()
	res.iterations = an.Iterations
	res.unconverged = !an.Converged

	floor := 1 - cfg.Damping
	for _, kw := range an.Ranking {
		if kw.Score < floor-cfg.Epsilon {
			res.belowFloor = true
			fmt.Fprintf(os.Stderr, "SCORE_FLOOR: %s: %q scored %.6f\n", path, kw.Text, kw.Score)
			break
		}
	}

	again, err := textrank.Analyze(text, cfg)
	if err != nil {
		return nil, err
	}
	if !slices.Equal(an.Ranking, again.Ranking) {
		res.unstable = true
		fmt.Fprintf(os.Stderr, "NONDETERMINISTIC: %s\n", path)
	}
	return res, nil
}

func (s *Stats) merge(r *fileResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filesScanned++
	s.totalBytes += r.bytes
	if r.reconFailed {
		s.reconFail++
	} else {
		s.reconOK++
	}
	if r.tagMismatch {
		s.tagMismatch++
	}
	for typ, n := range r.tokenCounts {
		s.tokenTypeCounts[typ] += n
	}
	if r.noCands {
		s.noCandidates++
		return
	}

	s.analyzed++
	if r.unconverged {
		s.unconverged++
	}
	if r.belowFloor {
		s.scoreFloor++
	}
	if r.unstable {
		s.nondeterminism++
	}
	s.vertices = append(s.vertices, float64(r.vertices))
	s.iterations = append(s.iterations, fileIterations{path: r.path, iterations: r.iterations})
}

// flagIterationOutliers reports files that needed more than three times the
// median iteration count.
func flagIterationOutliers(stats *Stats) {
	if len(stats.iterations) == 0 {
		return
	}
	counts := make([]float64, len(stats.iterations))
	for i, fi := range stats.iterations {
		counts[i] = float64(fi.iterations)
	}
	slices.Sort(counts)
	med := stat.Quantile(0.5, stat.Empirical, counts, nil)

	for _, fi := range stats.iterations {
		if med > 0 && float64(fi.iterations) > outlierRatio*med {
			fmt.Fprintf(os.Stderr, "ITERATION_OUTLIER: %s: %d iterations (median %.0f)\n",
				fi.path, fi.iterations, med)
		}
	}
}

// firstDivergence finds the byte position where two strings first differ.
func firstDivergence(original, reconstructed string) (pos int, got, want byte) {
	n := min(len(original), len(reconstructed))
	for i := range n {
		if original[i] != reconstructed[i] {
			return i, reconstructed[i], original[i]
		}
	}
	pos = n
	if pos < len(reconstructed) {
		got = reconstructed[pos]
	}
	if pos < len(original) {
		want = original[pos]
	}
	return pos, got, want
}

func printStats(stats *Stats) {
	fmt.Printf("Files scanned:           %d\n", stats.filesScanned)
	fmt.Printf("Total bytes:             %d\n", stats.totalBytes)
	fmt.Printf("Reconstruction OK:       %d\n", stats.reconOK)
	fmt.Printf("Reconstruction FAIL:     %d\n", stats.reconFail)
	fmt.Printf("Tag count mismatches:    %d\n", stats.tagMismatch)
	fmt.Printf("Analyzed:                %d\n", stats.analyzed)
	fmt.Printf("No candidates:           %d\n", stats.noCandidates)
	fmt.Printf("Unconverged:             %d\n", stats.unconverged)
	fmt.Printf("Below score floor:       %d\n", stats.scoreFloor)
	fmt.Printf("Nondeterministic:        %d\n", stats.nondeterminism)
	if len(stats.vertices) > 0 {
		fmt.Printf("Mean vertices:           %.1f\n", stat.Mean(stats.vertices, nil))
	}
	fmt.Println()

	total := 0
	for _, n := range stats.tokenTypeCounts {
		total += n
	}
	fmt.Println("Token type distribution:")
	for _, typ := range []tokenizer.TokenType{
		tokenizer.Word, tokenizer.Number, tokenizer.Punctuation, tokenizer.Space, tokenizer.Symbol,
	} {
		n := stats.tokenTypeCounts[typ]
		pct := 0.0
		if total > 0 {
			pct = float64(n) / float64(total) * 100
		}
		fmt.Printf("  %-15s %d  (%.1f%%)\n", typ.String()+":", n, pct)
	}
}
