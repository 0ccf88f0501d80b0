package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

// bestCandidateSampler approximates a maximin (space-filling) design:
// it draws a pool of num_candidates uniform points from the declared
// ranges, then greedily picks the candidate farthest from everything
// already selected until num_samples new points are placed. Previously
// generated samples seed the selected set, so an existing design can be
// extended without re-selecting its points.
//
// Distances are squared Euclidean with each coordinate scaled to its
// declared range (and multiplied by the optional per-parameter weight),
// so differently-scaled columns contribute comparably.
type bestCandidateSampler struct {
	spec *spec.Spec
}

func (b *bestCandidateSampler) Kind() string { return spec.KindBestCandidate }

func (b *bestCandidateSampler) Columns() []string { return b.spec.ColumnNames() }

func (b *bestCandidateSampler) Generate(previous *table.Table) (*table.Table, error) {
	s := b.spec
	if err := checkRanges(s); err != nil {
		return nil, err
	}

	numCandidates := s.NumCandidates
	if numCandidates == 0 {
		numCandidates = spec.DefaultCandidateFactor * s.NumSamples
	}
	if numCandidates < s.NumSamples {
		return nil, &GenerationError{
			Kind:   b.Kind(),
			Reason: fmt.Sprintf("pool of %d candidates cannot supply %d samples", numCandidates, s.NumSamples),
		}
	}

	if previous == nil && s.PreviousSamples != "" {
		var err error
		previous, err = table.ReadFile(s.PreviousSamples)
		if err != nil {
			return nil, &SpecificationError{Key: "previous_samples", Reason: err.Error()}
		}
	}
	prior, err := b.priorPoints(previous)
	if err != nil {
		return nil, err
	}

	params := s.Parameters
	scale := make([]float64, len(params))
	for j, p := range params {
		// a zero-span range contributes nothing to the distance
		if span := p.Max - p.Min; span > 0 {
			scale[j] = p.Weight / span
		}
	}

	rng := rand.New(rand.NewSource(seedFor(s)))
	candidates := make([][]float64, numCandidates)
	for i := range candidates {
		pt := make([]float64, len(params))
		for j, p := range params {
			pt[j] = p.Min + rng.Float64()*(p.Max-p.Min)
		}
		candidates[i] = pt
	}

	picks := selectMaximin(candidates, prior, scale, s.NumSamples)

	t, err := table.New(s.ColumnNames())
	if err != nil {
		return nil, &SpecificationError{Key: "parameters", Reason: err.Error()}
	}
	if previous != nil {
		for i := 0; i < previous.NumRows(); i++ {
			row := make([]string, 0, len(s.Constants)+len(params))
			for _, c := range s.Constants {
				if cell, ok := previous.Cell(i, c.Name); ok {
					row = append(row, cell)
				} else {
					row = append(row, c.Value)
				}
			}
			for _, p := range params {
				cell, _ := previous.Cell(i, p.Name)
				row = append(row, cell)
			}
			if err := t.AppendRow(row); err != nil {
				return nil, err
			}
		}
	}
	for _, idx := range picks {
		row := make([]string, 0, len(s.Constants)+len(params))
		for _, c := range s.Constants {
			row = append(row, c.Value)
		}
		for j := range params {
			row = append(row, table.FormatFloat(candidates[idx][j]))
		}
		if err := t.AppendRow(row); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// priorPoints extracts the declared parameter coordinates of previously
// generated samples. Every declared parameter must be a numeric column
// of the previous table.
func (b *bestCandidateSampler) priorPoints(previous *table.Table) ([][]float64, error) {
	if previous == nil {
		return nil, nil
	}
	columns := make([][]float64, len(b.spec.Parameters))
	for j, p := range b.spec.Parameters {
		values, err := previous.Float64Column(p.Name)
		if err != nil {
			return nil, &SpecificationError{Key: "previous_samples", Reason: err.Error()}
		}
		columns[j] = values
	}
	points := make([][]float64, previous.NumRows())
	for i := range points {
		pt := make([]float64, len(columns))
		for j := range columns {
			pt[j] = columns[j][i]
		}
		points[i] = pt
	}
	return points, nil
}

// selectMaximin runs the greedy farthest-point rule: each round picks the
// unused candidate whose distance to its nearest already-selected point is
// largest, then folds the pick into every remaining candidate's nearest
// distance. Returned indices are in selection order.
//
// With nothing selected yet every distance is +Inf and the scan settles on
// index 0, so the first pick is the pool's first element. Ties always keep
// the lowest candidate index; given a fixed seed the whole selection is
// reproducible.
func selectMaximin(candidates, prior [][]float64, scale []float64, n int) []int {
	minDist := make([]float64, len(candidates))
	for i := range minDist {
		minDist[i] = math.Inf(1)
	}
	used := make([]bool, len(candidates))

	for _, p := range prior {
		refreshDistances(candidates, used, minDist, p, scale)
	}

	picks := make([]int, 0, n)
	for len(picks) < n {
		best := -1
		bestDist := math.Inf(-1)
		for i, d := range minDist {
			if used[i] {
				continue
			}
			if d > bestDist {
				bestDist = d
				best = i
			}
		}
		if best < 0 {
			break
		}
		used[best] = true
		picks = append(picks, best)
		refreshDistances(candidates, used, minDist, candidates[best], scale)
	}
	return picks
}

// refreshDistances folds one newly selected point into the per-candidate
// nearest-selected distances. Candidates are independent within a round,
// so the work fans out over disjoint index ranges; the argmax happens
// only after every worker finishes, keeping selection deterministic.
func refreshDistances(candidates [][]float64, used []bool, minDist []float64, point, scale []float64) {
	workers := runtime.NumCPU()
	if workers > len(candidates) {
		workers = 1
	}
	chunk := (len(candidates) + workers - 1) / workers

	var wg sync.WaitGroup
	for lo := 0; lo < len(candidates); lo += chunk {
		hi := lo + chunk
		if hi > len(candidates) {
			hi = len(candidates)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if used[i] {
					continue
				}
				if d := dist2(candidates[i], point, scale); d < minDist[i] {
					minDist[i] = d
				}
			}
		}(lo, hi)
	}
	wg.Wait()
}

func dist2(a, b, scale []float64) float64 {
	var sum float64
	for j := range a {
		d := (a[j] - b[j]) * scale[j]
		sum += d * d
	}
	return sum
}
