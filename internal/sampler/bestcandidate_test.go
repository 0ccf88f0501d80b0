package sampler_test

import (
	"errors"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/paramgen/internal/sampler"
	"github.com/san-kum/paramgen/internal/spec"
	"github.com/san-kum/paramgen/internal/table"
)

func bcSpec(seed int64, numSamples, numCandidates int, params []spec.Parameter) *spec.Spec {
	s := &spec.Spec{
		Type:          spec.KindBestCandidate,
		NumSamples:    numSamples,
		NumCandidates: numCandidates,
		Seed:          &seed,
		Parameters:    params,
	}
	Expect(s.Validate()).To(Succeed())
	return s
}

func generate(s *spec.Spec, previous *table.Table) *table.Table {
	smp, err := sampler.New(s)
	Expect(err).NotTo(HaveOccurred())
	tbl, err := smp.Generate(previous)
	Expect(err).NotTo(HaveOccurred())
	return tbl
}

func oneD(min, max float64) []spec.Parameter {
	return []spec.Parameter{
		{Name: "x", Min: min, Max: max, HasMin: true, HasMax: true, Weight: 1},
	}
}

func points(tbl *table.Table, names ...string) [][]float64 {
	columns := make([][]float64, len(names))
	for j, name := range names {
		values, err := tbl.Float64Column(name)
		Expect(err).NotTo(HaveOccurred())
		columns[j] = values
	}
	pts := make([][]float64, tbl.NumRows())
	for i := range pts {
		pt := make([]float64, len(columns))
		for j := range columns {
			pt[j] = columns[j][i]
		}
		pts[i] = pt
	}
	return pts
}

func minPairwise(pts [][]float64) float64 {
	min := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			var sum float64
			for k := range pts[i] {
				d := pts[i][k] - pts[j][k]
				sum += d * d
			}
			if d := math.Sqrt(sum); d < min {
				min = d
			}
		}
	}
	return min
}

var _ = Describe("best candidate sampler", func() {
	It("produces the requested number of distinct samples", func() {
		tbl := generate(bcSpec(42, 10, 200, oneD(0, 1)), nil)

		Expect(tbl.NumRows()).To(Equal(10))
		seen := map[string]bool{}
		for i := 0; i < tbl.NumRows(); i++ {
			cell, _ := tbl.Cell(i, "x")
			Expect(seen).NotTo(HaveKey(cell))
			seen[cell] = true
		}
	})

	It("stays inside the declared ranges", func() {
		params := []spec.Parameter{
			{Name: "a", Min: 5, Max: 10, HasMin: true, HasMax: true, Weight: 1},
			{Name: "b", Min: -1, Max: 1, HasMin: true, HasMax: true, Weight: 1},
		}
		tbl := generate(bcSpec(7, 20, 400, params), nil)

		for _, pt := range points(tbl, "a", "b") {
			Expect(pt[0]).To(And(BeNumerically(">=", 5), BeNumerically("<=", 10)))
			Expect(pt[1]).To(And(BeNumerically(">=", -1), BeNumerically("<=", 1)))
		}
	})

	It("is reproducible for a fixed seed", func() {
		first := generate(bcSpec(99, 5, 100, oneD(0, 10)), nil)
		second := generate(bcSpec(99, 5, 100, oneD(0, 10)), nil)

		Expect(second.Records()).To(Equal(first.Records()))
	})

	It("separates samples well in one dimension", func() {
		// three picks from a pool of 100 over [0,10]: greedy maximin
		// keeps the min gap near (range/2)/2 regardless of the first pick
		tbl := generate(bcSpec(42, 3, 100, oneD(0, 10)), nil)

		Expect(tbl.NumRows()).To(Equal(3))
		Expect(minPairwise(points(tbl, "x"))).To(BeNumerically(">", 1.5))
	})

	It("keeps previous samples unchanged and extends the design", func() {
		prev := generate(bcSpec(1, 2, 50, oneD(0, 1)), nil)

		extended := generate(bcSpec(2, 3, 200, oneD(0, 1)), prev)
		Expect(extended.NumRows()).To(Equal(5))
		for i := 0; i < prev.NumRows(); i++ {
			Expect(extended.Row(i)).To(Equal(prev.Row(i)))
		}

		// new points avoid the previous ones
		Expect(minPairwise(points(extended, "x"))).To(BeNumerically(">", 0))
	})

	It("fails when the pool cannot supply the request", func() {
		s := bcSpec(3, 10, 5, oneD(0, 1))
		smp, err := sampler.New(s)
		Expect(err).NotTo(HaveOccurred())

		_, err = smp.Generate(nil)
		var genErr *sampler.GenerationError
		Expect(errors.As(err, &genErr)).To(BeTrue(), "expected GenerationError, got %v", err)
	})

	It("rejects an inverted range", func() {
		s := &spec.Spec{
			Type:       spec.KindBestCandidate,
			NumSamples: 3,
			Parameters: []spec.Parameter{
				{Name: "x", Min: 10, Max: 5, HasMin: true, HasMax: true, Weight: 1},
			},
		}
		smp, err := sampler.New(s)
		Expect(err).NotTo(HaveOccurred())

		_, err = smp.Generate(nil)
		var specErr *sampler.SpecificationError
		Expect(errors.As(err, &specErr)).To(BeTrue(), "expected SpecificationError, got %v", err)
	})

	It("improves spread as the candidate pool grows", func() {
		// statistical, averaged over seeds: not a strict per-run inequality
		var small, large float64
		const runs = 25
		for seed := int64(0); seed < runs; seed++ {
			tight := generate(bcSpec(seed, 4, 8, oneD(0, 1)), nil)
			loose := generate(bcSpec(seed, 4, 400, oneD(0, 1)), nil)
			small += minPairwise(points(tight, "x"))
			large += minPairwise(points(loose, "x"))
		}
		Expect(large / runs).To(BeNumerically(">", small/runs))
	})

	It("weights distances per column", func() {
		// b spans the same normalized range but carries no weight, so
		// selection spreads along a and the min gap in a stays large
		params := []spec.Parameter{
			{Name: "a", Min: 0, Max: 1, HasMin: true, HasMax: true, Weight: 1},
			{Name: "b", Min: 0, Max: 1, HasMin: true, HasMax: true, Weight: 0},
		}
		tbl := generate(bcSpec(11, 3, 500, params), nil)

		Expect(minPairwise(points(tbl, "a"))).To(BeNumerically(">", 0.2))
	})
})
