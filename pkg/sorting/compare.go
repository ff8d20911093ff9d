package sorting

import (
	"fmt"
	"math/rand/v2"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Algorithm names used as report keys.
const (
	AlgorithmPartition = "quick_sort"
	AlgorithmExchange  = "bubble_sort"
)

// Sample is a labelled numeric column to benchmark.
type Sample struct {
	Label  string
	Values []float64
}

// Result is one algorithm's timing on a sample.
type Result struct {
	Algorithm string        `json:"algorithm"`
	Elapsed   time.Duration `json:"elapsed_ns"`
}

// Comparison reports both algorithms on one sample. Faster is empty on a tie.
type Comparison struct {
	RunID   string        `json:"run_id"`
	Label   string        `json:"label"`
	Size    int           `json:"size"`
	Results []Result      `json:"results"`
	Faster  string        `json:"faster,omitempty"`
	Margin  time.Duration `json:"margin_ns"`
}

// Elapsed returns the timing recorded for algorithm, or false if it was not run.
func (c Comparison) Elapsed(algorithm string) (time.Duration, bool) {
	for _, r := range c.Results {
		if r.Algorithm == algorithm {
			return r.Elapsed, true
		}
	}
	return 0, false
}

// String renders the comparison the way the CLI prints it.
func (c Comparison) String() string {
	quick, _ := c.Elapsed(AlgorithmPartition)
	bubble, _ := c.Elapsed(AlgorithmExchange)
	verdict := "both algorithms took the same time"
	if c.Faster != "" {
		verdict = fmt.Sprintf("%s is faster by %.6f seconds", c.Faster, c.Margin.Seconds())
	}
	return fmt.Sprintf("%s (n=%d): quick_sort %.6fs, bubble_sort %.6fs; %s",
		c.Label, c.Size, quick.Seconds(), bubble.Seconds(), verdict)
}

// Benchmark runs both sorts over samples with a shared clock and pivot source.
type Benchmark struct {
	RunID string
	Clock Clock
	Rand  *rand.Rand
}

// NewBenchmark creates a benchmark tagged with a fresh run id. A zero seed
// gives non-reproducible pivot choices.
func NewBenchmark(seed uint64) (*Benchmark, error) {
	id, err := gonanoid.New()
	if err != nil {
		return nil, fmt.Errorf("generate run id: %w", err)
	}
	return &Benchmark{
		RunID: id,
		Clock: SystemClock,
		Rand:  NewRand(seed),
	}, nil
}

// Compare times both algorithms on independent copies of sample.Values.
// The caller's slice is never modified.
func (b *Benchmark) Compare(sample Sample) Comparison {
	quickInput := make([]float64, len(sample.Values))
	copy(quickInput, sample.Values)
	bubbleInput := make([]float64, len(sample.Values))
	copy(bubbleInput, sample.Values)

	quick := PartitionSort(quickInput, b.Rand, b.Clock)
	bubble := ExchangeSort(bubbleInput, b.Clock)

	c := Comparison{
		RunID: b.RunID,
		Label: sample.Label,
		Size:  len(sample.Values),
		Results: []Result{
			{Algorithm: AlgorithmPartition, Elapsed: quick.Elapsed},
			{Algorithm: AlgorithmExchange, Elapsed: bubble.Elapsed},
		},
	}
	switch diff := quick.Elapsed - bubble.Elapsed; {
	case diff < 0:
		c.Faster, c.Margin = AlgorithmPartition, -diff
	case diff > 0:
		c.Faster, c.Margin = AlgorithmExchange, diff
	}
	return c
}

// CompareAll runs Compare for every sample, in order.
func (b *Benchmark) CompareAll(samples []Sample) []Comparison {
	out := make([]Comparison, 0, len(samples))
	for _, s := range samples {
		out = append(out, b.Compare(s))
	}
	return out
}
