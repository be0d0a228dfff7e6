package verify

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/potswa/quickdecimal"
)

const (
	DefaultChunkSize     = 1 << 20
	DefaultMaxMismatches = 16
)

var (
	errInvalidRange     = errors.New("invalid range")
	errUnknownReference = errors.New("unknown reference")
)

// Mismatch describes a value the encoder got wrong.
type Mismatch struct {
	Value     uint32
	Reference string // name of the reference, or the violated rule
	Got       string
	Want      string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%v: got %q, want %q (%v)", m.Value, m.Got, m.Want, m.Reference)
}

// Check encodes n and compares the result with every reference.
// It also checks the rules that hold regardless of the reference:
// the length reported by [quickdecimal.Len] and the absence of leading zeros.
// It returns nil if all checks pass.
func Check(n uint32, refs ...Reference) *Mismatch {
	return newChecker(refs).check(n)
}

// checker holds the buffers of one worker, so that checking a value does
// not allocate unless it fails.
type checker struct {
	refs      []Reference
	got, want []byte
}

func newChecker(refs []Reference) *checker {
	return &checker{
		refs: refs,
		got:  make([]byte, quickdecimal.MaxLen),
		want: make([]byte, 0, 2*quickdecimal.MaxLen),
	}
}

func (c *checker) check(n uint32) *Mismatch {
	i, err := quickdecimal.PutUint32(c.got, n)
	if err != nil {
		return &Mismatch{Value: n, Reference: "capacity", Got: err.Error()}
	}
	g := c.got[:i]

	if l := quickdecimal.Len(n); l != i {
		return &Mismatch{Value: n, Reference: "length", Got: string(g), Want: fmt.Sprintf("%v digit(s)", l)}
	}
	if i > 1 && g[0] == '0' {
		return &Mismatch{Value: n, Reference: "leading zero", Got: string(g)}
	}

	for _, ref := range c.refs {
		c.want = ref.Append(c.want[:0], n)
		if !bytes.Equal(g, c.want) {
			return &Mismatch{Value: n, Reference: ref.Name(), Got: string(g), Want: string(c.want)}
		}
	}
	return nil
}

// CheckValues runs [Check] for each value and returns the mismatches found.
func CheckValues(values []uint32, refs ...Reference) []Mismatch {
	var mismatches []Mismatch
	c := newChecker(refs)
	for _, n := range values {
		if m := c.check(n); m != nil {
			mismatches = append(mismatches, *m)
		}
	}
	return mismatches
}

// Options configures [Run].
type Options struct {
	From, To      uint32      // inclusive range of values to check
	Workers       int         // number of goroutines, runtime.NumCPU() if not positive
	ChunkSize     uint32      // values per work item, DefaultChunkSize if zero
	References    []Reference // Strconv if empty
	MaxMismatches int         // mismatches kept in the report, DefaultMaxMismatches if not positive

	// Progress, if set, is called after every chunk with the number of
	// values checked so far. It is called concurrently from the workers.
	Progress func(done uint64)
}

// Report is the outcome of [Run].
type Report struct {
	From, To   uint32
	References []string
	Checked    uint64     // values checked
	Failed     uint64     // values that did not pass, including those not kept
	Mismatches []Mismatch // first mismatches by value, at most Options.MaxMismatches
	Elapsed    time.Duration
}

// Total returns the number of values in the range of the report.
func (r Report) Total() uint64 {
	return uint64(r.To) - uint64(r.From) + 1
}

// OK reports whether the whole range was checked without failures.
func (r Report) OK() bool {
	return r.Failed == 0 && r.Checked == r.Total()
}

type chunk struct {
	lo, hi uint64 // inclusive
}

// Run checks every value in [opts.From, opts.To] against the references,
// spreading the range over a pool of workers.
//
// Run stops early when ctx is done and returns the partial report
// together with the context error.
func Run(ctx context.Context, opts Options) (Report, error) {
	if opts.From > opts.To {
		return Report{}, fmt.Errorf("[%v, %v]: %w", opts.From, opts.To, errInvalidRange)
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = DefaultChunkSize
	}
	if len(opts.References) == 0 {
		opts.References = []Reference{Strconv{}}
	}
	if opts.MaxMismatches <= 0 {
		opts.MaxMismatches = DefaultMaxMismatches
	}

	report := Report{From: opts.From, To: opts.To}
	for _, ref := range opts.References {
		report.References = append(report.References, ref.Name())
	}

	Logger().Info("verification started",
		zap.Uint32("from", opts.From),
		zap.Uint32("to", opts.To),
		zap.Int("workers", opts.Workers),
		zap.Uint32("chunk_size", opts.ChunkSize),
		zap.Strings("references", report.References),
	)

	var (
		start   = time.Now()
		chunks  = make(chan chunk, opts.Workers)
		checked atomic.Uint64
		failed  atomic.Uint64
		mu      sync.Mutex
		wg      sync.WaitGroup
	)

	go func() {
		defer close(chunks)
		size := uint64(opts.ChunkSize)
		for lo := uint64(opts.From); lo <= uint64(opts.To); lo += size {
			hi := min(lo+size-1, uint64(opts.To))
			select {
			case chunks <- chunk{lo, hi}:
			case <-ctx.Done():
				return
			}
		}
	}()

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			chk := newChecker(opts.References)
			for c := range chunks {
				if ctx.Err() != nil {
					return
				}
				for v := c.lo; v <= c.hi; v++ {
					m := chk.check(uint32(v))
					if m == nil {
						continue
					}
					failed.Add(1)
					Logger().Warn("mismatch",
						zap.Uint32("value", m.Value),
						zap.String("reference", m.Reference),
						zap.String("got", m.Got),
						zap.String("want", m.Want),
					)
					mu.Lock()
					report.Mismatches = keep(append(report.Mismatches, *m), 2*opts.MaxMismatches, opts.MaxMismatches)
					mu.Unlock()
				}
				done := checked.Add(c.hi - c.lo + 1)
				Logger().Debug("chunk verified",
					zap.Uint64("from", c.lo),
					zap.Uint64("to", c.hi),
					zap.Uint64("done", done),
				)
				if opts.Progress != nil {
					opts.Progress(done)
				}
			}
		}()
	}

	wg.Wait()

	report.Mismatches = keep(report.Mismatches, 0, opts.MaxMismatches)
	report.Checked = checked.Load()
	report.Failed = failed.Load()
	report.Elapsed = time.Since(start)

	Logger().Info("verification finished",
		zap.Uint64("checked", report.Checked),
		zap.Uint64("failed", report.Failed),
		zap.Duration("elapsed", report.Elapsed),
	)

	if err := ctx.Err(); err != nil {
		return report, fmt.Errorf("verifying [%v, %v]: %w", opts.From, opts.To, err)
	}
	return report, nil
}

// keep sorts mismatches by value and truncates them to n once there are
// more than limit of them.
func keep(mismatches []Mismatch, limit, n int) []Mismatch {
	if len(mismatches) <= limit {
		return mismatches
	}
	slices.SortFunc(mismatches, func(a, b Mismatch) int {
		return cmp.Compare(a.Value, b.Value)
	})
	if len(mismatches) > n {
		mismatches = mismatches[:n]
	}
	return mismatches
}
