package verify

import (
	"context"
	"errors"
	"math"
	"os"
	"slices"
	"strconv"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// faulty is a reference that disagrees with the encoder on every value
// ending in 007.
type faulty struct{}

func (faulty) Name() string { return "faulty" }

func (faulty) Append(dst []byte, n uint32) []byte {
	if n%1000 == 7 {
		n++
	}
	return strconv.AppendUint(dst, uint64(n), 10)
}

func TestReferences(t *testing.T) {
	for _, ref := range references {
		for _, n := range Neighbourhood(Boundaries(), 3) {
			got := string(ref.Append([]byte("x"), n))
			want := "x" + strconv.FormatUint(uint64(n), 10)
			if got != want {
				t.Errorf("%v.Append(%v) = %q, want %q", ref.Name(), n, got, want)
			}
		}
	}
}

func TestReferenceByName(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		for _, name := range []string{"strconv", "apd", "division"} {
			ref, err := ReferenceByName(name)
			if err != nil {
				t.Errorf("ReferenceByName(%q) failed: %v", name, err)
				continue
			}
			if ref.Name() != name {
				t.Errorf("ReferenceByName(%q).Name() = %q", name, ref.Name())
			}
		}
		refs, err := ReferencesByName([]string{"division", "strconv"})
		if err != nil {
			t.Fatalf("ReferencesByName failed: %v", err)
		}
		if len(refs) != 2 || refs[0] != (Division{}) || refs[1] != (Strconv{}) {
			t.Errorf("ReferencesByName = %v, want [division strconv]", refs)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "fmt", "Strconv"}
		for _, name := range tests {
			_, err := ReferenceByName(name)
			if !errors.Is(err, errUnknownReference) {
				t.Errorf("ReferenceByName(%q) failed with %v, want %v", name, err, errUnknownReference)
			}
		}
		_, err := ReferencesByName([]string{"strconv", "fmt"})
		if !errors.Is(err, errUnknownReference) {
			t.Errorf("ReferencesByName failed with %v, want %v", err, errUnknownReference)
		}
	})
}

func TestCheck(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		refs := []Reference{Strconv{}, APD{}, Division{}}
		for _, n := range Neighbourhood(Boundaries(), 16) {
			if m := Check(n, refs...); m != nil {
				t.Errorf("Check(%v) = %v", n, m)
			}
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		m := Check(1007, Strconv{}, faulty{})
		if m == nil {
			t.Fatalf("Check(1007) did not fail")
		}
		want := Mismatch{Value: 1007, Reference: "faulty", Got: "1007", Want: "1008"}
		if *m != want {
			t.Errorf("Check(1007) = %v, want %v", *m, want)
		}
	})
}

func TestCheckValues(t *testing.T) {
	got := CheckValues([]uint32{6, 7, 8, 1007, 2000}, faulty{})
	if len(got) != 2 || got[0].Value != 7 || got[1].Value != 1007 {
		t.Errorf("CheckValues = %v, want mismatches for 7 and 1007", got)
	}
}

func TestBoundaries(t *testing.T) {
	got := Boundaries()
	if !slices.IsSorted(got) {
		t.Errorf("Boundaries() is not sorted")
	}
	if len(slices.Compact(slices.Clone(got))) != len(got) {
		t.Errorf("Boundaries() has duplicates")
	}
	for _, n := range []uint32{
		0, 1, 2, 3, 9, 10, 99, 100, 254, 255, 256,
		999_999_999, 1_000_000_000,
		1<<31 - 2, 1<<31 - 1, 1 << 31,
		math.MaxUint32 - 1, math.MaxUint32,
	} {
		if _, ok := slices.BinarySearch(got, n); !ok {
			t.Errorf("Boundaries() does not contain %v", n)
		}
	}
}

func TestNeighbourhood(t *testing.T) {
	tests := []struct {
		values []uint32
		radius uint32
		want   []uint32
	}{
		{[]uint32{0}, 2, []uint32{0, 1, 2}},
		{[]uint32{10}, 1, []uint32{9, 10, 11}},
		{[]uint32{10, 11}, 1, []uint32{9, 10, 11, 12}},
		{[]uint32{math.MaxUint32}, 1, []uint32{math.MaxUint32 - 1, math.MaxUint32}},
		{[]uint32{5}, 0, []uint32{5}},
	}
	for _, tt := range tests {
		got := Neighbourhood(tt.values, tt.radius)
		if !slices.Equal(got, tt.want) {
			t.Errorf("Neighbourhood(%v, %v) = %v, want %v", tt.values, tt.radius, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var last atomic.Uint64
		opts := Options{
			From:       0,
			To:         200_000,
			Workers:    4,
			ChunkSize:  4096,
			References: []Reference{Strconv{}, Division{}},
			Progress: func(done uint64) {
				for {
					prev := last.Load()
					if done <= prev || last.CompareAndSwap(prev, done) {
						return
					}
				}
			},
		}
		report, err := Run(context.Background(), opts)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if !report.OK() {
			t.Errorf("Run reported %v failure(s): %v", report.Failed, report.Mismatches)
		}
		if report.Checked != 200_001 || report.Total() != 200_001 {
			t.Errorf("Run checked %v of %v value(s), want 200001", report.Checked, report.Total())
		}
		if got := last.Load(); got != 200_001 {
			t.Errorf("Progress reported %v at most, want 200001", got)
		}
		if !slices.Equal(report.References, []string{"strconv", "division"}) {
			t.Errorf("Run references = %v, want [strconv division]", report.References)
		}
	})

	t.Run("top of range", func(t *testing.T) {
		report, err := Run(context.Background(), Options{
			From:      math.MaxUint32 - 10_000,
			To:        math.MaxUint32,
			ChunkSize: 999,
		})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if !report.OK() || report.Checked != 10_001 {
			t.Errorf("Run checked %v value(s) with %v failure(s), want 10001 and 0", report.Checked, report.Failed)
		}
	})

	t.Run("mismatch", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		SetLogger(zap.New(core))
		t.Cleanup(func() { SetLogger(zap.NewNop()) })

		report, err := Run(context.Background(), Options{
			From:          0,
			To:            9_999,
			Workers:       3,
			ChunkSize:     100,
			References:    []Reference{faulty{}},
			MaxMismatches: 3,
		})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if report.OK() {
			t.Errorf("Run did not report a failure")
		}
		if report.Failed != 10 {
			t.Errorf("Run reported %v failure(s), want 10", report.Failed)
		}
		var got []uint32
		for _, m := range report.Mismatches {
			got = append(got, m.Value)
		}
		if want := []uint32{7, 1007, 2007}; !slices.Equal(got, want) {
			t.Errorf("Run mismatches = %v, want %v", got, want)
		}
		if n := logs.FilterMessage("mismatch").Len(); n != 10 {
			t.Errorf("Run logged %v mismatch(es), want 10", n)
		}
	})

	t.Run("cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		report, err := Run(ctx, Options{From: 0, To: math.MaxUint32, ChunkSize: 1024})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run failed with %v, want %v", err, context.Canceled)
		}
		if report.OK() || report.Checked != 0 {
			t.Errorf("Run checked %v value(s) after cancellation, want 0", report.Checked)
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := Run(context.Background(), Options{From: 2, To: 1})
		if !errors.Is(err, errInvalidRange) {
			t.Errorf("Run failed with %v, want %v", err, errInvalidRange)
		}
	})
}

// TestRun_Exhaustive checks all 2^32 values.
// It takes minutes, so it only runs with QUICKDECIMAL_EXHAUSTIVE=1.
func TestRun_Exhaustive(t *testing.T) {
	if os.Getenv("QUICKDECIMAL_EXHAUSTIVE") != "1" {
		t.Skip("set QUICKDECIMAL_EXHAUSTIVE=1 to check all 2^32 values")
	}
	report, err := Run(context.Background(), Options{From: 0, To: math.MaxUint32})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !report.OK() {
		t.Errorf("Run reported %v failure(s), first: %v", report.Failed, report.Mismatches)
	}
}
