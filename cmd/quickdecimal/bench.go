package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"testing"

	"github.com/potswa/quickdecimal"
	"github.com/potswa/quickdecimal/internal/config"
	"github.com/potswa/quickdecimal/internal/verify"
)

const strconvBench = "strconv.AppendUint"

type benchResult struct {
	name       string
	nsPerValue float64
}

type encoder struct {
	name   string
	append func(dst []byte, n uint32) []byte
}

var encoders = []encoder{
	{"quickdecimal.AppendUint32", quickdecimal.AppendUint32},
	{strconvBench, verify.Strconv{}.Append},
	{"division", verify.Division{}.Append},
}

// benchSamples returns values whose digit counts are spread evenly,
// as in log lines where small counters are more common than large ones.
func benchSamples(n int, seed int64) []uint32 {
	r := rand.New(rand.NewSource(seed))
	values := make([]uint32, n)
	for i := range values {
		values[i] = r.Uint32() >> r.Intn(32)
	}
	return values
}

// benchEncoder measures the average time an encoder takes per value.
func benchEncoder(enc encoder, values []uint32) benchResult {
	res := testing.Benchmark(func(b *testing.B) {
		buf := make([]byte, 0, quickdecimal.MaxLen)
		for i := 0; i < b.N; i++ {
			for _, v := range values {
				buf = enc.append(buf[:0], v)
			}
		}
	})
	ns := 0.0
	if res.N > 0 {
		ns = float64(res.T.Nanoseconds()) / float64(res.N) / float64(len(values))
	}
	return benchResult{name: enc.name, nsPerValue: ns}
}

func runBench(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	samples := fs.Int("samples", 0, "values per benchmark iteration (default from config, 1024)")
	seed := fs.String("seed", "", "seed of the sampled values (default from config, 1)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *samples != 0 {
		cfg.Bench.Samples = *samples
	}
	if *seed != "" {
		s, err := strconv.ParseInt(*seed, 10, 64)
		if err != nil {
			return fmt.Errorf("seed %q: %w", *seed, err)
		}
		cfg.Bench.Seed = s
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	testing.Init()
	values := benchSamples(cfg.Bench.Samples, cfg.Bench.Seed)
	results := make([]benchResult, 0, len(encoders))
	for _, enc := range encoders {
		results = append(results, benchEncoder(enc, values))
	}

	fmt.Fprintln(stdout, renderBench(cfg.Bench.Samples, results))
	return nil
}
