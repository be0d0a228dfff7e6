package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term"

	"github.com/potswa/quickdecimal"
	"github.com/potswa/quickdecimal/internal/config"
	"github.com/potswa/quickdecimal/internal/verify"
)

// uint32Flag is a flag.Value parsed with quickdecimal.Parse.
type uint32Flag struct {
	v   uint32
	set bool
}

func (f *uint32Flag) String() string { return quickdecimal.FormatUint32(f.v) }

func (f *uint32Flag) Set(s string) error {
	v, err := quickdecimal.Parse(s)
	if err != nil {
		return err
	}
	f.v, f.set = v, true
	return nil
}

func runVerify(args []string, stdout io.Writer) error {
	var from, to uint32Flag

	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to a YAML config file")
	fs.Var(&from, "from", "first value to check (default from config, 0)")
	fs.Var(&to, "to", "last value to check (default from config, 4294967295)")
	workers := fs.Int("workers", -1, "number of workers (default from config, one per CPU)")
	refs := fs.String("ref", "", "comma-separated references: "+strings.Join(verify.ReferenceNames(), ", "))
	boundaries := fs.Bool("boundaries", false, "check only the values around power-of-ten and bit-length crossings")
	radius := fs.Uint("radius", 64, "neighbourhood checked around each boundary")
	plain := fs.Bool("plain", false, "log progress instead of drawing a progress bar")
	if err := fs.Parse(args); err != nil {
		return err
	}

	// ── Config ───────────────────────────────────────────────────────
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if from.set {
		cfg.Verify.From = from.v
	}
	if to.set {
		cfg.Verify.To = to.v
	}
	if *workers >= 0 {
		cfg.Verify.Workers = *workers
	}
	if *refs != "" {
		cfg.Verify.References = strings.Split(*refs, ",")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	references, err := verify.ReferencesByName(cfg.Verify.References)
	if err != nil {
		return err
	}

	// ── Logger ───────────────────────────────────────────────────────
	log, err := cfg.Log.Logger()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()
	interactive := !*plain && term.IsTerminal(int(os.Stdout.Fd()))
	if interactive {
		// Keep the progress bar readable.
		verify.SetLogger(log.WithOptions(zap.IncreaseLevel(zapcore.ErrorLevel)))
	} else {
		verify.SetLogger(log)
	}

	if *boundaries {
		values := verify.Neighbourhood(verify.Boundaries(), uint32(min(*radius, 1<<20)))
		mismatches := verify.CheckValues(values, references...)
		fmt.Fprintln(stdout, renderBoundaries(len(values), cfg.Verify.References, mismatches))
		if len(mismatches) > 0 {
			return errMismatch
		}
		return nil
	}

	// ── Run ──────────────────────────────────────────────────────────
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := verify.Options{
		From:          cfg.Verify.From,
		To:            cfg.Verify.To,
		Workers:       cfg.Verify.Workers,
		ChunkSize:     cfg.Verify.ChunkSize,
		References:    references,
		MaxMismatches: cfg.Verify.MaxMismatches,
	}
	total := uint64(opts.To) - uint64(opts.From) + 1

	var report verify.Report
	if interactive {
		report, err = runWithProgress(ctx, opts, total)
	} else {
		opts.Progress = logProgress(log, total)
		report, err = verify.Run(ctx, opts)
	}
	fmt.Fprintln(stdout, renderReport(report))
	if err != nil {
		return err
	}
	if !report.OK() {
		return fmt.Errorf("%v of %v value(s): %w", report.Failed, report.Checked, errMismatch)
	}
	return nil
}

// logProgress returns a progress callback that logs every 5% of total.
func logProgress(log *zap.Logger, total uint64) func(done uint64) {
	step := max(total/20, 1)
	var next atomic.Uint64
	next.Store(step)
	return func(done uint64) {
		n := next.Load()
		if done < n || !next.CompareAndSwap(n, done-done%step+step) {
			return
		}
		log.Info("progress",
			zap.Uint64("done", done),
			zap.Uint64("total", total),
			zap.String("percent", fmt.Sprintf("%.0f%%", 100*float64(done)/float64(total))),
		)
	}
}
