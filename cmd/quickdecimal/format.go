package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/potswa/quickdecimal"
)

// runFormat writes the canonical digits of every argument, or of every
// line of stdin when there are no arguments.
func runFormat(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	sep := fs.String("sep", "\n", "separator written after each value")
	if err := fs.Parse(args); err != nil {
		return err
	}

	w := bufio.NewWriter(stdout)
	buf := make([]byte, 0, quickdecimal.MaxLen+len(*sep))
	put := func(s string) error {
		n, err := quickdecimal.Parse(s)
		if err != nil {
			return fmt.Errorf("value %q: %w", s, err)
		}
		buf = quickdecimal.AppendUint32(buf[:0], n)
		buf = append(buf, *sep...)
		_, err = w.Write(buf)
		return err
	}

	if fs.NArg() > 0 {
		for _, s := range fs.Args() {
			if err := put(s); err != nil {
				return err
			}
		}
		return w.Flush()
	}

	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		if err := put(s); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	return w.Flush()
}
