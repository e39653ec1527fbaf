package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/internal/mathkit"
	"github.com/adamluzsi/mixedproduct/iterators"
	mapset "github.com/deckarep/golang-set/v2"
)

// Run streams the product of the configured sequences to w.
func Run(ctx context.Context, c Config, w io.Writer) (err error) {
	r, err := NewRenderer(w, c.Format, c.Separator)
	if err != nil {
		return err
	}
	seqs, err := BuildAll(c.Sequences)
	if err != nil {
		return err
	}

	slog.Debug("Starting product.", "sequences", len(seqs), "format", c.Format, "limit", c.Limit)
	p := mixedproduct.Of(seqs...)
	defer func() {
		err = errors.Join(err, p.Close())
	}()

	var check *checker
	if c.Check {
		check = newChecker()
	}

	var count uint64
	it := iterators.Limit[[]string](p, c.Limit)
	for it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		comb := it.Value()
		if check != nil {
			if err := check.add(comb); err != nil {
				return err
			}
		}
		if err := r.Render(comb); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		count++
	}
	if err := it.Err(); err != nil {
		return err
	}
	if err := r.Flush(); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	stats := p.Stats()
	if c.Stats {
		logStats(stats, count)
	}
	if check != nil && p.Spent() {
		if err := check.complete(stats, count); err != nil {
			return err
		}
		slog.Info("Product checked.", "combinations", count)
	}
	slog.Debug("Product done.", "combinations", count, "ticks", stats.Ticks)
	return nil
}

func logStats(stats mixedproduct.Stats, count uint64) {
	for i, lvl := range stats.Levels {
		slog.Info("Sequence period.", "sequence", i, "length", lvl.Length, "period", lvl.Period)
	}
	slog.Info("Product period.", "period", stats.Period, "ticks", stats.Ticks, "combinations", count)
}

// checker verifies uniqueness while streaming, and completeness at the end.
type checker struct {
	seen mapset.Set[string]
}

func newChecker() *checker {
	return &checker{seen: mapset.NewThreadUnsafeSet[string]()}
}

func (c *checker) add(comb []string) error {
	if !c.seen.Add(strings.Join(comb, "\x1f")) {
		return fmt.Errorf("check: duplicate combination %q", comb)
	}
	return nil
}

func (c *checker) complete(stats mixedproduct.Stats, count uint64) error {
	if count == 0 {
		// an empty sequence ends the product before the others are measured
		return nil
	}
	expected := uint64(1)
	for i, lvl := range stats.Levels {
		var ok bool
		expected, ok = mathkit.MulUInt(expected, lvl.Length)
		if !ok {
			return fmt.Errorf("check: sequence %d: product size overflows", i)
		}
	}
	if expected != count {
		return fmt.Errorf("check: %d combinations, expected %d", count, expected)
	}
	return nil
}
