package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/adamluzsi/mixedproduct"
	"github.com/adamluzsi/mixedproduct/sequences"
	"github.com/adamluzsi/mixedproduct/sequences/boltseq"
)

// SourceConfig describes one input sequence of the product.
type SourceConfig struct {
	Kind   string   `mapstructure:"kind"`
	Values []string `mapstructure:"values"`
	From   string   `mapstructure:"from"`
	To     string   `mapstructure:"to"`
	Path   string   `mapstructure:"path"`
	Bucket string   `mapstructure:"bucket"`
}

// ParseSource reads the command line form of a source:
//
//	list:a,b,c
//	range:1..9
//	chars:a..z
//	file:PATH
//	bolt:PATH#BUCKET
func ParseSource(s string) (sc SourceConfig, err error) {
	kind, rest, ok := strings.Cut(s, ":")
	if !ok {
		return sc, fmt.Errorf("source %q: missing kind", s)
	}
	sc.Kind = kind
	switch kind {
	case "list":
		if rest != "" {
			sc.Values = strings.Split(rest, ",")
		}
	case "range", "chars":
		sc.From, sc.To, ok = strings.Cut(rest, "..")
		if !ok {
			return sc, fmt.Errorf("source %q: expected FROM..TO", s)
		}
	case "file":
		sc.Path = rest
	case "bolt":
		sc.Path, sc.Bucket, ok = strings.Cut(rest, "#")
		if !ok {
			return sc, fmt.Errorf("source %q: expected PATH#BUCKET", s)
		}
	default:
		return sc, fmt.Errorf("source %q: unknown kind %q", s, kind)
	}
	return sc, sc.check()
}

func (sc SourceConfig) check() error {
	switch sc.Kind {
	case "list":
	case "range":
		if _, _, err := sc.intBounds(); err != nil {
			return err
		}
	case "chars":
		if _, _, err := sc.charBounds(); err != nil {
			return err
		}
	case "file":
		if sc.Path == "" {
			return fmt.Errorf("file source: missing path")
		}
	case "bolt":
		if sc.Path == "" || sc.Bucket == "" {
			return fmt.Errorf("bolt source: missing path or bucket")
		}
	default:
		return fmt.Errorf("unknown source kind %q", sc.Kind)
	}
	return nil
}

func (sc SourceConfig) intBounds() (from, to int, err error) {
	from, err = strconv.Atoi(strings.TrimSpace(sc.From))
	if err != nil {
		return 0, 0, fmt.Errorf("range source: from: %w", err)
	}
	to, err = strconv.Atoi(strings.TrimSpace(sc.To))
	if err != nil {
		return 0, 0, fmt.Errorf("range source: to: %w", err)
	}
	return from, to, nil
}

func (sc SourceConfig) charBounds() (from, to rune, err error) {
	single := func(s string) (rune, bool) {
		r, size := utf8.DecodeRuneInString(s)
		return r, r != utf8.RuneError && size == len(s)
	}
	from, okFrom := single(sc.From)
	to, okTo := single(sc.To)
	if !okFrom || !okTo {
		return 0, 0, fmt.Errorf("chars source: %q..%q are not single characters", sc.From, sc.To)
	}
	return from, to, nil
}

// Build makes the sequence the source describes.
// A bolt sequence is owned, so closing the product closes its file.
func (sc SourceConfig) Build() (mixedproduct.Sequence[string], error) {
	if err := sc.check(); err != nil {
		return nil, err
	}
	switch sc.Kind {
	case "range":
		from, to, _ := sc.intBounds()
		return sequences.Map(sequences.Int(from, to), func(n int) (string, error) {
			return strconv.Itoa(n), nil
		}), nil
	case "chars":
		from, to, _ := sc.charBounds()
		return sequences.Map(sequences.Char(from, to), func(r rune) (string, error) {
			return string(r), nil
		}), nil
	case "file":
		return sequences.Lines(sc.Path), nil
	case "bolt":
		storage, err := boltseq.Open(sc.Path, &boltseq.Options{
			ReadOnly: true,
			Timeout:  boltseq.DefaultOptions.Timeout,
			Attempts: boltseq.DefaultOptions.Attempts,
		})
		if err != nil {
			return nil, err
		}
		return mixedproduct.Own[string](storage.Sequence(sc.Bucket)), nil
	default:
		return sequences.Slice(sc.Values...), nil
	}
}

// BuildAll makes the sequences of all sources.
// When one fails, the already opened ones are closed.
func BuildAll(scs []SourceConfig) ([]mixedproduct.Sequence[string], error) {
	var seqs []mixedproduct.Sequence[string]
	for i, sc := range scs {
		seq, err := sc.Build()
		if err != nil {
			for _, seq := range seqs {
				if closer, ok := mixedproduct.Borrow(seq).(io.Closer); ok {
					_ = closer.Close()
				}
			}
			return nil, fmt.Errorf("sequence %d: %w", i, err)
		}
		seqs = append(seqs, seq)
	}
	return seqs, nil
}
