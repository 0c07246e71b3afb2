// Package changeset parses line-oriented operation scripts and applies them
// to a dictionary.
//
// Each non-blank line holds one operation:
//
//	put <key> <value>
//	remove <key>
//	get <key>
//	clear
//	dump
//
// Lines starting with '#' are comments. Values run to the end of the line
// and may contain spaces.
package changeset

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/metailurini/dictionary"
)

// Kind is the operation performed by an Op.
type Kind int

const (
	Put Kind = iota
	Remove
	Get
	Clear
	Dump
)

func (k Kind) String() string {
	switch k {
	case Put:
		return "put"
	case Remove:
		return "remove"
	case Get:
		return "get"
	case Clear:
		return "clear"
	case Dump:
		return "dump"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Op is a single parsed line.
type Op struct {
	Kind  Kind
	Key   string
	Value string
	Line  int
}

// Parse reads every operation from r.
func Parse(r io.Reader) ([]Op, error) {
	var ops []Op
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, err := parseLine(text)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", line)
		}
		op.Line = line
		ops = append(ops, op)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading changeset")
	}
	return ops, nil
}

func parseLine(text string) (Op, error) {
	verb, rest, _ := strings.Cut(text, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(verb) {
	case "put", "set":
		key, value, ok := strings.Cut(rest, " ")
		if !ok || key == "" {
			return Op{}, errors.Newf("put needs a key and a value: %q", text)
		}
		return Op{Kind: Put, Key: key, Value: strings.TrimSpace(value)}, nil
	case "remove", "delete", "del":
		if rest == "" || strings.Contains(rest, " ") {
			return Op{}, errors.Newf("remove needs exactly one key: %q", text)
		}
		return Op{Kind: Remove, Key: rest}, nil
	case "get":
		if rest == "" || strings.Contains(rest, " ") {
			return Op{}, errors.Newf("get needs exactly one key: %q", text)
		}
		return Op{Kind: Get, Key: rest}, nil
	case "clear":
		if rest != "" {
			return Op{}, errors.Newf("clear takes no arguments: %q", text)
		}
		return Op{Kind: Clear}, nil
	case "dump":
		if rest != "" {
			return Op{}, errors.Newf("dump takes no arguments: %q", text)
		}
		return Op{Kind: Dump}, nil
	default:
		return Op{}, errors.Newf("unknown operation %q", verb)
	}
}

// Options controls Apply.
type Options struct {
	// Out receives the results of get and dump. Nil discards them.
	Out io.Writer
	// Strict turns misses on get and remove into errors.
	Strict bool
	// Log receives progress and per-miss messages.
	Log zerolog.Logger
	// ProgressEvery logs a progress line every n operations; zero disables it.
	ProgressEvery int
}

// Stats summarises an Apply run.
type Stats struct {
	Applied  int
	Misses   int
	Duration time.Duration
}

// Apply runs ops against d in order. It stops at the first error, or when
// ctx is cancelled between operations.
func Apply(ctx context.Context, d dictionary.Dictionary[string, string], ops []Op, opts Options) (Stats, error) {
	out := opts.Out
	if out == nil {
		out = io.Discard
	}

	var stats Stats
	start := time.Now()
	since := start
	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}

		miss, err := applyOne(d, op, out)
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, errors.Wrapf(err, "line %d: %s", op.Line, op.Kind)
		}
		if miss {
			stats.Misses++
			opts.Log.Debug().Int("line", op.Line).Str("op", op.Kind.String()).Str("key", op.Key).Msg("key not found")
			if opts.Strict {
				stats.Duration = time.Since(start)
				return stats, errors.Wrapf(dictionary.ErrKeyNotFound, "line %d: %s %s", op.Line, op.Kind, op.Key)
			}
		}
		stats.Applied++

		if n := opts.ProgressEvery; n > 0 && (i+1)%n == 0 {
			opts.Log.Info().Msgf("applied %s ops in %s; %s entries",
				humanize.Comma(int64(i+1)),
				time.Since(since),
				humanize.Comma(int64(d.Len())))
			since = time.Now()
		}
	}
	stats.Duration = time.Since(start)
	return stats, nil
}

// applyOne reports miss when a get or remove targeted an absent key.
func applyOne(d dictionary.Dictionary[string, string], op Op, out io.Writer) (miss bool, err error) {
	switch op.Kind {
	case Put:
		d.Put(op.Key, op.Value)
	case Remove:
		if err := d.Remove(op.Key); err != nil {
			if errors.Is(err, dictionary.ErrKeyNotFound) {
				return true, nil
			}
			return false, err
		}
	case Get:
		v, err := d.Get(op.Key)
		if err != nil {
			if errors.Is(err, dictionary.ErrKeyNotFound) {
				_, werr := fmt.Fprintf(out, "%s\t<missing>\n", op.Key)
				return true, werr
			}
			return false, err
		}
		if _, err := fmt.Fprintf(out, "%s\t%s\n", op.Key, v); err != nil {
			return false, err
		}
	case Clear:
		d.Clear()
	case Dump:
		return false, WriteEntries(d, out)
	default:
		return false, errors.Newf("unknown operation %s", op.Kind)
	}
	return false, nil
}

// WriteEntries writes every entry of d as a "key\tvalue" line in ascending order.
func WriteEntries(d dictionary.Dictionary[string, string], out io.Writer) error {
	var werr error
	err := d.Ascend(func(key, value string) bool {
		_, werr = fmt.Fprintf(out, "%s\t%s\n", key, value)
		return werr == nil
	})
	if werr != nil {
		return werr
	}
	return err
}
