// Command dictctl applies a changeset file to an in-memory dictionary and
// reports the resulting shape.
package main

import (
	"io"
	"os"
	"os/signal"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/metailurini/dictionary"
	"github.com/metailurini/dictionary/internal/changeset"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		backingName   string
		logLevel      string
		strict        bool
		dumpMetrics   bool
		progressEvery int
	)
	cmd := &cobra.Command{
		Use:          "dictctl [changeset-file|-]",
		Short:        "Applies put/remove/get/clear/dump operations to an ordered dictionary.",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&backingName, "backing", "tree", "Backing structure: tree or list.")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail on get or remove of an absent key.")
	cmd.Flags().BoolVar(&dumpMetrics, "metrics", false, "Print collected metrics in Prometheus text format after the run.")
	cmd.Flags().IntVar(&progressEvery, "progress-every", 100_000, "Log progress every n operations; 0 disables it.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			return errors.Wrapf(err, "parsing --log-level")
		}
		log := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
			Level(level).
			With().Timestamp().Logger()

		backing, err := dictionary.ParseBacking(backingName)
		if err != nil {
			return err
		}

		in, closeIn, err := openInput(cmd, args[0])
		if err != nil {
			return err
		}
		defer closeIn()

		ops, err := changeset.Parse(in)
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		metrics := dictionary.NewMetrics(reg, "dictctl")
		d := dictionary.New[string, string](dictionary.Natural[string](),
			dictionary.WithBacking(backing),
			dictionary.WithMetrics(metrics),
			dictionary.WithLogger(log),
		)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		log.Info().Str("backing", backing.String()).Str("ops", humanize.Comma(int64(len(ops)))).Msg("applying changeset")
		stats, err := changeset.Apply(ctx, d, ops, changeset.Options{
			Out:           cmd.OutOrStdout(),
			Strict:        strict,
			Log:           log,
			ProgressEvery: progressEvery,
		})
		if err != nil {
			return err
		}

		ev := log.Info().
			Str("applied", humanize.Comma(int64(stats.Applied))).
			Str("misses", humanize.Comma(int64(stats.Misses))).
			Str("entries", humanize.Comma(int64(d.Len()))).
			Dur("duration", stats.Duration)
		if height, ok := treeHeight(d); ok {
			ev = ev.Int("height", height)
		}
		ev.Msg("changeset applied")

		if dumpMetrics {
			return writeMetrics(cmd.OutOrStdout(), reg)
		}
		return nil
	}
	return cmd
}

func openInput(cmd *cobra.Command, name string) (io.Reader, func(), error) {
	if name == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "opening changeset")
	}
	return f, func() { _ = f.Close() }, nil
}

// treeHeight reports the height when the dictionary is backed by a Tree.
func treeHeight(d dictionary.Dictionary[string, string]) (int, bool) {
	for {
		u, ok := d.(interface {
			Unwrap() dictionary.Dictionary[string, string]
		})
		if !ok {
			break
		}
		d = u.Unwrap()
	}
	t, ok := d.(*dictionary.Tree[string, string])
	if !ok {
		return 0, false
	}
	return t.Height(), true
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gathering metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return errors.Wrap(err, "writing metrics")
		}
	}
	return nil
}
