package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"lookalike/internal/config"
	"lookalike/internal/hunt"
	"lookalike/internal/report"
	"lookalike/internal/resolution"
	"lookalike/pkg/domain"
	"lookalike/pkg/logger"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// readSeeds returns the non-empty lines of r, ignoring "#" comments.
func readSeeds(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read seeds: %w", err)
	}

	return lo.FilterMap(lines, func(line string, _ int) (string, bool) {
		line, _, _ = strings.Cut(line, "#")
		line = strings.TrimSpace(line)

		return line, line != ""
	}), nil
}

// seedsFrom merges positional seeds with the ones listed in path ("-" is stdin).
func seedsFrom(args []string, path string) ([]string, error) {
	seeds := append([]string(nil), args...)
	if path == "" {
		return seeds, nil
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open seed file: %w", err)
		}
		defer f.Close()
		r = f
	}

	fromFile, err := readSeeds(r)
	if err != nil {
		return nil, err
	}

	return append(seeds, fromFile...), nil
}

// applyHuntFlags overrides the hunt and resolver defaults of cfg with the
// flags that were explicitly set.
func applyHuntFlags(cmd *cobra.Command, cfg config.Config) config.Config {
	flags := cmd.Flags()
	if flags.Changed("concurrency") {
		cfg.Hunt.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("timeout") {
		cfg.Hunt.Timeout, _ = flags.GetDuration("timeout")
	}
	if flags.Changed("qps") {
		cfg.Hunt.QPS, _ = flags.GetFloat64("qps")
	}
	if flags.Changed("dedupe") {
		cfg.Hunt.Dedupe, _ = flags.GetBool("dedupe")
	}
	if flags.Changed("strategies") {
		cfg.Hunt.Strategies, _ = flags.GetStringSlice("strategies")
	}
	if flags.Changed("zones") {
		cfg.Hunt.Zones, _ = flags.GetStringSlice("zones")
	}
	if flags.Changed("resolver") {
		cfg.Resolver.Kind, _ = flags.GetString("resolver")
	}
	if flags.Changed("server") {
		cfg.Resolver.Servers, _ = flags.GetStringSlice("server")
	}

	return cfg
}

func newProgressBar(total int) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("resolving"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func runHunt(ctx context.Context, cmd *cobra.Command, cfg config.Config, seeds []string) error {
	flags := cmd.Flags()
	formatName, _ := flags.GetString("format")
	dryRun, _ := flags.GetBool("dry-run")
	progress, _ := flags.GetBool("progress")
	noColor, _ := flags.GetBool("no-color")

	format, err := report.ParseFormat(formatName)
	if err != nil {
		return err //nolint: wrapcheck
	}
	useColor := !noColor && !color.NoColor
	out := report.NewWriter(os.Stdout, report.Options{Format: format, Color: useColor})

	var bar *progressbar.ProgressBar
	opts := []resolution.Option{}
	if progress {
		opts = append(opts,
			resolution.WithStartHook(func(total int) { bar = newProgressBar(total) }),
			resolution.WithObserver(func(domain.Outcome) {
				if bar != nil {
					_ = bar.Add(1)
				}
			}),
		)
	}
	hunter, err := newHunter(&cfg, opts...)
	if err != nil {
		return err
	}

	req := hunt.Request{Keywords: seeds}

	if dryRun {
		candidates, err := hunter.Candidates(ctx, req)
		if err != nil {
			return err //nolint: wrapcheck
		}

		return out.Candidates(candidates) //nolint: wrapcheck
	}

	rep, err := hunter.Hunt(ctx, req)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return err //nolint: wrapcheck
	}

	if err := out.Report(rep); err != nil {
		return err //nolint: wrapcheck
	}
	if format == report.FormatText {
		summary := report.NewWriter(os.Stderr, report.Options{Color: useColor})

		return summary.Summary(rep.Summary) //nolint: wrapcheck
	}

	return nil
}

func huntCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hunt [keyword...]",
		Short: "Generates lookalike domains of the keywords and prints the registered ones",
		Example: `  lookalike hunt ozon
  lookalike hunt --zones com,ru --format json ozon
  lookalike hunt --file brands.txt --progress`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			file, _ := cmd.Flags().GetString("file")
			seeds, err := seedsFrom(args, file)
			if err != nil {
				return err
			}

			if err := runHunt(ctx, cmd, applyHuntFlags(cmd, *cfg), seeds); err != nil {
				logger.Error(ctx, "hunt failed", zap.Error(err))

				return err
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringP("file", "f", "", "Read keywords from a file, one per line (- for stdin)")
	flags.StringSlice("zones", nil, "Zones to look up, e.g. com,ru (default: built-in list)")
	flags.StringSlice("strategies", cfg.Hunt.Strategies, "Variant strategies: append, homoglyph, split, delete (default: all)")
	flags.Bool("dedupe", false, "Look up each candidate domain only once")
	flags.StringP("format", "o", string(report.FormatText), "Output format: text, json or yaml")
	flags.Bool("dry-run", false, "Print candidate domains without resolving them")
	flags.Bool("progress", false, "Show a progress bar on stderr")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Int("concurrency", cfg.Hunt.Concurrency, "Maximum lookups in flight")
	flags.Duration("timeout", cfg.Hunt.Timeout, "Timeout of a single lookup")
	flags.Float64("qps", cfg.Hunt.QPS, "Maximum lookups started per second (0 for no cap)")
	flags.String("resolver", cfg.Resolver.Kind, "Resolver kind: dns or system")
	flags.StringSlice("server", cfg.Resolver.Servers, "Upstream DNS servers for the dns resolver")

	return cmd
}
