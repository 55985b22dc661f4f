package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Andreeduardopp/stockquery/pkg/stockquery/columns"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/config"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/filter"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/pipeline"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/preset"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/render"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/source"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/tui"
	"github.com/Andreeduardopp/stockquery/pkg/stockquery/types"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	cfgFile     string
	verbose     bool
	ticker      string
	preset      string
	start       string
	end         string
	file        string
	only        string
	interactive bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	v := config.New()
	log := zerolog.Nop()

	cmd := &cobra.Command{
		Use:   "stockquery [file.yaml|dir]",
		Short: "Build normalized stock queries from a ticker and a date range",
		Long: `Build normalized stock queries from a ticker and a date range.

A query is a ticker (trimmed, uppercase) plus a yyyy-MM-dd start and end date.
The range comes from a preset (1m, 1y, 5y) ending today, or from explicit
--start/--end dates under the custom preset.

Examples:
    stockquery -t aapl
    stockquery -t petr4 -p 5y --format json
    stockquery -t msft --start 2024-01-02 --end 2024-03-28
    stockquery queries.yaml --only 'PETR*'
    stockquery -i`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.InfoLevel
			if f.verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
				Level(level).With().Timestamp().Logger()

			// .env is optional; the environment may already be set.
			if err := godotenv.Load(); err != nil {
				log.Debug().Err(err).Msg(".env not loaded")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, f.cfgFile)
			if err != nil {
				return err
			}
			log.Debug().Str("preset", string(cfg.Preset)).Str("format", cfg.Format).Msg("config loaded")

			if len(args) == 1 {
				if f.file != "" {
					return errors.New("give the batch file either as an argument or with --file, not both")
				}
				f.file = args[0]
			}

			renderer, err := render.New(cfg.Format)
			if err != nil {
				return err
			}
			cols, err := columns.Compute(cfg.Columns)
			if err != nil {
				return err
			}
			maxWidth := cfg.MaxColWidth
			if maxWidth == 0 {
				if w := detectTerminalWidth(); w > 0 && len(cols) > 0 {
					maxWidth = max(w/len(cols), 10)
				}
			}
			opts := pipeline.ExecuteOptions{
				Columns:       cols,
				DefaultPreset: cfg.Preset,
				Color:         cfg.Color,
				PrettyJSON:    cfg.Pretty,
				MaxColWidth:   maxWidth,
			}

			if f.interactive {
				m, err := interactiveModel(cfg, f)
				if err != nil {
					return err
				}
				return runInteractive(cmd.Context(), m, renderer, stdout, opts)
			}

			runner := &pipeline.Runner{Renderer: renderer, Writer: stdout, Logger: log}
			var spec any
			switch {
			case f.file != "":
				if f.ticker != "" || f.start != "" || f.end != "" {
					return errors.New("--ticker/--start/--end cannot be combined with a batch file")
				}
				runner.Source = source.YAMLSource{}
				spec = f.file
			case f.ticker != "":
				runner.Source = source.Static{{
					Name:   "cli",
					Ticker: f.ticker,
					Preset: f.preset,
					Start:  f.start,
					End:    f.end,
				}}
			default:
				return errors.New("requires a ticker (--ticker), a batch file, or --interactive")
			}

			if f.only != "" {
				flt, err := filter.Parse(f.only)
				if err != nil {
					return err
				}
				opts.Filter = flt
			}
			return runner.Execute(cmd.Context(), spec, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.cfgFile, "config", "", "config file (default is ./stockquery.yaml)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "verbose output")

	fl := cmd.Flags()
	fl.StringVarP(&f.ticker, "ticker", "t", "", "stock ticker, e.g. AAPL")
	fl.StringVarP(&f.preset, "preset", "p", "", "date range preset: 1m, 1y, 5y or custom (default from config, 1m)")
	fl.StringVar(&f.start, "start", "", "custom start date, yyyy-MM-dd")
	fl.StringVar(&f.end, "end", "", "custom end date, yyyy-MM-dd (default today)")
	fl.StringVarP(&f.file, "file", "f", "", "YAML file or directory of queries to replay")
	fl.StringVar(&f.only, "only", "", "only tickers matching: comma list, glob, /regex/ or substring")
	fl.BoolVarP(&f.interactive, "interactive", "i", false, "fill the form in the terminal")
	fl.String("format", "table", "output format: table, json or line")
	fl.StringSlice("columns", nil, "table columns (name, input, preset, ticker, start, end, status)")
	fl.Bool("pretty", false, "indent JSON output")
	fl.Bool("color", true, "colorize table output")
	fl.Int("max-col-width", 0, "wrap table cells at this width (0 = fit terminal)")

	if err := bindFlags(v, fl, configFlags); err != nil {
		panic(err)
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd
}

// configFlags maps config keys to the flags that override them.
var configFlags = [][2]string{
	{"format", "format"},
	{"columns", "columns"},
	{"pretty", "pretty"},
	{"color", "color"},
	{"max_col_width", "max-col-width"},
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet, pairs [][2]string) error {
	for _, p := range pairs {
		if err := v.BindPFlag(p[0], fs.Lookup(p[1])); err != nil {
			return fmt.Errorf("bind flag %q to %q: %w", p[1], p[0], err)
		}
	}
	return nil
}

// interactiveModel builds the terminal form seeded from the flags. The
// preset flag wins over the configured default. Dates are picked in the form.
func interactiveModel(cfg config.Config, f flags) (tui.Model, error) {
	switch {
	case f.file != "":
		return tui.Model{}, errors.New("--interactive cannot be combined with a batch file")
	case f.start != "" || f.end != "":
		return tui.Model{}, errors.New("--start/--end cannot be combined with --interactive")
	}
	p := cfg.Preset
	if f.preset != "" {
		var err error
		if p, err = preset.Parse(f.preset); err != nil {
			return tui.Model{}, err
		}
	}
	return tui.New().WithTicker(f.ticker).WithPreset(p), nil
}

// runInteractive runs the terminal form and renders the submitted query.
// Quitting without a search is not an error.
func runInteractive(ctx context.Context, m tui.Model, r render.Renderer, w io.Writer, opts pipeline.ExecuteOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run form: %w", err)
	}
	done, ok := final.(tui.Model)
	if !ok {
		return fmt.Errorf("unexpected model %T", final)
	}
	q, ok := done.Result()
	if !ok {
		return nil
	}
	res := types.Result{Request: types.Request{Name: "interactive", Ticker: q.Ticker}, Query: &q}
	return r.Render(w, []types.Result{res}, render.RenderOptions{
		Columns:     opts.Columns,
		Color:       opts.Color,
		PrettyJSON:  opts.PrettyJSON,
		MaxColWidth: opts.MaxColWidth,
	})
}
