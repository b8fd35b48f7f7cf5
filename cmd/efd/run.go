/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/xeonx/timeago"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/efdtools/efd-pis-cofins/efd"
	"github.com/efdtools/efd-pis-cofins/healthcheck"
	"github.com/efdtools/efd-pis-cofins/parser"
	csvsink "github.com/efdtools/efd-pis-cofins/sink/csv"
	"github.com/efdtools/efd-pis-cofins/sink/parquet"
	"github.com/efdtools/efd-pis-cofins/sink/postgres"
)

var (
	outDir          string
	sinkFormat      string
	dbURL           string
	healthCheckID   string
	excludeOutbound bool
	restrictCredit  bool
	excludeCST49    bool
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [file...]",
	Short: "Ingest SPED EFD-Contribuições files and apportion PIS/COFINS credits",
	Long: `run parses the given EFD-Contribuições files (in parallel, each
file on one worker of a pool sized to the CPU count), enriches every
fiscal line item, and writes the results to the configured sink: csv and
postgres receive the enriched-line, credit-reduction and
revenue-segregation tables; parquet receives the enriched-line table only.

When invoked with no file arguments, run launches an interactive wizard to
pick files from the current directory instead of failing.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()
		runID := uuid.New()

		files := args
		if len(files) == 0 {
			files = pickFilesInteractively()
		}
		if len(files) == 0 {
			log.Fatal().Msg("no input files selected")
		}

		if healthCheckID != "" {
			if err := healthcheck.Start(healthCheckID); err != nil {
				log.Warn().Err(err).Msg("healthcheck start ping failed")
			}
		}

		progressCh := make(chan parser.Progress, 64)
		opts := efd.Options{
			Files:                   files,
			ExcludeOutbound:         excludeOutbound,
			RestrictToCreditBearing: restrictCredit,
			ExcludeCST49FromRevenue: excludeCST49,
			OutputDir:               outDir,
			Progress:                progressCh,
		}

		result, runErr := runWithProgress(ctx, opts, progressCh)

		if runErr != nil {
			log.Error().Err(runErr).Msg("one or more files failed")
			if healthCheckID != "" {
				if err := healthcheck.Fail(healthCheckID, runErr.Error()); err != nil {
					log.Warn().Err(err).Msg("healthcheck fail ping failed")
				}
			}
		} else if healthCheckID != "" {
			if err := healthcheck.Success(healthCheckID); err != nil {
				log.Warn().Err(err).Msg("healthcheck success ping failed")
			}
		}

		if err := writeResult(ctx, result); err != nil {
			log.Fatal().Err(err).Msg("writing result failed")
		}

		fmt.Println(renderReport(runID, result))
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&outDir, "out", ".", "output directory for csv/parquet sinks")
	runCmd.Flags().StringVar(&sinkFormat, "format", "csv", "output sink: csv, parquet, or postgres")
	runCmd.Flags().StringVar(&dbURL, "db", "", "PostgreSQL connection string, required for --format postgres")
	runCmd.Flags().StringVar(&healthCheckID, "healthcheck-id", "", "healthchecks.io check id to ping around the run")
	runCmd.Flags().BoolVar(&excludeOutbound, "exclude-outbound", false, "exclude outbound-CST lines from the enriched-line table")
	runCmd.Flags().BoolVar(&restrictCredit, "credit-bearing-only", false, "restrict the enriched-line table to rows that enter the credit reduction")
	runCmd.Flags().BoolVar(&excludeCST49, "exclude-cst49-from-revenue", false, "exclude CST 49 from the revenue segregation base")
}

// pickFilesInteractively offers a multi-select over *.txt files in the
// current directory, grounded on subscribe.go's huh.NewForm wizard shape.
func pickFilesInteractively() []string {
	entries, err := filepath.Glob("*.txt")
	if err != nil || len(entries) == 0 {
		log.Fatal().Msg("no .txt files found in current directory; pass file paths explicitly")
	}

	options := make([]huh.Option[string], 0, len(entries))
	for _, e := range entries {
		info, statErr := os.Stat(e)
		label := e
		if statErr == nil {
			label = fmt.Sprintf("%s (%s, %s)", e, humanize.Bytes(uint64(info.Size())), timeago.English.Format(info.ModTime()))
		}
		options = append(options, huh.NewOption(label, e))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Which files should be ingested?").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		log.Fatal().Err(err).Msg("failed to run file-selection wizard")
	}
	return selected
}

// progressModel renders one bubbles/progress bar, advanced as bytes from
// every file's reader are reported on progressCh. There is no example of
// bubbletea usage anywhere in the retrieval pack; this follows the
// package's own documented Model/Update/View contract.
type progressModel struct {
	bar      progress.Model
	fraction float64
	done     bool
}

type progressMsg float64
type progressDoneMsg struct{}

func (m progressModel) Init() tea.Cmd { return nil }

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.fraction = float64(msg)
		return m, nil
	case progressDoneMsg:
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	return m.bar.ViewAs(m.fraction) + "\n"
}

// runWithProgress drives efd.Run in a goroutine while a bubbletea program
// renders progressCh in the foreground, matching the "rendering lives
// outside the core" split spec.md §5/§6 calls for.
func runWithProgress(ctx context.Context, opts efd.Options, progressCh chan parser.Progress) (*efd.Result, error) {
	totalFiles := float64(len(opts.Files))
	p := tea.NewProgram(progressModel{bar: progress.New(progress.WithDefaultGradient())})

	go func() {
		seen := map[string]bool{}
		for pr := range progressCh {
			seen[pr.File] = true
			var frac float64
			if pr.TotalBytes > 0 {
				frac = float64(pr.BytesRead) / float64(pr.TotalBytes)
			}
			p.Send(progressMsg((float64(len(seen)-1) + frac) / totalFiles))
		}
	}()

	var result *efd.Result
	var runErr error
	go func() {
		result, runErr = efd.Run(ctx, opts)
		close(progressCh)
		p.Send(progressDoneMsg{})
	}()

	if _, err := p.Run(); err != nil {
		log.Warn().Err(err).Msg("progress display failed, continuing without it")
	}
	return result, runErr
}

func writeResult(ctx context.Context, result *efd.Result) error {
	if result == nil {
		return nil
	}
	switch sinkFormat {
	case "csv":
		return csvsink.WriteAll(outDir, result)
	case "parquet":
		return parquet.WriteLines(filepath.Join(outDir, "lines.parquet"), result.Lines)
	case "postgres":
		if dbURL == "" {
			dbURL = viper.GetString("db.url")
		}
		if dbURL == "" {
			return fmt.Errorf("--format postgres requires --db or --dbUrl")
		}
		sink, err := postgres.Connect(ctx, dbURL)
		if err != nil {
			return err
		}
		defer sink.Close()
		if err := postgres.Migrate(dbURL); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		return sink.Save(ctx, result)
	default:
		return fmt.Errorf("unknown --format %q", sinkFormat)
	}
}

// renderReport builds a markdown summary of result and renders it for the
// terminal, grounded on library.Summary + cmd/info.go's glamour.TermRenderer
// pairing.
func renderReport(runID uuid.UUID, result *efd.Result) string {
	p := message.NewPrinter(language.English)
	var sb strings.Builder

	fmt.Fprintf(&sb, "# efd run %s\n\n", slug.Make(runID.String()[:8]))
	fmt.Fprintf(&sb, "Started: %s\n\n", timeago.English.Format(time.Now()))

	if result == nil {
		sb.WriteString("No result produced.\n")
		return renderMarkdown(sb.String())
	}

	sb.WriteString("## Files\n\n")
	for _, f := range result.Files {
		status := "ok"
		style := func(s string) string { return lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(s) }
		if f.Err != nil {
			status = f.Err.Error()
			style = func(s string) string { return lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render(s) }
		}
		fmt.Fprintf(&sb, p.Sprintf("  * %s — %d lines in %s [%s]\n",
			f.File, f.NumLines, f.EndTime.Sub(f.StartTime).Round(time.Millisecond), style(status)))
	}

	fmt.Fprintf(&sb, "\n## Totals\n\n")
	fmt.Fprintf(&sb, p.Sprintf("  * Enriched lines: %d\n", len(result.Lines)))
	fmt.Fprintf(&sb, p.Sprintf("  * CST buckets: %d\n", len(result.CST)))
	fmt.Fprintf(&sb, p.Sprintf("  * Credit-reduction rows: %d\n", len(result.Credit)))
	fmt.Fprintf(&sb, p.Sprintf("  * Revenue buckets: %d\n\n", len(result.Revenue)))

	if len(result.Messages) > 0 {
		sb.WriteString("## Messages\n\n")
		for _, m := range result.Messages {
			fmt.Fprintf(&sb, "  * %s\n", m)
		}
	}

	return renderMarkdown(sb.String())
}

func renderMarkdown(md string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}
