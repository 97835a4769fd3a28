package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"LawTracker/internal/app"
	"LawTracker/internal/config"
	"LawTracker/internal/domain"
	"LawTracker/internal/logging"
	"LawTracker/internal/usecase"
)

const maxLineSize = 1 << 20

type globalFlags struct {
	configPath string
	logLevel   string
}

func (g *globalFlags) load() (config.Config, *slog.Logger) {
	cfg := config.LoadFrom(g.configPath)
	if g.logLevel != "" {
		cfg.Logging.Level = g.logLevel
	}
	return cfg, logging.New(cfg.Logging.Level)
}

func rootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "lawtracker",
		Short: "Classify and prioritise EU legislation",
		Long: `lawtracker fetches recently published EU acts, classifies each against
the Annex 2 policy taxonomy, scores it for triage and stores the results.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	cmd.AddCommand(scanCmd(flags), baselineCmd(flags), classifyCmd(flags), listCmd(flags))
	return cmd
}

func scanCmd(flags *globalFlags) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Fetch, classify and store recent legislation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := flags.load()
			ctx := cmd.Context()

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			if !watch {
				result, err := application.Scan(ctx)
				if err != nil {
					return err
				}
				return printReport(cmd.OutOrStdout(), result)
			}

			group, groupCtx := errgroup.WithContext(ctx)
			group.Go(func() error { return application.ServeMetrics(groupCtx) })
			group.Go(func() error { return application.Watch(groupCtx) })
			return group.Wait()
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Rerun on the scheduler interval until interrupted")
	return cmd
}

func baselineCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "baseline",
		Short: "Import the bundled Annex 2 baseline acts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := flags.load()
			ctx := cmd.Context()

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			result, err := application.ImportBaseline(ctx)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), result)
		},
	}
}

func classifyCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [file]",
		Short: "Classify JSON-lines records from a file or stdin",
		Long: `classify reads one JSON object per line with identifier, title and
optional date and instrument_type fields, and writes one classified record
per line. Nothing is fetched or stored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := flags.load()

			application, err := app.NewOffline(cfg, logger)
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			records, err := readRecords(in)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), application.Classify(records))
		},
	}
}

func listCmd(flags *globalFlags) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print stored records, highest score first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger := flags.load()
			ctx := cmd.Context()

			application, err := app.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			defer application.Close()

			records, err := application.Records(ctx, limit)
			if err != nil {
				return err
			}
			return writeRecords(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "Maximum number of records")
	return cmd
}

type inputRecord struct {
	Identifier     string `json:"identifier"`
	Title          string `json:"title"`
	Date           string `json:"date"`
	InstrumentType string `json:"instrument_type"`
}

func readRecords(r io.Reader) ([]domain.Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []domain.Record
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var in inputRecord
		if err := json.Unmarshal([]byte(text), &in); err != nil {
			return nil, fmt.Errorf("decode line %d: %w", line, err)
		}
		records = append(records, domain.Record{
			Identifier:     in.Identifier,
			Title:          in.Title,
			Date:           in.Date,
			InstrumentType: domain.InstrumentType(in.InstrumentType),
			SourceHint:     "stdin",
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return records, nil
}

func writeRecords(w io.Writer, records []domain.Record) error {
	enc := json.NewEncoder(w)
	for _, rec := range records {
		if err := enc.Encode(rec.Output()); err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
	}
	return nil
}

func printReport(w io.Writer, result usecase.Result) error {
	report := result.Report
	_, err := fmt.Fprintf(w, "run %s (%s): found %d, inserted %d, updated %d, errors %d\n",
		report.ID, report.Source, report.Found, report.Inserted, report.Updated, len(report.Errors))
	return err
}
