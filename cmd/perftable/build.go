package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/leafperf/internal/report"
	"github.com/katalvlaran/leafperf/perftable"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newBuildCmd(a *app) *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build tables from performance records",
		Long: `Build reads one record or a list of records (JSON or YAML) and writes one
table per record to stdout, as CSV (tables separated by a blank line) or JSON.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := a.runBuild(cmd, input)
			if err != nil {
				a.log.Error("build failed", zap.String("input", input), zap.Error(err))
			}

			return err
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "input file, - for stdin")
	cmd.Flags().String("input-format", "", "input format: json or yaml")
	cmd.Flags().String("output-format", "", "output format: csv or json")
	cmd.Flags().Int("workers", 0, "records built in parallel (0 = GOMAXPROCS)")

	return cmd
}

func (a *app) runBuild(cmd *cobra.Command, input string) error {
	inFormat, err := report.ParseFormat(a.cfg.InputFormat)
	if err != nil {
		return err
	}
	outFormat, err := report.ParseFormat(a.cfg.OutputFormat)
	if err != nil {
		return err
	}

	r, closeFn, err := openInput(cmd, input)
	if err != nil {
		return err
	}
	defer closeFn()

	inputs, err := report.DecodeInputs(r, inFormat)
	if err != nil {
		return err
	}

	var opts []perftable.Option
	if a.cfg.Workers > 0 {
		opts = append(opts, perftable.WithWorkers(a.cfg.Workers))
	}

	start := time.Now()
	tables, err := perftable.BuildAll(cmd.Context(), inputs, opts...)
	if err != nil {
		return err
	}

	rows := 0
	for _, t := range tables {
		rows += t.Rows()
	}
	a.log.Info("built tables",
		zap.Int("records", len(tables)),
		zap.Int("rows", rows),
		zap.Duration("took", time.Since(start)),
	)

	return writeTables(cmd.OutOrStdout(), tables, outFormat)
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}

	return f, func() { _ = f.Close() }, nil
}

func writeTables(w io.Writer, tables []*perftable.Table, format report.Format) error {
	if format == report.FormatJSON {
		return report.EncodeJSON(w, tables)
	}
	if format != report.FormatCSV {
		return fmt.Errorf("output: %w: %q", report.ErrUnsupportedFormat, string(format))
	}

	for i, t := range tables {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := report.EncodeCSV(w, t); err != nil {
			return err
		}
	}

	return nil
}
