package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thisisniagahub/Quran-Pulse-sub001/internal/batch"
)

var errNeedOutDir = errors.New("--out is required with more than one input file")

func newAyahsCmd(a *app) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "ayahs FILE...",
		Short: "Convert the text field of JSON ayah arrays",
		Long: `Each FILE holds a JSON array of records such as
{"number": 1, "text": "...", "numberInSurah": 1}. The text field
(text_field in the config) of every record is converted; all other
fields, record order and record count are kept.

With a single FILE and no --out the result is written to stdout.`,
		Example: `  translit ayahs surah-001.json > surah-001.translit.json
  translit ayahs --out converted/ data/*.json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &batch.Processor{
				Field:   a.cfg.TextField,
				Convert: a.engine.Convert,
				Workers: a.cfg.Workers,
				Logger:  a.logger,
			}

			if outDir == "" {
				if len(args) > 1 {
					return errNeedOutDir
				}
				data, err := os.ReadFile(filepath.Clean(args[0]))
				if err != nil {
					return fmt.Errorf("read %s: %w", args[0], err)
				}
				out, res, err := p.Rewrite(data)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				if _, err := cmd.OutOrStdout().Write(append(out, '\n')); err != nil {
					return err
				}
				a.logger.Info("converted ayahs",
					zap.String("input", args[0]),
					zap.Int("records", res.Records),
					zap.Int("converted", res.Converted),
					zap.Int("skipped", res.Skipped))
				return nil
			}

			results, err := p.RewriteFiles(cmd.Context(), args, outDir)
			if err != nil {
				return err
			}
			var total batch.Result
			for _, r := range results {
				total.Records += r.Records
				total.Converted += r.Converted
				total.Skipped += r.Skipped
			}
			a.logger.Info("converted ayah files",
				zap.Int("files", len(results)),
				zap.String("out", outDir),
				zap.Int("records", total.Records),
				zap.Int("converted", total.Converted),
				zap.Int("skipped", total.Skipped))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for converted files")
	return cmd
}
