package main

import (
	"errors"
	"fmt"
	"os"

	"phonestd/internal/formatter"
	"phonestd/internal/models"
	"phonestd/internal/normalizer"
	"phonestd/internal/output"

	"github.com/spf13/cobra"
)

type processFlags struct {
	country   string
	outputDir string
	workers   int
	compact   bool
	stdout    bool
}

func newProcessCmd(root *rootFlags) *cobra.Command {
	flags := &processFlags{}

	cmd := &cobra.Command{
		Use:   "process <file.json>",
		Short: "Standardize every phone number in a JSON document",
		Long: `Process validates the document, standardizes each record's phone field and
writes "<name>_validated_<timestamp>.json" plus "validation_log_<timestamp>.txt"
to the output directory. Nothing is written when every number is already
canonical.

Examples:
  phonestd process people.json
  phonestd process people.json --output_dir ./out --workers 4
  phonestd process people.json --stdout > fixed.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, root, flags, args[0])
		},
	}

	cmd.Flags().StringVar(&flags.country, "country", "", "Calling code of the country rule (default from config)")
	cmd.Flags().StringVar(&flags.outputDir, "output_dir", "", "Output directory (default from config)")
	cmd.Flags().IntVar(&flags.workers, "workers", 0, "Parallel normalization workers (default from config)")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "Write compact JSON instead of indented")
	cmd.Flags().BoolVar(&flags.stdout, "stdout", false, "Print the output document instead of writing files")

	return cmd
}

func runProcess(cmd *cobra.Command, root *rootFlags, flags *processFlags, inputPath string) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	if flags.country != "" {
		cfg.Country.CallingCode = flags.country
	}

	if flags.outputDir != "" {
		cfg.Output.Dir = flags.outputDir
	}

	if flags.workers > 0 {
		cfg.Processing.Workers = flags.workers
	}

	if flags.compact {
		cfg.Output.PrettyPrint = false
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	log := newLogger(cmd, cfg).With("file", inputPath)

	n, err := normalizerFor(cfg)
	if err != nil {
		return err
	}

	// Read the JSON content
	content, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	log.Debug("input loaded", "bytes", len(content), "config", cfg.String())

	processor := normalizer.NewProcessor(
		normalizer.WithNormalizer(n),
		normalizer.WithWorkers(cfg.Processing.Workers),
		normalizer.WithLogger(log),
	)

	result, err := processor.ProcessBytes(content)
	if errors.Is(err, models.ErrMalformedInput) {
		return fmt.Errorf("invalid JSON file: %w", err)
	}

	if err != nil {
		return err
	}

	writer := output.NewWriter(cfg.Output.Dir, cfg.GetIndent(), output.WithWriteUnchanged(cfg.Output.WriteUnchanged))

	if flags.stdout {
		art, err := writer.Render(inputPath, result)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(art.Document)

		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(output.Summary(result)))

	art, err := writer.Write(inputPath, result)
	if err != nil {
		return err
	}

	if !art.Written {
		fmt.Fprintln(cmd.OutOrStdout(), "All phone numbers are already in the correct format!")
		return nil
	}

	log.Info("artifacts written", "document", art.DocumentPath, "log", art.LogPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Saved: %s\nSaved: %s\n", art.DocumentPath, art.LogPath)

	return nil
}
