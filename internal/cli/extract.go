package cli

import (
	"context"
	"fmt"

	"resumescan/internal/common"
	"resumescan/internal/extract"
	"resumescan/internal/types"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract [resume-file]",
	Short: "Extract structured data from a resume without scoring",
	Long: `Extract plain text, contact details, section presence and technical
keywords from a resume file. No AI assessment or scoring is performed, so
the command works without an API key.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if extractConfig.OutputFormat == "" {
			extractConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(extractConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runExtract,
}

var extractConfig common.CommandConfig

func init() {
	extractCmd.Flags().StringVarP(&extractConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	extractCmd.Flags().StringVar(&extractConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = extractCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	createInput := func(contents []string) (string, error) {
		if len(contents) != 1 {
			return "", fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return contents[0], nil
	}

	logDetails := func(text string, cfg common.CommandConfig) {
		logger.Info("Starting resume extraction",
			"resume_chars", len(text),
			"output_format", cfg.OutputFormat)
	}

	extractOperation := func(ctx context.Context, text string) (types.ExtractionResult, error) {
		return types.ExtractionResult{
			Contact:  extract.Contact(text),
			Sections: extract.Sections(text),
			Keywords: extract.Keywords(text),
			Chars:    len(text),
		}, nil
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		extractConfig,
		args,
		createInput,
		extractOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to extract resume data: %w", err)
	}
	logger.Info("Resume extraction completed successfully")
	return nil
}
