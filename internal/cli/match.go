package cli

import (
	"context"
	"fmt"

	"resumescan/internal/analysis"
	"resumescan/internal/common"
	"resumescan/internal/store"
	"resumescan/internal/types"

	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [resume-file] [job-description-file]",
	Short: "Match a resume against a job description",
	Long: `Match a resume against a specific job description. The command takes
two arguments: the path to the resume file (PDF, DOCX or plain text) and
the path to the job description file. The analysis combines keyword overlap
between the two documents with an AI assessment and reports a 1-10 score
with matched and missing keywords.`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if matchConfig.OutputFormat == "" {
			matchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(matchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runMatch,
}

var matchConfig common.CommandConfig

func init() {
	matchCmd.Flags().StringVarP(&matchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	matchCmd.Flags().StringVar(&matchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = matchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runMatch(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	svc, err := analysis.NewService(cfg, store.NewMemoryStore(), logger)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}

	createInput := func(contents []string) (types.AnalyzeRequest, error) {
		if len(contents) != 2 {
			return types.AnalyzeRequest{}, fmt.Errorf("expected 2 file paths, got %d", len(contents))
		}
		return types.AnalyzeRequest{
			ResumeText:         contents[0],
			Mode:               types.ModeJobMatch,
			JobDescriptionText: contents[1],
		}, nil
	}

	logDetails := func(input types.AnalyzeRequest, cfg common.CommandConfig) {
		logger.Info("Starting job match analysis",
			"resume_chars", len(input.ResumeText),
			"job_chars", len(input.JobDescriptionText),
			"output_format", cfg.OutputFormat)
	}

	matchOperation := func(ctx context.Context, input types.AnalyzeRequest) (types.AnalysisResult, error) {
		return svc.Analyze(ctx, input)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		matchConfig,
		args,
		createInput,
		matchOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to match resume: %w", err)
	}
	logger.Info("Job match analysis completed successfully")
	return nil
}
