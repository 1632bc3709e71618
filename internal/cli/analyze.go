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

var analyzeCmd = &cobra.Command{
	Use:   "analyze [resume-file]",
	Short: "Analyze a resume for ATS compatibility",
	Long: `Analyze a resume for compatibility with applicant tracking systems.
The command takes the path to a resume file in PDF, DOCX or plain text
format. The analysis combines structural checks (detected sections, contact
details) with an AI assessment and reports a 1-10 score with strengths,
weaknesses and recommendations.`,
	Args: cobra.ExactArgs(1),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if analyzeConfig.OutputFormat == "" {
			analyzeConfig.OutputFormat = cfg.App.DefaultFormat
		}
		// Validate format against supported formats
		return common.ValidateOutputFormat(analyzeConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runAnalyze,
}

var analyzeConfig common.CommandConfig

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	// Add completion for format flag
	_ = analyzeCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := getConfigFromContext(cmd.Context())
		if err != nil {
			return []string{}, cobra.ShellCompDirectiveError
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := getConfigFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := getLoggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	// One-shot in-memory store; the CLI result goes to the output handler
	svc, err := analysis.NewService(cfg, store.NewMemoryStore(), logger)
	if err != nil {
		return fmt.Errorf("failed to create analysis service: %w", err)
	}

	createInput := func(contents []string) (types.AnalyzeRequest, error) {
		if len(contents) != 1 {
			return types.AnalyzeRequest{}, fmt.Errorf("expected 1 file path, got %d", len(contents))
		}
		return types.AnalyzeRequest{
			ResumeText: contents[0],
			Mode:       types.ModeATS,
		}, nil
	}

	logDetails := func(input types.AnalyzeRequest, cfg common.CommandConfig) {
		logger.Info("Starting ATS analysis",
			"resume_chars", len(input.ResumeText),
			"output_format", cfg.OutputFormat)
	}

	analyzeOperation := func(ctx context.Context, input types.AnalyzeRequest) (types.AnalysisResult, error) {
		return svc.Analyze(ctx, input)
	}

	err = common.RunAnalysisCommand(
		cmd.Context(),
		logger,
		analyzeConfig,
		args,
		createInput,
		analyzeOperation,
		logDetails,
	)

	if err != nil {
		return fmt.Errorf("failed to analyze resume: %w", err)
	}
	logger.Info("ATS analysis completed successfully")
	return nil
}
