// File: cmd/launch.go
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/enrichkit/enrich-cli/internal/config"
	"github.com/enrichkit/enrich-cli/internal/enrichment"
	"github.com/enrichkit/enrich-cli/internal/launcher"
	"github.com/enrichkit/enrich-cli/internal/observability"
)

// Flag names. They keep the original mixed-case spelling.
const (
	flagInput         = "input"
	flagFromType      = "fromType"
	flagOrgDb         = "OrgDb"
	flagPValueCutoff  = "pvalueCutoff"
	flagQValueCutoff  = "qvalueCutoff"
	flagPAdjustMethod = "pAdjustMethod"
)

func addLaunchFlags(cmd *cobra.Command, opts *enrichment.Options) {
	flags := cmd.Flags()
	flags.StringVarP(&opts.Input, flagInput, "i", "", "Input CSV file (required)")
	flags.StringVar(&opts.FromType, flagFromType, "",
		"Type of gene IDs in input file (E for ENSEMBL, S for SYMBOL) (required)")
	flags.StringVar(&opts.OrgDb, flagOrgDb, "", "Organism database: "+describe(enrichment.Organisms())+" (required)")
	flags.Float64Var(&opts.PValueCutoff, flagPValueCutoff, enrichment.DefaultCutoff, "P-value cutoff for enrichment analysis")
	flags.Float64Var(&opts.QValueCutoff, flagQValueCutoff, enrichment.DefaultCutoff, "Q-value cutoff for enrichment analysis")
	flags.StringVar(&opts.PAdjustMethod, flagPAdjustMethod, string(enrichment.DefaultAdjustMethod),
		"P-value adjustment method: "+describe(enrichment.AdjustMethods()))

	mustRegisterCompletion(cmd, flagFromType, enrichment.GeneIDTypes())
	mustRegisterCompletion(cmd, flagOrgDb, enrichment.Organisms())
	mustRegisterCompletion(cmd, flagPAdjustMethod, enrichment.AdjustMethods())
}

// mustRegisterCompletion panics if flag does not exist or already has a completion.
func mustRegisterCompletion(cmd *cobra.Command, flag string, choices []enrichment.Choice) {
	if err := cmd.RegisterFlagCompletionFunc(flag, completeChoices(choices)); err != nil {
		panic(fmt.Sprintf("registering completion for --%s: %v", flag, err))
	}
}

// applyConfigDefaults fills the optional parameters from configuration unless
// they were given explicitly on the command line.
func applyConfigDefaults(cmd *cobra.Command, cfg *config.Config, opts *enrichment.Options) {
	flags := cmd.Flags()
	if !flags.Changed(flagPValueCutoff) {
		opts.PValueCutoff = cfg.Analysis.PValueCutoff
	}
	if !flags.Changed(flagQValueCutoff) {
		opts.QValueCutoff = cfg.Analysis.QValueCutoff
	}
	if !flags.Changed(flagPAdjustMethod) && cfg.Analysis.PAdjustMethod != "" {
		opts.PAdjustMethod = cfg.Analysis.PAdjustMethod
	}
}

// runLaunch validates opts, runs the analysis and relays its console output:
// stdout on success, stderr under an error banner on failure.
func runLaunch(
	ctx context.Context,
	stdout, stderr io.Writer,
	cfg *config.Config,
	runner launcher.Runner,
	opts enrichment.Options,
) error {
	req, err := enrichment.NewRequest(opts)
	if err != nil {
		return err
	}

	logger := observability.GetLogger()
	l := launcher.New(cfg, runner, logger)

	execution, err := l.Launch(ctx, req)
	if err != nil {
		var toolErr *enrichment.ToolFailureError
		if errors.As(err, &toolErr) {
			fmt.Fprintln(stderr, "Error in R script execution:")
			relay(stderr, toolErr.Stderr)
		}
		if errors.Is(err, context.Canceled) {
			logger.Warn("Analysis aborted by user signal")
		}
		return err
	}

	relay(stdout, execution.Result.Stdout)
	logger.Debug("Results written", zap.String("run_id", execution.RunID), zap.String("output_dir", execution.OutputDir))
	return nil
}

// relay writes captured output terminated by a single newline.
func relay(w io.Writer, text string) {
	if text == "" {
		return
	}
	fmt.Fprint(w, text)
	if !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(w)
	}
}

// describe renders choices for flag help, e.g. "mmu (Mouse), hsa (Human)".
func describe(choices []enrichment.Choice) string {
	parts := make([]string, 0, len(choices))
	for _, c := range choices {
		parts = append(parts, fmt.Sprintf("%s (%s)", c.Code, c.Label))
	}
	return strings.Join(parts, ", ")
}

// completeChoices offers the codes of choices, described by their labels, for shell completion.
func completeChoices(choices []enrichment.Choice) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		out := make([]string, 0, len(choices))
		for _, c := range choices {
			if strings.HasPrefix(c.Code, toComplete) {
				out = append(out, c.Code+"\t"+c.Label)
			}
		}
		return out, cobra.ShellCompDirectiveNoFileComp
	}
}
