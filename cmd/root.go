// -- cmd/root.go --
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/enrichkit/enrich-cli/internal/config"
	"github.com/enrichkit/enrich-cli/internal/enrichment"
	"github.com/enrichkit/enrich-cli/internal/launcher"
	"github.com/enrichkit/enrich-cli/internal/observability"
)

type contextKey string

const configKey contextKey = "config"

// configFromContext returns the configuration loaded by the root command's
// PersistentPreRunE.
func configFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok || cfg == nil {
		return nil, errors.New("configuration not loaded")
	}
	return cfg, nil
}

// NewRootCommand builds the command tree that launches analyses as child processes.
func NewRootCommand() *cobra.Command {
	return newRootCmd(launcher.NewExecRunner())
}

// newRootCmd builds the command tree around runner. Tests pass a mock.
func newRootCmd(runner launcher.Runner) *cobra.Command {
	var cfgFile string
	opts := enrichment.DefaultOptions()

	rootCmd := &cobra.Command{
		Use:   "enrich-cli",
		Short: "Run GO and KEGG enrichment analysis.",
		Long: `enrich-cli validates enrichment parameters, prepares an output directory named
after the input file and runs the clusterProfiler analysis script with them.

The original single-dash spelling of long flags (-fromType S -OrgDb hsa) is accepted.`,
		Example: `  enrich-cli -i data/genes.csv -fromType S -OrgDb hsa
  enrich-cli --input genes.csv --fromType E --OrgDb mmu --pAdjustMethod BY --pvalueCutoff 0.01`,
		Version:       Version,
		Args:          noPositionalArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			config.SetDefaults(v)
			if err := initializeConfig(v, cfgFile); err != nil {
				return err
			}

			cfg, err := config.NewConfigFromViper(v)
			if err != nil {
				return fmt.Errorf("failed to load or validate config: %w", err)
			}

			observability.InitializeLogger(cfg.Logger)
			observability.GetLogger().Debug("Starting enrich-cli",
				zap.String("version", Version),
				zap.String("config_file", v.ConfigFileUsed()),
			)

			cmd.SetContext(context.WithValue(cmd.Context(), configKey, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromContext(cmd.Context())
			if err != nil {
				return err
			}
			applyConfigDefaults(cmd, cfg, &opts)
			return runLaunch(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), cfg, runner, opts)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./enrich.yaml)")
	addLaunchFlags(rootCmd, &opts)
	rootCmd.SetVersionTemplate(`{{printf "%s version %s\n" .Name .Version}}`)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return enrichment.InvalidArgumentf("%v", err)
	})

	rootCmd.AddCommand(newOrganismsCmd())
	rootCmd.AddCommand(newMethodsCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the command tree with os.Args and reports any error on stderr.
// The returned error maps to the process exit status via enrichment.ExitCode.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCommand()
	rootCmd.SetArgs(NormalizeArgs(os.Args[1:]))
	err := rootCmd.ExecuteContext(ctx)
	reportError(rootCmd.ErrOrStderr(), err)
	observability.Sync()
	return err
}

// reportError prints err for the user. A failed analysis has already had its
// stderr relayed, so only the other error classes are printed here.
func reportError(w io.Writer, err error) {
	if err == nil {
		return
	}
	var toolErr *enrichment.ToolFailureError
	if errors.As(err, &toolErr) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
	if errors.Is(err, enrichment.ErrInvalidArgument) {
		fmt.Fprintln(w, "Run 'enrich-cli --help' for usage.")
	}
}

// initializeConfig reads the config file, if any, and enables ENRICH_* env overrides.
func initializeConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("enrich")
		v.SetConfigType("yaml")
	}

	config.BindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// No config file; defaults and env vars apply.
	}
	return nil
}

func noPositionalArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return enrichment.InvalidArgumentf("unexpected argument %q for %q", args[0], cmd.CommandPath())
	}
	return nil
}
