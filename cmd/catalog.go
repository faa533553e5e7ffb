// File: cmd/catalog.go
package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/enrichkit/enrich-cli/internal/enrichment"
)

func newOrganismsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "organisms",
		Short: "List the organism codes accepted by -OrgDb",
		Args:  noPositionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printChoices(cmd.OutOrStdout(), "CODE", "ORGANISM", enrichment.Organisms())
		},
	}
}

func newMethodsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "methods",
		Short: "List the p-value adjustment methods accepted by -pAdjustMethod",
		Args:  noPositionalArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printChoices(cmd.OutOrStdout(), "METHOD", "DESCRIPTION", enrichment.AdjustMethods())
		},
	}
}

func printChoices(w io.Writer, codeHeader, labelHeader string, choices []enrichment.Choice) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\n", codeHeader, labelHeader)
	for _, c := range choices {
		fmt.Fprintf(tw, "%s\t%s\n", c.Code, c.Label)
	}
	return tw.Flush()
}
