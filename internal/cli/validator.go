package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mrz1836/scribe/internal/validate"
)

// AddValidatorCommand adds the validator command group to the root command.
func AddValidatorCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "validator",
		Short: "Inspect commit message validators",
	}
	cmd.AddCommand(newValidatorListCmd())
	root.AddCommand(cmd)
}

func newValidatorListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered validators",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidatorList(cmd, os.Stdout)
		},
	}
}

func runValidatorList(cmd *cobra.Command, w io.Writer) error {
	outputFormat := cmd.Flag("output").Value.String()

	registry := validate.NewRegistry()
	if err := registry.Register(validate.NewConventional(nil)); err != nil {
		return err
	}

	names := registry.Names()
	if outputFormat == OutputJSON {
		return writeJSON(w, names)
	}

	for _, name := range names {
		marker := " "
		if name == validate.DefaultValidatorName {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\n", marker, name)
	}
	return nil
}
