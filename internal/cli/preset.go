package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/scribe/internal/domain"
	"github.com/mrz1836/scribe/internal/preset"
)

// AddPresetCommand adds the preset command group to the root command.
func AddPresetCommand(root *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Inspect commit message presets",
	}
	cmd.AddCommand(newPresetListCmd())
	cmd.AddCommand(newPresetShowCmd())
	root.AddCommand(cmd)
}

func newPresetListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPresetList(cmd, os.Stdout)
		},
	}
}

func runPresetList(cmd *cobra.Command, w io.Writer) error {
	outputFormat := cmd.Flag("output").Value.String()
	catalog := preset.NewCatalog()

	if outputFormat == OutputJSON {
		configs := make([]preset.Config, 0, len(catalog.Names()))
		for _, name := range catalog.Names() {
			cfg, err := catalog.Get(name)
			if err != nil {
				return err
			}
			configs = append(configs, cfg)
		}
		return writeJSON(w, configs)
	}

	for _, name := range catalog.Names() {
		cfg, err := catalog.Get(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%-10s %s\n", name, cfg.Description)
	}
	return nil
}

func newPresetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show the full configuration of a preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresetShow(cmd, os.Stdout, args[0])
		},
	}
}

func runPresetShow(cmd *cobra.Command, w io.Writer, name string) error {
	outputFormat := cmd.Flag("output").Value.String()

	cfg, err := preset.NewCatalog().Get(domain.Style(name))
	if err != nil {
		return err
	}

	if outputFormat == OutputJSON {
		return writeJSON(w, cfg)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}
