package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/706f6c6c7578/enigma/internal/config"
)

func newCatalogueCmd(v *viper.Viper) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "catalogue [MACHINE]",
		Short: "List the rotors a machine can use",
		Long: `List the rotors of a machine description with their kind, notches and
wiring. With --format yaml the whole description is printed in the YAML
format, which converts a .conf description to YAML.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := v.GetString("machine")
			if len(args) > 0 {
				path = args[0]
			}
			spec, err := config.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load machine: %w", err)
			}
			m, err := spec.Build()
			if err != nil {
				return fmt.Errorf("failed to build machine: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				data, err := yaml.Marshal(config.Export(m))
				if err != nil {
					return fmt.Errorf("failed to encode machine: %w", err)
				}
				_, err = out.Write(data)
				return err
			case "table":
				fmt.Fprintf(out, "alphabet %s, %d slots, %d pawls\n\n", m.Alphabet(), m.NumRotors(), m.NumPawls())
				tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "NAME\tKIND\tNOTCHES\tCYCLES")
				for _, r := range m.Catalogue() {
					d := config.Describe(r)
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.Name, d.Kind, d.Notches, d.Cycles)
				}
				return tw.Flush()
			default:
				return fmt.Errorf("unknown format %q (want table or yaml)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "table", "output format: table, yaml")
	return cmd
}
