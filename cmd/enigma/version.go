package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/706f6c6c7578/enigma/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of enigma",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "enigma version %s\n", version.Get().Full())
		},
	}
}
