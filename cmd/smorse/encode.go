package main

import (
	"github.com/at-ishikawa/smorse/internal/cli"
	"github.com/spf13/cobra"
)

func newEncodeCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "encode WORD...",
		Short: "Print the smooshed Morse code of words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli.RunEncode(cmd.OutOrStdout(), args, verbose)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show the code of each letter")

	return cmd
}
