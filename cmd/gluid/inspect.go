package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gluid/gluid"
)

const inspectFmt = `
-- Representations

    Canonical: %v
        Bytes: %v

-- Components

      Version: %#x
      Variant: %#x
      Encoded: %v
`

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <identifier>",
		Short: "Show the raw layout and marker check of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gluid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("[%s] does not appear to be a valid identifier", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), inspectFmt,
				id.String(),
				id.Bytes(),
				id[7]>>4,
				id[8]>>4,
				id.IsGluid(),
			)

			return nil
		},
	}
}
