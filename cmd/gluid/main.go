package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gluid/gluid"
)

func main() {
	root := &cobra.Command{
		Use:           "gluid",
		Short:         "Encode integers as UUID-compatible identifiers and back",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(encodeCmd(), decodeCmd(), inspectCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// namespaceFromFlags resolves the -n flag into a Namespace. An unset flag is
// the "no namespace" identity; a flag set to the empty string is not.
func namespaceFromFlags(cmd *cobra.Command) gluid.Namespace {
	if !cmd.Flags().Changed("namespace") {
		return gluid.None
	}

	s, _ := cmd.Flags().GetString("namespace")

	return gluid.NewNamespace(s)
}
