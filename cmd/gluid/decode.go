package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gluid/gluid"
)

var errNotLinked = errors.New("not linked")

func decodeCmd() *cobra.Command {
	var (
		pair bool
		wide bool
	)

	cmd := &cobra.Command{
		Use:   "decode [-n namespace] [--pair|--i64] <identifier>",
		Short: "Recover the integer payload of an identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := gluid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("not a valid identifier: %s", args[0])
			}

			ns := namespaceFromFlags(cmd)

			switch {
			case pair:
				first, ok := id.Int32(ns)
				if !ok {
					return errNotLinked
				}

				second, _ := id.SecondInt32(ns)
				fmt.Fprintln(cmd.OutOrStdout(), first, second)

			case wide:
				v, ok := id.Int64(ns)
				if !ok {
					return errNotLinked
				}

				fmt.Fprintln(cmd.OutOrStdout(), v)

			default:
				v, ok := id.Int32(ns)
				if !ok {
					return errNotLinked
				}

				fmt.Fprintln(cmd.OutOrStdout(), v)
			}

			return nil
		},
	}

	cmd.Flags().StringP("namespace", "n", "", "Namespace the identifier was encoded under")
	cmd.Flags().BoolVar(&pair, "pair", false, "Recover both values of a pair")
	cmd.Flags().BoolVar(&wide, "i64", false, "Recover a single int64 value")
	cmd.MarkFlagsMutuallyExclusive("pair", "i64")

	return cmd
}
