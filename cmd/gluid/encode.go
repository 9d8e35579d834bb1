package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gluid/gluid"
)

func encodeCmd() *cobra.Command {
	var (
		pair bool
		wide bool
	)

	cmd := &cobra.Command{
		Use:   "encode [-n namespace] [--pair|--i64] <int> [<int>]",
		Short: "Encode one int32, a pair of int32s or one int64 into an identifier",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if pair != (len(args) == 2) {
				return fmt.Errorf("--pair takes exactly two values, other modes exactly one")
			}

			ns := namespaceFromFlags(cmd)

			var id gluid.ID

			switch {
			case pair:

				v1, err := strconv.ParseInt(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("not a valid int32: %s", args[0])
				}

				v2, err := strconv.ParseInt(args[1], 10, 32)
				if err != nil {
					return fmt.Errorf("not a valid int32: %s", args[1])
				}

				id = gluid.FromInt32Pair(int32(v1), int32(v2), ns)

			case wide:
				v, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("not a valid int64: %s", args[0])
				}

				id = gluid.FromInt64(v, ns)

			default:
				v, err := strconv.ParseInt(args[0], 10, 32)
				if err != nil {
					return fmt.Errorf("not a valid int32: %s", args[0])
				}

				id = gluid.FromInt32(int32(v), ns)
			}

			fmt.Fprintln(cmd.OutOrStdout(), id)

			return nil
		},
	}

	cmd.Flags().StringP("namespace", "n", "", "Namespace to bind the identifier to")
	cmd.Flags().BoolVar(&pair, "pair", false, "Encode two independent int32 values")
	cmd.Flags().BoolVar(&wide, "i64", false, "Encode a single int64 value")
	cmd.MarkFlagsMutuallyExclusive("pair", "i64")

	return cmd
}
