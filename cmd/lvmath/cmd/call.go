// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmath/value"
)

func newCallCmd(g *globals) *cobra.Command {
	var transform, asJSON bool
	c := &cobra.Command{
		Use:   "call <function> [args...]",
		Short: "Evaluate one function",
		Long: `Evaluate one function and print its result.

On a terminal the result is printed as text; otherwise (or with --json) it is
printed in the JSON value format.`,
		Example: `  lvmath call linspace 0 3 4
  lvmath call --matrix Array range 0:2:10
  lvmath call --transform subset '[[1,2],[3,4]]' '{"mathjs":"Index","dimensions":[2,1]}'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := g.newMath(cmd)
			if err != nil {
				return err
			}
			cfg := m.Config()
			vals := make([]value.Value, len(args)-1)
			for i, a := range args[1:] {
				if vals[i], err = value.Parse(a, cfg.NumberType(), cfg.Precision); err != nil {
					return fmt.Errorf("argument %d: %w", i+1, err)
				}
			}

			var v value.Value
			if transform {
				v, err = m.CallTransform(args[0], vals...)
			} else {
				v, err = m.Call(args[0], vals...)
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !asJSON && isTerminal(out) {
				_, err = fmt.Fprintln(out, value.Format(v))
				return err
			}
			data, err := value.EncodeJSON(v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}
	c.Flags().BoolVar(&transform, "transform", false, "use the one-based transform (dims and indices count from 1)")
	c.Flags().BoolVar(&asJSON, "json", false, "always print JSON")

	return c
}
