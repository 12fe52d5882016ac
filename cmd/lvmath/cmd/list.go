// SPDX-License-Identifier: MIT

package cmd

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type listEntry struct {
	Name       string   `json:"name"`
	Signatures []string `json:"signatures"`
	Transform  bool     `json:"transform"`
}

func newListCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List functions and their signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := g.newMath(cmd)
			if err != nil {
				return err
			}
			transforms := m.TransformNames()
			var entries []listEntry
			for _, name := range m.Names() {
				fn, err := m.Function(name)
				if err != nil {
					return err
				}
				_, has := slices.BinarySearch(transforms, name)
				entries = append(entries, listEntry{Name: name, Signatures: fn.Signatures(), Transform: has})
			}

			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return json.NewEncoder(out).Encode(entries)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, e := range entries {
				mark := ""
				if e.Transform {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s%s\t%s\n", e.Name, mark, strings.Join(e.Signatures, "\n\t"))
			}
			fmt.Fprintln(tw, "\n* has a one-based transform")
			return tw.Flush()
		},
	}
}
