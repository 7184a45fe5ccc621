package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"
)

func newStatusCmd(a *app) *cobra.Command {
	var statusJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the state of each component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), true)
			if err != nil {
				return err
			}
			defer s.Close()

			if statusJSON {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(s.State())
			}
			return printState(cmd.OutOrStdout(), s.State())
		},
	}
	cmd.Flags().BoolVar(&statusJSON, "json", false, "Output indented JSON")
	return cmd
}

// printState writes one "section.field: value" line per leaf of state,
// sorted by key. Field names follow the JSON tags of the state types.
func printState(w io.Writer, state any) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return err
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}

	lines := map[string]any{}
	flatten("", tree, lines)
	keys := make([]string, 0, len(lines))
	for k := range lines {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%s: %v\n", k, lines[k])
	}
	return nil
}

func flatten(prefix string, v any, out map[string]any) {
	m, ok := v.(map[string]any)
	if !ok {
		out[prefix] = v
		return
	}
	for k, child := range m {
		if prefix != "" {
			k = prefix + "." + k
		}
		flatten(k, child, out)
	}
}
