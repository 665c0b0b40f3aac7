package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seamfix/stitch"
)

// InspectCmd returns the inspect command
func InspectCmd() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Show entity counts and endpoint-pair groups of a scene",
		Long: `Load a scene and list its partial wires grouped by their unordered pair
of endpoint vertices. Only groups with two or more members are stitch
candidates; closed wires are never stitched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true
			}
			out := cmd.OutOrStdout()

			m, err := loadModel(args[0])
			if err != nil {
				return err
			}

			st := m.Kernel.Stats()
			fmt.Fprintf(out, "%s %s: %d vertices, %d edges, %d wires, %d faces\n",
				color.New(color.FgCyan).Sprint("scene"), args[0], st.Vertices, st.Edges, st.Wires, st.Faces)
			fmt.Fprintf(out, "tolerance %g, %d faces with partial wires\n", m.Tolerance, len(m.Input))

			for i, g := range stitch.GroupByEndpoints(m.Kernel, m.Input) {
				members := make([]string, len(g.Wires))
				for j := range g.Wires {
					members[j] = name(g.Wires[j]) + "@" + name(g.Faces[j])
				}

				var tag string
				switch {
				case g.Pair.Degenerate():
					tag = color.New(color.FgRed).Sprint(" (closed)")
				case len(members) < 2:
					tag = color.New(color.FgYellow).Sprint(" (alone)")
				}
				fmt.Fprintf(out, "  group %d {%s, %s}: %s%s\n",
					i+1, name(g.Pair.First), name(g.Pair.Second), strings.Join(members, ", "), tag)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
