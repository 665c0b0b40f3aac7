package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/seamfix/brep"
	"github.com/katalvlaran/seamfix/scene"
	"github.com/katalvlaran/seamfix/stitch"
)

// EnvTolerance overrides the scene tolerance when --tolerance is not given.
const EnvTolerance = "SEAMFIX_TOLERANCE"

// Report is the --yaml output of the stitch command.
type Report struct {
	Scene      string         `yaml:"scene"`
	Tolerance  float64        `yaml:"tolerance"`
	Groups     int            `yaml:"groups"`
	Candidates int            `yaml:"candidates"`
	Stitched   int            `yaml:"stitched"`
	ViaSeam    int            `yaml:"via_seam"`
	Rejected   map[string]int `yaml:"rejected,omitempty"`
	Records    []RecordView   `yaml:"records"`
}

// RecordView is one hole record by entity name.
type RecordView struct {
	Base     string   `yaml:"base"`
	Part     string   `yaml:"part"`
	Wire     string   `yaml:"wire"`
	NewFaces []string `yaml:"new_faces"`
}

// StitchCmd returns the stitch command
func StitchCmd() *cobra.Command {
	var (
		tolerance float64
		asYAML    bool
		verbose   bool
		noColor   bool
	)

	cmd := &cobra.Command{
		Use:   "stitch <scene>",
		Short: "Close two-face holes described by a scene file",
		Long: `Load a YAML or TOML scene, pair partial wires on different faces that
bound the same hole, and build the connecting edge and the two new faces.

Tolerance precedence: --tolerance, then $` + EnvTolerance + `, then the scene's
own tolerance, then the built-in default.`,
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
			tol, err := resolveTolerance(cmd.Flags().Changed("tolerance"), tolerance, m.Tolerance)
			if err != nil {
				return err
			}

			opts := []stitch.Option{stitch.WithContext(cmd.Context()), stitch.WithTolerance(tol)}
			if verbose && !asYAML {
				opts = append(opts,
					stitch.WithOnReject(func(c stitch.Candidate, r stitch.Reason) {
						fmt.Fprintf(out, "%s %s: %s\n", color.New(color.FgYellow).Sprint("✗"), candidateLabel(c), r)
					}),
					stitch.WithOnStitch(func(c stitch.Candidate, e brep.Edge, viaSeam bool) {
						how := "direct"
						if viaSeam {
							how = "seam"
						}
						fmt.Fprintf(out, "%s %s: edge %s (%s)\n", color.New(color.FgGreen).Sprint("✓"), candidateLabel(c), name(e), how)
					}),
				)
			}

			res, err := stitch.FillHoles(m.Kernel, m.Input, opts...)
			if err != nil {
				return fmt.Errorf("failed to stitch %s: %w", args[0], err)
			}

			report := newReport(args[0], tol, res)
			if asYAML {
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				return enc.Close()
			}
			printReport(out, report)
			return nil
		},
	}

	cmd.Flags().Float64Var(&tolerance, "tolerance", 0,
		fmt.Sprintf("Seam midpoint tolerance (default: $%s, scene, %g)", EnvTolerance, stitch.DefaultTolerance))
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the report as YAML")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every stitched and rejected candidate")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	return cmd
}

func loadModel(path string) (*scene.Model, error) {
	f, err := scene.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene: %w", err)
	}
	m, err := f.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build scene: %w", err)
	}

	return m, nil
}

// resolveTolerance applies flag, then environment, then the scene value.
func resolveTolerance(flagSet bool, flagValue, sceneValue float64) (float64, error) {
	if flagSet {
		return flagValue, nil
	}
	if raw, ok := os.LookupEnv(EnvTolerance); ok && raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", EnvTolerance, raw, err)
		}
		return v, nil
	}

	return sceneValue, nil
}

func newReport(path string, tol float64, res *stitch.Result) Report {
	r := Report{
		Scene:      path,
		Tolerance:  tol,
		Groups:     res.Groups,
		Candidates: res.Candidates,
		Stitched:   res.Stitched,
		ViaSeam:    res.ViaSeam,
		Records:    make([]RecordView, 0, len(res.Records)),
	}
	for reason, n := range res.Rejected {
		if r.Rejected == nil {
			r.Rejected = make(map[string]int)
		}
		r.Rejected[reason.String()] = n
	}
	for _, rec := range res.Records {
		r.Records = append(r.Records, RecordView{
			Base:     name(rec.BaseFace),
			Part:     name(rec.PartWire),
			Wire:     name(rec.Wire),
			NewFaces: []string{name(rec.NewFaces[0]), name(rec.NewFaces[1])},
		})
	}

	return r
}

func printReport(out io.Writer, r Report) {
	fmt.Fprintf(out, "%s %s (tolerance %g)\n", color.New(color.FgCyan).Sprint("scene"), r.Scene, r.Tolerance)
	for i, rec := range r.Records {
		fmt.Fprintf(out, "  record %d: base=%s part=%s wire=%s new=%s,%s\n",
			i+1, rec.Base, rec.Part, rec.Wire, rec.NewFaces[0], rec.NewFaces[1])
	}

	summary := fmt.Sprintf("stitched %d of %d candidates in %d groups (%d via seam), %d records",
		r.Stitched, r.Candidates, r.Groups, r.ViaSeam, len(r.Records))
	if r.Stitched == 0 {
		fmt.Fprintln(out, color.New(color.FgYellow).Sprint(summary))
	} else {
		fmt.Fprintln(out, color.New(color.FgGreen).Sprint(summary))
	}
	for _, reason := range sortedKeys(r.Rejected) {
		fmt.Fprintf(out, "  rejected %s: %d\n", reason, r.Rejected[reason])
	}
}

func candidateLabel(c stitch.Candidate) string {
	return fmt.Sprintf("%s@%s ⇄ %s@%s", name(c.FirstWire), name(c.FirstFace), name(c.SecondWire), name(c.SecondFace))
}

// name prints an entity by its String method, or "-" when absent.
func name(e brep.Entity) string {
	if e == nil {
		return "-"
	}

	return fmt.Sprint(e)
}
