package main

import (
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/builder"
	"github.com/katalvlaran/postman/graphfile"
)

var generateKinds = []string{"cycle", "path", "star", "wheel", "complete", "grid", "random"}

func newGenerateCommand(input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a generated graph document (" + strings.Join(generateKinds, ", ") + ")",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, input)
		},
	}
	cmd.Flags().StringVarP(&input.kind, "kind", "k", "cycle", "topology: "+strings.Join(generateKinds, "|"))
	cmd.Flags().IntVarP(&input.vertices, "vertices", "n", 6, "vertex count (all kinds but grid)")
	cmd.Flags().IntVar(&input.rows, "rows", 3, "grid rows")
	cmd.Flags().IntVar(&input.cols, "cols", 3, "grid columns")
	cmd.Flags().Float64VarP(&input.prob, "prob", "p", 0.3, "extra-edge probability (random)")
	cmd.Flags().Int64Var(&input.seed, "seed", 1, "random seed")
	cmd.Flags().Int64Var(&input.minWeight, "min-weight", 1, "smallest edge weight")
	cmd.Flags().Int64Var(&input.maxWeight, "max-weight", 1, "largest edge weight")
	cmd.Flags().StringVarP(&input.outFormat, "format", "f", "yaml", "output format: yaml, toml or json")
	cmd.Flags().StringVarP(&input.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// constructorFor maps --kind to a builder constructor and its vertex count.
func constructorFor(input *Input) (builder.Constructor, int, error) {
	n := input.vertices
	switch strings.ToLower(input.kind) {
	case "cycle":
		return builder.Cycle(n), n, nil
	case "path":
		return builder.Path(n), n, nil
	case "star":
		return builder.Star(n), n, nil
	case "wheel":
		return builder.Wheel(n), n, nil
	case "complete":
		return builder.Complete(n), n, nil
	case "grid":
		return builder.Grid(input.rows, input.cols), input.rows * input.cols, nil
	case "random":
		return builder.RandomConnected(n, input.prob), n, nil
	default:
		return nil, 0, fmt.Errorf("unknown --kind %q (want one of %s)", input.kind, strings.Join(generateKinds, ", "))
	}
}

func runGenerate(cmd *cobra.Command, input *Input) error {
	f, err := graphfile.ParseFormat(input.outFormat)
	if err != nil {
		return err
	}
	if input.minWeight < 1 || input.maxWeight < input.minWeight {
		return fmt.Errorf("weights must satisfy 1 <= --min-weight <= --max-weight, got %d..%d",
			input.minWeight, input.maxWeight)
	}
	cons, n, err := constructorFor(input)
	if err != nil {
		return err
	}
	if n < 1 {
		n = 1
	}

	g, err := builder.Build(n, cons,
		builder.WithSeed(input.seed),
		builder.WithWeightRange(input.minWeight, input.maxWeight))
	if err != nil {
		return err
	}
	spec := graphfile.FromGraph(g, strings.ToLower(input.kind))
	log.WithFields(log.Fields{
		"kind":     spec.Name,
		"vertices": spec.Vertices,
		"edges":    len(spec.Edges),
	}).Debug("graph generated")

	if input.output == "" {
		return graphfile.Encode(cmd.OutOrStdout(), spec, f)
	}
	fh, err := os.Create(input.output)
	if err != nil {
		return err
	}
	if err = graphfile.Encode(fh, spec, f); err != nil {
		fh.Close()
		return err
	}

	return fh.Close()
}
