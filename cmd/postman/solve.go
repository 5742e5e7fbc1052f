package main

import (
	"context"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/postman/euler"
	"github.com/katalvlaran/postman/graphfile"
	"github.com/katalvlaran/postman/postman"
	"github.com/katalvlaran/postman/render"
)

func newSolveCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve the graph in file (or stdin when file is omitted or -)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := readSpec(cmd, input, args)
			if err != nil {
				return err
			}

			return runSolve(ctx, cmd, input, spec)
		},
	}
	addSolveFlags(cmd.Flags(), input)
	cmd.Flags().StringVarP(&input.format, "format", "f", "", "input format: yaml, toml or json (default: from extension, yaml for stdin)")

	return cmd
}

func newDemoCommand(ctx context.Context, input *Input) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in six-vertex example (optimal weight 30)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSolve(ctx, cmd, input, demoSpec())
		},
	}
	addSolveFlags(cmd.Flags(), input)

	return cmd
}

// demoSpec is the six-vertex street map with odd vertices 1, 2, 3, 4.
func demoSpec() *graphfile.Spec {
	return &graphfile.Spec{
		Name:     "demo",
		Vertices: 6,
		Edges: []graphfile.Edge{
			{From: 0, To: 1, Weight: 1}, {From: 0, To: 3, Weight: 2},
			{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 5},
			{From: 2, To: 4, Weight: 6}, {From: 2, To: 5, Weight: 2},
			{From: 3, To: 4, Weight: 4}, {From: 4, To: 5, Weight: 1},
		},
	}
}

// readSpec loads the document named by args[0], or reads stdin.
func readSpec(cmd *cobra.Command, input *Input, args []string) (*graphfile.Spec, error) {
	if len(args) == 1 && args[0] != "-" {
		if input.format == "" {
			log.Debugf("reading %s", args[0])
			return graphfile.Load(args[0])
		}
		f, err := graphfile.ParseFormat(input.format)
		if err != nil {
			return nil, err
		}
		fh, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return graphfile.Decode(fh, f)
	}

	f := graphfile.FormatYAML
	if input.format != "" {
		var err error
		if f, err = graphfile.ParseFormat(input.format); err != nil {
			return nil, err
		}
	}
	log.Debugf("reading %s from stdin", f)

	return graphfile.Decode(cmd.InOrStdin(), f)
}

// solveOptions translates flags into postman options.
func solveOptions(cmd *cobra.Command, input *Input, spec *graphfile.Spec) ([]postman.Option, error) {
	start := spec.Start
	if cmd.Flags().Changed("start") {
		start = input.start
	}
	if start < 0 {
		return nil, fmt.Errorf("--start must be >= 0, got %d", start)
	}
	if input.workers < 0 {
		return nil, fmt.Errorf("--workers must be >= 0, got %d", input.workers)
	}
	if input.maxOdd < 0 {
		return nil, fmt.Errorf("--max-odd must be >= 0, got %d", input.maxOdd)
	}
	alg, err := euler.ParseAlgorithm(input.algorithm)
	if err != nil {
		return nil, err
	}

	opts := []postman.Option{
		postman.WithStart(start),
		postman.WithExtractor(alg),
		postman.WithMaxOddVertices(input.maxOdd),
		postman.WithLogger(log.StandardLogger()),
	}
	if input.workers > 0 {
		opts = append(opts, postman.WithWorkers(input.workers))
	}

	return opts, nil
}

func runSolve(ctx context.Context, cmd *cobra.Command, input *Input, spec *graphfile.Spec) error {
	opts, err := solveOptions(cmd, input, spec)
	if err != nil {
		return err
	}
	g, err := spec.Build()
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"name":     spec.Name,
		"vertices": spec.Vertices,
		"edges":    len(spec.Edges),
	}).Debug("graph loaded")

	out := cmd.OutOrStdout()
	if input.matrix {
		if err = render.Matrix(out, g.AdjacencyMatrixSnapshot()); err != nil {
			return err
		}
	}

	res, err := postman.SolveContext(ctx, g, opts...)
	if err != nil {
		return err
	}

	return writeResult(out, input, res)
}

func writeResult(out io.Writer, input *Input, res *postman.Result) error {
	switch {
	case input.jsonOut:
		return render.JSON(out, res)
	case isTerminal(out):
		return render.StyledSummary(out, res)
	default:
		return render.Summary(out, res)
	}
}
