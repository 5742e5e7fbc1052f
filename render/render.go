package render

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/postman/postman"
)

// cellWidth is the fixed width of one matrix cell.
const cellWidth = 4

// Matrix writes m one row per line, every cell right-aligned in cellWidth
// columns, followed by a blank line.
func Matrix(w io.Writer, m [][]int64) error {
	bw := bufio.NewWriter(w)
	for _, row := range m {
		for _, cell := range row {
			fmt.Fprintf(bw, "%*d", cellWidth, cell)
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Route renders circuit as "a-b b-c ...". Circuits with fewer than two
// vertices have no steps and render as "".
func Route(circuit []int) string {
	if len(circuit) < 2 {
		return ""
	}
	var sb strings.Builder
	for i := 0; i+1 < len(circuit); i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(circuit[i]))
		sb.WriteByte('-')
		sb.WriteString(strconv.Itoa(circuit[i+1]))
	}

	return sb.String()
}

// joinPath renders a vertex sequence as "a-b-c".
func joinPath(path []int) string {
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, "-")
}

// summaryLines returns the label/value rows shared by both summary styles.
func summaryLines(res *postman.Result) [][2]string {
	lines := [][2]string{
		{"start", strconv.Itoa(res.Start)},
		{"odd", fmt.Sprint(res.OddVertices)},
	}
	for _, p := range res.Pairs {
		lines = append(lines, [2]string{"repeat", fmt.Sprintf("%s (+%s)", joinPath(p.Path), humanize.Comma(p.Weight))})
	}
	lines = append(lines,
		[2]string{"edges", fmt.Sprintf("%d original, %d traversed", res.EdgeCount, res.TraversalCount)},
		[2]string{"extra", humanize.Comma(res.ExtraWeight)},
		[2]string{"weight", humanize.Comma(res.Weight)},
		[2]string{"route", Route(res.Circuit)},
	)

	return lines
}

// Summary writes a plain-text report of res.
func Summary(w io.Writer, res *postman.Result) error {
	bw := bufio.NewWriter(w)
	for _, l := range summaryLines(res) {
		fmt.Fprintf(bw, "%-7s %s\n", l[0]+":", l[1])
	}

	return bw.Flush()
}

// report is the JSON shape of a Result.
type report struct {
	Start       int          `json:"start"`
	Weight      int64        `json:"weight"`
	ExtraWeight int64        `json:"extra_weight"`
	OddVertices []int        `json:"odd_vertices"`
	Repeated    []reportPair `json:"repeated"`
	Edges       int          `json:"edges"`
	Traversals  int          `json:"traversals"`
	Algorithm   string       `json:"algorithm"`
	Circuit     []int        `json:"circuit"`
}

type reportPair struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Path   []int `json:"path"`
	Weight int64 `json:"weight"`
}

// JSON writes res as an indented JSON object. Empty lists are written as [].
func JSON(w io.Writer, res *postman.Result) error {
	r := report{
		Start:       res.Start,
		Weight:      res.Weight,
		ExtraWeight: res.ExtraWeight,
		OddVertices: append([]int{}, res.OddVertices...),
		Repeated:    make([]reportPair, 0, len(res.Pairs)),
		Edges:       res.EdgeCount,
		Traversals:  res.TraversalCount,
		Algorithm:   res.Extractor.String(),
		Circuit:     append([]int{}, res.Circuit...),
	}
	for _, p := range res.Pairs {
		r.Repeated = append(r.Repeated, reportPair{From: p.U, To: p.V, Path: p.Path, Weight: p.Weight})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
