package render_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/postman/core"
	"github.com/katalvlaran/postman/postman"
	"github.com/katalvlaran/postman/render"
)

func canonicalResult(t *testing.T) *postman.Result {
	t.Helper()
	g, err := core.NewGraph(6)
	require.NoError(t, err)
	for v := 0; v < 6; v++ {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range [][3]int64{
		{0, 1, 1}, {0, 3, 2}, {1, 2, 3}, {1, 3, 5},
		{2, 4, 6}, {2, 5, 2}, {3, 4, 4}, {4, 5, 1},
	} {
		require.NoError(t, g.AddEdge(int(e[0]), int(e[1]), e[2]))
	}
	res, err := postman.Solve(g)
	require.NoError(t, err)

	return res
}

func TestMatrix(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Matrix(&buf, [][]int64{{0, 3}, {3, 0}}))
	assert.Equal(t, "   0   3\n   3   0\n\n", buf.String())

	buf.Reset()
	require.NoError(t, render.Matrix(&buf, [][]int64{{0, 1234}}))
	assert.Equal(t, "   01234\n\n", buf.String(), "wide cells are not truncated")
}

func TestRoute(t *testing.T) {
	assert.Equal(t, "0-1 1-2 2-0", render.Route([]int{0, 1, 2, 0}))
	assert.Equal(t, "", render.Route([]int{4}))
	assert.Equal(t, "", render.Route(nil))
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Summary(&buf, canonicalResult(t)))

	want := strings.Join([]string{
		"start:  0",
		"odd:    [1 2 3 4]",
		"repeat: 1-0-3 (+3)",
		"repeat: 2-5-4 (+3)",
		"edges:  8 original, 12 traversed",
		"extra:  6",
		"weight: 30",
		"route:  0-1 1-0 0-3 3-1 1-2 2-4 4-5 5-2 2-5 5-4 4-3 3-0",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestStyledSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.StyledSummary(&buf, canonicalResult(t)))

	out := buf.String()
	assert.Contains(t, out, "weight")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "2-5-4 (+3)")
	assert.Contains(t, out, "╭", "rounded border")
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, canonicalResult(t)))

	var got struct {
		Start       int    `json:"start"`
		Weight      int64  `json:"weight"`
		ExtraWeight int64  `json:"extra_weight"`
		OddVertices []int  `json:"odd_vertices"`
		Algorithm   string `json:"algorithm"`
		Circuit     []int  `json:"circuit"`
		Repeated    []struct {
			From int   `json:"from"`
			To   int   `json:"to"`
			Path []int `json:"path"`
		} `json:"repeated"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, int64(30), got.Weight)
	assert.Equal(t, int64(6), got.ExtraWeight)
	assert.Equal(t, []int{1, 2, 3, 4}, got.OddVertices)
	assert.Equal(t, "fleury", got.Algorithm)
	assert.Len(t, got.Circuit, 13)
	require.Len(t, got.Repeated, 2)
	assert.Equal(t, []int{1, 0, 3}, got.Repeated[0].Path)
}

func TestJSON_EmptyListsAreArrays(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, &postman.Result{Circuit: []int{0}}))
	assert.Contains(t, buf.String(), `"odd_vertices": []`)
	assert.Contains(t, buf.String(), `"repeated": []`)
}
