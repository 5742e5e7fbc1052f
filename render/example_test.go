package render_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/postman/render"
)

func ExampleRoute() {
	fmt.Println(render.Route([]int{0, 1, 2, 1, 0}))
	// Output: 0-1 1-2 2-1 1-0
}

func ExampleMatrix() {
	_ = render.Matrix(os.Stdout, [][]int64{
		{0, 1, 0},
		{1, 0, 7},
		{0, 7, 0},
	})
	// Output:
	//    0   1   0
	//    1   0   7
	//    0   7   0
}
