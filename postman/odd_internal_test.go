package postman

import (
	"errors"
	"testing"
)

func TestCheckParity(t *testing.T) {
	cases := []struct {
		name string
		odd  []int
		want error
	}{
		{"eulerian", nil, nil},
		{"one pair", []int{1, 4}, nil},
		{"two pairs", []int{1, 2, 3, 4}, nil},
		{"single", []int{3}, ErrDegreeParity},
		{"three", []int{0, 2, 5}, ErrDegreeParity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkParity(tc.odd)
			if !errors.Is(err, tc.want) {
				t.Fatalf("checkParity(%v) = %v; want %v", tc.odd, err, tc.want)
			}
		})
	}
}
