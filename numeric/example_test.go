package numeric_test

import (
	"fmt"

	"github.com/katalvlaran/deltarun/numeric"
)

// ExampleTolerant shows how a fixed epsilon changes equality and Min.
func ExampleTolerant() {
	p, _ := numeric.NewTolerant(0.01)

	fmt.Println(p.Equal(1.004, 1.0))
	fmt.Println(p.Greater(1.02, 1.0))
	fmt.Println(numeric.Min(p, 1.004, 1.0)) // equal within eps: first wins
	fmt.Println(numeric.Classify(p, -0.5))
	// Output:
	// true
	// true
	// 1.004
	// -
}
