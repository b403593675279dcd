package q31_test

import (
	"fmt"

	"github.com/cwbudde/algo-fixpoint/dsp/q31"
)

func ExampleBuffer_AddInPlace() {
	acc := q31.New(3)
	block := q31.FromSlice([]int32{1 << 20, -(1 << 20), 2147483647})

	acc.AddInPlace(block)
	acc.AddInPlace(block) // second accumulation saturates the last slot

	fmt.Println(acc.Samples())

	// Output:
	// [2097152 -2097152 2147483647]
}
