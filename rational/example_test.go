package rational_test

import (
	"fmt"

	"github.com/katalvlaran/linsteps/rational"
)

// ExampleNew shows construction and automatic normalization.
func ExampleNew() {
	r, _ := rational.New(2, 4)
	fmt.Println(r)
	r, _ = rational.New(3, -6)
	fmt.Println(r)
	// Output:
	// 1/2
	// -1/2
}

// ExampleFromFloat recovers exact fractions from decimal approximations.
func ExampleFromFloat() {
	third, _ := rational.FromFloat(0.3333333333333333)
	tenth, _ := rational.FromFloat(0.1)
	fmt.Println(third, tenth)
	// Output:
	// 1/3 1/10
}

// ExampleRational_Add demonstrates exact fraction arithmetic.
func ExampleRational_Add() {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)
	fmt.Println(half.Add(third))
	// Output:
	// 5/6
}
