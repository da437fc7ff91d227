package gamma

import "fmt"

func ExampleSign() {
	fmt.Println(Sign(2.5), Sign(-0.5), Sign(-1.5), Sign(-3.0))
	// Output:
	// 1 -1 1 0
}

func ExamplePoch() {
	fmt.Println(Poch(3.0, 4))
	fmt.Println(Poch(6.0, -2))
	fmt.Printf("%.6f\n", Poch(1.0, 0.5))
	fmt.Println(Poch(-2.2, 0.2))
	// Output:
	// 360
	// 0.05
	// 0.886227
	// NaN
}

func ExampleIsPole() {
	fmt.Println(IsPole(0.0), IsPole(-7.0), IsPole(-7.5), IsPole(3.0))
	// Output:
	// true true false false
}
