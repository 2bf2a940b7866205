package generator_test

import (
	"fmt"

	"github.com/katalvlaran/sortlab/generator"
)

func ExampleWorstCase() {
	in, _ := generator.WorstCase("insertion_sort", 5)
	fmt.Println(in)
	in, _ = generator.WorstCase("quick_sort", 5)
	fmt.Println(in)
	// Output:
	// [5 4 3 2 1]
	// [0 1 2 3 4]
}

func ExampleGenerate() {
	a, _ := generator.Generate(generator.Average, "heap_sort", 6, generator.WithSeed(42))
	b, _ := generator.Generate(generator.Average, "heap_sort", 6, generator.WithSeed(42))
	fmt.Println(len(a), fmt.Sprint(a) == fmt.Sprint(b))
	// Output:
	// 6 true
}

func ExampleParseCase() {
	c, _ := generator.ParseCase("pior")
	fmt.Println(c)
	_, err := generator.ParseCase("typical")
	fmt.Println(err)
	// Output:
	// worst
	// ParseCase: label "typical": generator: unknown case
}
