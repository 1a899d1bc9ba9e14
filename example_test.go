package shufseq_test

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/yyyoichi/shufseq"
)

func ExampleNew() {
	g, err := shufseq.New("split", shufseq.WithSeed(1))
	if err != nil {
		fmt.Printf("Error creating generator: %v\n", err)
		return
	}
	if err := g.Init(8); err != nil {
		fmt.Printf("Error initializing generator: %v\n", err)
		return
	}
	defer g.Release()

	// Every pass of N calls emits each index exactly once
	for range 2 {
		pass := make([]uint32, 8)
		for i := range pass {
			pass[i] = g.Next()
		}
		slices.Sort(pass)
		fmt.Println(pass)
	}

	// Output:
	// [0 1 2 3 4 5 6 7]
	// [0 1 2 3 4 5 6 7]
}

func ExampleMeasure() {
	c, err := shufseq.Measure(context.Background(), "order", 10, 5)
	if err != nil {
		fmt.Printf("Error measuring: %v\n", err)
		return
	}
	s, err := c.Summary()
	if err != nil {
		fmt.Printf("Error summarizing: %v\n", err)
		return
	}
	fmt.Printf("min=%d max=%d avg=%.2f std=%.2f [%s]\n", s.Min, s.Max, s.AvgN(), s.StdN(), s.Judge().Std)

	// Output:
	// min=10 max=10 avg=1.00 std=0.00 [horrid]
}

func ExamplePrint() {
	if err := shufseq.Print(os.Stdout, "order", 4, 6); err != nil {
		fmt.Printf("Error printing: %v\n", err)
	}

	// Output:
	// 0 1
	// 1 2
	// 2 3
	// 3 0
	// 4 1
	// 5 2
}
