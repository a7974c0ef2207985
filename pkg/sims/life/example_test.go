package life_test

import (
	"fmt"
	"os"
	"strings"

	"sparse-life/pkg/sims/life"
)

func ExampleEngine() {
	e, err := life.Load(strings.NewReader("2 2\n2 3\n3 2\n3 3\n0 9\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("window:", e.Bounds())
	if err := e.Run(3); err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = life.WriteCells(os.Stdout, e.Live())
	// Output:
	// window: {4 9}
	// 2, 2
	// 2, 3
	// 3, 2
	// 3, 3
}
