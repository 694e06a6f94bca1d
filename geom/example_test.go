package geom_test

import (
	"fmt"
	"math"

	"github.com/detrimentalist/nannou/geom"
)

func ExampleEllipse_Triangles() {
	e := geom.NewEllipse(geom.NewRectFromCenter(geom.Pt(0.0, 0.0), 2.0, 2.0), 4)

	circ := e.Circumference()
	fmt.Println(circ.Len())

	tris := e.Triangles()
	fmt.Println(tris.Len())

	n := 0
	for range tris.All() {
		n++
	}
	fmt.Println(n)
	// Output:
	// 5
	// 4
	// 4
}

func ExampleSection() {
	// The upper half of a circle, split into two quarter-turn sections.
	e := geom.NewCircle(geom.Pt(0.0, 0.0), 1.0, 64)
	first := e.Section(0, math.Pi/2)
	second := e.Section(math.Pi/2, math.Pi/2)

	fmt.Println(first.Circumference().Len())
	fmt.Println(second.Circumference().Len())
	// Output:
	// 65
	// 65
}
