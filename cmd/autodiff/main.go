// Package main provides the autodiff CLI.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/rizTaak/autodiff/graph"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("autodiff %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("autodiff - scalar expression graphs with exact gradients")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Differentiate f = x*y + y*z and dump the graph")
}

// demo builds the shared-leaf example, runs both differentiation modes,
// and prints the annotated graph after each pass.
func demo() {
	g := graph.New()
	x := g.Leaf("x")
	y := g.Leaf("y")
	z := g.Leaf("z")
	f := x.Mul(y).Add(y.Mul(z))

	x.Assign(3.0)
	y.Assign(5.0)
	z.Assign(11.0)

	v, err := f.Value()
	if err != nil {
		log.Fatalf("forward pass failed: %v", err)
	}
	fmt.Printf("f = x*y + y*z at x=3 y=5 z=11\n\n**** eval ****\nf = %g\n", v)
	f.Print()

	if _, err := f.Derivative(y); err != nil {
		log.Fatalf("forward-mode pass failed: %v", err)
	}
	fmt.Println("\n**** forward mode, d/dy ****")
	f.Print()

	if err := f.Backward(); err != nil {
		log.Fatalf("backward pass failed: %v", err)
	}
	fmt.Println("\n**** reverse mode ****")
	f.Print()
	fmt.Printf("\ndf/dx=%g df/dy=%g df/dz=%g\n", x.Grad(), y.Grad(), z.Grad())
}
