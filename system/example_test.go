// SPDX-License-Identifier: MIT

package system_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvdiff/spline"
	"github.com/katalvlaran/lvdiff/system"
)

// ExampleDiffusionSystem_D looks diffusivities up in a two-phase system
// whose phases are separated by a miscibility gap.
func ExampleDiffusionSystem_D() {
	alpha, _ := spline.FromNodes([]float64{0.1}, []float64{1e-15})
	beta, _ := spline.FromNodes([]float64{0.5, 0.9}, []float64{1e-14, 1e-13})
	sys, err := system.New(
		[]system.PhaseRange{{Lo: 0, Hi: 0.2}, {Lo: 0.4, Hi: 1}},
		[]*spline.Model{alpha, beta},
		nil,
		"NiAl",
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	for _, x := range []float64{0.1, 0.7, 0.3} {
		d, err := sys.D(x)
		if errors.Is(err, system.ErrOutOfRange) {
			fmt.Printf("X=%.1f: in the gap\n", x)
			continue
		}
		fmt.Printf("X=%.1f: %.2g\n", x, d)
	}
	// Output:
	// X=0.1: 1e-15
	// X=0.7: 3.2e-14
	// X=0.3: in the gap
}
