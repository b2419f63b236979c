// SPDX-License-Identifier: MIT

package atom_test

import (
	"fmt"

	"github.com/katalvlaran/spintools/atom"
)

// ExampleByName looks up the Rb87 ground level and prints its manifolds.
//
// Scenario:
//
//	Rb87 5S1/2: I = 3/2, J = 1/2 ⇒ F ∈ {1, 2}, g_F(2) ≈ +1/2.
func ExampleByName() {
	l, err := atom.ByName(atom.LevelRb87S12)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%s I=%g J=%g F=%v\n", l.ID(), l.I, l.J, l.Manifolds())
	fmt.Printf("g_F(2)=%.4f\n", l.GF(2))
	// Output:
	// Rb87-5S1/2 I=1.5 J=0.5 F=[1 2]
	// g_F(2)=0.4998
}
