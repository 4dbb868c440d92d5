package boxgrid_test

import (
	"fmt"

	"github.com/katalvlaran/securebox/boxgrid"
)

// ExampleBox_Toggle shows the full flip pattern of a single toggle:
// the pivot's row, the pivot's column, and one extra flip on the pivot.
func ExampleBox_Toggle() {
	b, _ := boxgrid.New(3, 3)
	b.Toggle(1, 1)

	for _, row := range b.State() {
		line := ""
		for _, locked := range row {
			if locked {
				line += "#"
			} else {
				line += "."
			}
		}
		fmt.Println(line)
	}
	fmt.Println("locked:", b.IsLocked())
	// Output:
	// .#.
	// ###
	// .#.
	// locked: true
}
