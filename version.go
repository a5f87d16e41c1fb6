package bedscan

import "fmt"

// Release numbers of the bedscan library.
const (
	Major = 0
	Minor = 1
	Patch = 0
)

// Version returns the library version as major.minor.patch.
func Version() string {
	return fmt.Sprintf("%d.%d.%d", Major, Minor, Patch)
}
