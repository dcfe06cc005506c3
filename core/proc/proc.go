// Package proc provides naming and identity for supervised goroutines.
package proc

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Name is a display label for a supervised goroutine. It is purely
// diagnostic: two goroutines may share a name, and a name carries no
// routing or ordering meaning.
type Name string

func (n Name) String() string { return string(n) }

// NewID returns a short unique goroutine identifier of the form "p-xxxxxx".
func NewID() string {
	return fmt.Sprintf("p-%s", gonanoid.Must(6))
}
