package utils

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ToZeroLogArray renders every element with its String method.
func ToZeroLogArray[S ~[]E, E fmt.Stringer](s S) *zerolog.Array {
	arr := zerolog.Arr()

	for _, elem := range s {
		arr = arr.Str(elem.String())
	}

	return arr
}
