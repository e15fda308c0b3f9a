package utils

import "errors"

// FirstMatchingError returns the first target that err matches according to errors.Is.
func FirstMatchingError(err error, targets ...error) (error, bool) {
	for _, target := range targets {
		if errors.Is(err, target) {
			return target, true
		}
	}

	return nil, false
}
