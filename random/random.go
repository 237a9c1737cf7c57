// The random package provides the SDK's source of randomness for
// generating test data. Setting the environment variable
// FLOATCHECK_SDK_SEED to a nonzero integer makes the sequence reproducible
// across runs, which is what you want when chasing a failing approximate
// comparison.
package random

import (
	"github.com/floatcheck/floatcheck-go/internal"
)

// GetRandom returns a uint64 from the SDK random source.
func GetRandom() uint64 {
	return internal.Get_random()
}

// RandomChoice returns a randomly chosen item from a list of options. You
// should not store this value, but should use it immediately.
func RandomChoice[T any](things []T) T {
	numThings := len(things)
	if numThings == 0 {
		var nullThing T
		return nullThing
	}

	uval := GetRandom()
	index := uval % uint64(numThings)
	return things[index]
}
