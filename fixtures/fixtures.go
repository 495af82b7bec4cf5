// Package fixtures provide random test data generation helpers.
// This is primary and only used for testing.
package fixtures

import (
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

var mutex sync.Mutex

// Ints returns a slice with the given length, populated with random numbers.
func Ints(length int) []int {
	vs := make([]int, 0, length)
	for i := 0; i < length; i++ {
		vs = append(vs, rand.Int())
	}
	return vs
}

// Words returns a slice with the given length, populated with random words.
func Words(length int) []string {
	mutex.Lock()
	defer mutex.Unlock()

	vs := make([]string, 0, length)
	for i := 0; i < length; i++ {
		vs = append(vs, randomdata.SillyName())
	}
	return vs
}

// Number returns a random number from the given range.
func Number(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()

	return randomdata.Number(min, max)
}
