// Package fixtures generates random input data for product tests.
// This is primary and only used for testing.
package fixtures

import (
	"math/rand"
	"sync"

	"github.com/Pallinder/go-randomdata"
)

var mutex sync.Mutex

// Words returns n distinct random names.
func Words(n int) []string {
	mutex.Lock()
	defer mutex.Unlock()

	seen := make(map[string]struct{}, n)
	words := make([]string, 0, n)
	for len(words) < n {
		w := randomdata.SillyName()
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	return words
}

// Length returns a random sequence length between min and max, inclusive.
func Length(min, max int) int {
	mutex.Lock()
	defer mutex.Unlock()
	return randomdata.Number(min, max+1)
}

// Table returns the elements of levels random sequences,
// each with a length between minLen and maxLen, inclusive.
// Elements are distinct within a sequence.
func Table(levels, minLen, maxLen int) [][]string {
	var table [][]string
	for i := 0; i < levels; i++ {
		table = append(table, Words(Length(minLen, maxLen)))
	}
	return table
}

// Shuffle returns the values in a random order.
func Shuffle[T any](vs []T) []T {
	out := append([]T(nil), vs...)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
