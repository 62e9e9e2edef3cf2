//go:build go1.22

package walk

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMT19937AsRandSource(t *testing.T) {
	r1 := rand.New(NewMT19937(99))
	r2 := rand.New(NewMT19937(99))
	for i := 0; i < 50; i++ {
		require.Equal(t, r1.IntN(1000), r2.IntN(1000))
	}
}
