package workload

import mrand "math/rand"

const alphanumeric = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// randText returns a random alphanumeric string of length n drawn from rng.
func randText(rng *mrand.Rand, n int) string {
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = alphanumeric[rng.Intn(len(alphanumeric))]
	}

	return string(buf)
}
