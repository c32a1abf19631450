package test

import (
	"math/rand"
	"sync"
	"time"
)

const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

var (
	randMu  sync.Mutex
	randSrc = rand.New(rand.NewSource(time.Now().UnixNano()))
)

func randomIntn(n int) int {
	randMu.Lock()
	defer randMu.Unlock()
	return randSrc.Intn(n)
}

// RandomASCIIString returns a pseudo-random alphanumeric string whose length
// falls within [minLen, maxLen].
func RandomASCIIString(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}

	length := minLen
	if maxLen > minLen {
		length += randomIntn(maxLen - minLen + 1)
	}

	out := make([]byte, length)
	for i := range out {
		out[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(out)
}
