package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeqConcat(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqConcat(slices.Values([]int{1, 2}), slices.Values([]int(nil)), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	var first []int
	for val := range seq {
		first = append(first, val)
		if val == 2 {
			break
		}
	}
	assert.Equal([]int{1, 2}, first)
}

func TestIterSeqUntil(t *testing.T) {
	assert := assert.New(t)

	seq := IterSeqUntil(slices.All([]string{"a", "b", "stop", "c"}), func(_ int, val string) bool {
		return val == "stop"
	})
	assert.Equal(map[int]string{0: "a", 1: "b", 2: "stop"}, maps.Collect(seq))

	count := 0
	for range IterSeqUntil(slices.All([]int{1, 2, 3}), func(int, int) bool { return false }) {
		count++
	}
	assert.Equal(3, count)
}
