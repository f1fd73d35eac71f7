package internal

import (
	"iter"
)

// IterSeqConcat concatenates multiple iterators into a single iterator sequence.
func IterSeqConcat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// IterSeqUntil yields pairs from seq up to and including the first pair
// for which stop returns true.
func IterSeqUntil[T1 any, T2 any](seq iter.Seq2[T1, T2], stop func(T1, T2) bool) iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {
		for val1, val2 := range seq {
			if !yield(val1, val2) || stop(val1, val2) {
				return
			}
		}
	}
}
