package internal

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// SortedSeq2 iterates a map in ascending key order.
func SortedSeq2[K cmp.Ordered, V any](m map[K]V) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, key := range slices.Sorted(maps.Keys(m)) {
			if !yield(key, m[key]) {
				return // Stop if the consumer stops
			}
		}
	}
}

// MapSeq2 transforms each pair of a dual-return iterator into a single value.
func MapSeq2[K any, V any, T any](seq iter.Seq2[K, V], fn func(K, V) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for key, value := range seq {
			if !yield(fn(key, value)) {
				return // Stop if the consumer stops
			}
		}
	}
}
