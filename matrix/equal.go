// SPDX-License-Identifier: MIT

// Package matrix - whole-grid equality and hashing.
//
// Equal and Hash agree: equal matrices always produce equal hashes within a
// process. Element hashes come from hash/maphash with a per-process seed, so
// hash values are not stable across runs and must not be persisted.

package matrix

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// elemSeed seeds per-element hashing for the life of the process.
var elemSeed = maphash.MakeSeed()

// isNil reports whether m is a nil interface or wraps a nil *Dense.
func isNil[T comparable](m Matrix[T]) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense[T])

	return ok && d == nil
}

// Equal reports whether a and b have the same shape and == cells.
// Two nil matrices are equal; a nil and a non-nil matrix are not. A nil
// *Dense counts as nil.
//
// Complexity: Time O(r*c), Space O(1).
func Equal[T comparable](a, b Matrix[T]) bool {
	an, bn := isNil(a), isNil(b)
	if an || bn {
		return an && bn
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}
	// Fast path: compare flat buffers directly.
	if da, ok := a.(*Dense[T]); ok {
		if db, ok := b.(*Dense[T]); ok {
			for k := range da.data {
				if da.data[k] != db.data[k] {
					return false
				}
			}

			return true
		}
	}

	var i, j int
	for i = 0; i < a.Height(); i++ {
		for j = 0; j < a.Width(); j++ {
			va, _ := a.At(i, j) // in bounds by construction
			vb, _ := b.At(i, j)
			if va != vb {
				return false
			}
		}
	}

	return true
}

// Equal reports whether other is a Matrix[T] with the same shape and cells.
// Any other value, including nil, is simply not equal.
func (m *Dense[T]) Equal(other any) bool {
	o, ok := other.(Matrix[T])
	if !ok || m == nil || isNil(o) {
		return false
	}

	return Equal[T](m, o)
}

// Hash combines width, height (as the seed) and every element hash in
// row-major order. A nil matrix, including a nil *Dense, hashes to 0.
//
// Complexity: Time O(r*c), Space O(1).
func Hash[T comparable](m Matrix[T]) uint64 {
	if isNil(m) {
		return 0
	}
	h, w := m.Height(), m.Width()
	d := xxhash.NewWithSeed(uint64(w)<<32 ^ uint64(h))

	var buf [8]byte
	write := func(v T) {
		binary.LittleEndian.PutUint64(buf[:], maphash.Comparable(elemSeed, v))
		_, _ = d.Write(buf[:]) // Digest.Write never fails
	}

	if dm, ok := m.(*Dense[T]); ok {
		for k := range dm.data {
			write(dm.data[k])
		}

		return d.Sum64()
	}
	var i, j int
	for i = 0; i < h; i++ {
		for j = 0; j < w; j++ {
			v, _ := m.At(i, j)
			write(v)
		}
	}

	return d.Sum64()
}

// Hash is the method form of the package-level Hash.
func (m *Dense[T]) Hash() uint64 {
	if m == nil {
		return 0
	}

	return Hash[T](m)
}
