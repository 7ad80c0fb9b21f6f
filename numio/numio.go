// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numio reads and writes arrays in a minimal binary layout
// and as delimited text.
//
// The binary layout is one uint64 extent per axis, little-endian,
// followed by the raw elements in logical row-major order. There is
// no magic number, version, or element type tag: readers must know
// the rank and element type out of band. Machine-dependent element
// types (int, uint, uintptr) are rejected on both ends.
//
// Example:
//
//	a := array.Full(array.Shape{2, 3}, 1.5)
//	if err := numio.SaveFile[float64]("a.nd", a); err != nil {
//	    log.Fatal(err)
//	}
//	b, err := numio.LoadFile[float64]("a.nd", 2)
package numio

import (
	"io"

	"github.com/ndkit/nd/array"
	"github.com/ndkit/nd/internal/numio"
)

// Common errors.
var (
	// ErrUnsupportedType reports an element type with no fixed-width
	// encoding.
	ErrUnsupportedType = numio.ErrUnsupportedType
	// ErrBadHeader reports a truncated or oversized shape header.
	ErrBadHeader = numio.ErrBadHeader
	// ErrBadPayload reports element data shorter than the header
	// promises.
	ErrBadPayload = numio.ErrBadPayload
	// ErrUnsupportedRank reports a text save above rank 2.
	ErrUnsupportedRank = numio.ErrUnsupportedRank
	// ErrRaggedText reports text rows of uneven width.
	ErrRaggedText = numio.ErrRaggedText
)

// Save writes an expression in the binary layout. Elements stream
// from the expression in chunks, so large lazy expressions save
// without being materialized.
func Save[T array.DType](w io.Writer, e array.Expr[T]) error {
	return numio.Save(w, e)
}

// Load reads an array of known rank and element type back.
//
// Example:
//
//	a, err := numio.Load[float64](r, 2)
func Load[T array.DType](r io.Reader, rank int) (*array.Array[T], error) {
	return numio.Load[T](r, rank)
}

// SaveFile writes an expression in the binary layout to a file.
func SaveFile[T array.DType](path string, e array.Expr[T]) error {
	return numio.SaveFile(path, e)
}

// LoadFile reads an array back from a file.
func LoadFile[T array.DType](path string, rank int) (*array.Array[T], error) {
	return numio.LoadFile[T](path, rank)
}

// SaveTxt writes an expression of rank 0 to 2 as delimited text, one
// row per line. An empty delimiter means a single space.
//
// Example:
//
//	err := numio.SaveTxt(os.Stdout, m, ", ")
func SaveTxt[T array.DType](w io.Writer, e array.Expr[T], delim string) error {
	return numio.SaveTxt(w, e, delim)
}

// LoadTxt reads delimited text back into an array. A single-column
// input loads as rank 1, anything wider as rank 2. An empty
// delimiter splits on whitespace.
func LoadTxt[T array.DType](r io.Reader, delim string) (*array.Array[T], error) {
	return numio.LoadTxt[T](r, delim)
}

// SaveTxtFile writes the expression as text to a file.
func SaveTxtFile[T array.DType](path string, e array.Expr[T], delim string) error {
	return numio.SaveTxtFile(path, e, delim)
}

// LoadTxtFile reads delimited text back from a file.
func LoadTxtFile[T array.DType](path string, delim string) (*array.Array[T], error) {
	return numio.LoadTxtFile[T](path, delim)
}
