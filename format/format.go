// Copyright 2026 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package format renders arrays and expressions as NumPy-style
// nested bracket text.
//
// Rendering consumes only an expression's shape and per-element
// reads, so lazy expressions print without being materialized. Output
// is summarized with "..." markers once the element count exceeds the
// configured threshold.
//
// Example:
//
//	s, err := format.Sprint[float64](m, format.DefaultOptions())
//	// [[1.0000, 2.0000],
//	//  [3.0000, 4.0000]]
package format

import (
	"io"

	"github.com/ndkit/nd/array"
	"github.com/ndkit/nd/internal/format"
)

// Options controls rendering behavior.
type Options = format.Options

// DefaultOptions returns the rendering defaults: precision 4,
// threshold 1000, and 3 edge items.
func DefaultOptions() Options {
	return format.DefaultOptions()
}

// Sprint renders an expression as nested bracket text. Malformed
// options fail with an error wrapping array.ErrInvalidArgument.
func Sprint[T array.DType](e array.Expr[T], opts Options) (string, error) {
	return format.Sprint(e, opts)
}

// Fprint renders an expression to a writer.
func Fprint[T array.DType](w io.Writer, e array.Expr[T], opts Options) error {
	return format.Fprint(w, e, opts)
}
