// Package numio reads and writes arrays in a minimal raw container.
//
// The binary layout is nothing but the shape followed by the payload:
//
//	Format Structure:
//	  [8 bytes per axis: extent (uint64 LE)]
//	  [Element data: raw fixed-width values in logical row-major order]
//
// There is no magic, no version field, and no element type tag: the
// reader must already know the rank and the element type. This makes
// the format a raw exchange container rather than a self-describing
// one, and it is exactly as portable as the element encoding, so the
// machine-dependent types (int, uint, uintptr) are rejected.
//
// The text format is line-oriented: one row per line, values separated
// by a delimiter, readable back for rank 0 to 2.
//
// Example usage:
//
//	// Save an array (or any expression)
//	if err := numio.SaveFile("weights.bin", w); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Load it back; rank and element type come from the caller
//	w, err := numio.LoadFile[float64]("weights.bin", 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
package numio
