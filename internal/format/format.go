// Package format renders arrays and expressions as NumPy-style nested
// bracket text for logging and debugging.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/ndkit/nd/internal/array"
)

// Options controls rendering behavior.
type Options struct {
	Precision int // Fractional digits for floats; -1 means shortest round-trip.
	Threshold int // Element count above which output is summarized.
	EdgeItems int // Items shown at each edge of a summarized axis.
}

// DefaultOptions returns the rendering defaults.
func DefaultOptions() Options {
	return Options{
		Precision: 4,
		Threshold: 1000,
		EdgeItems: 3,
	}
}

func (o Options) validate() error {
	if o.Precision < -1 {
		return errors.Wrapf(array.ErrInvalidArgument, "precision %d is below -1", o.Precision)
	}
	if o.Threshold < 0 {
		return errors.Wrapf(array.ErrInvalidArgument, "threshold %d is negative", o.Threshold)
	}
	if o.EdgeItems < 0 {
		return errors.Wrapf(array.ErrInvalidArgument, "edge items %d is negative", o.EdgeItems)
	}
	return nil
}

// Sprint renders the expression as nested bracket text. Axes longer
// than twice EdgeItems collapse to edge items around a "..." marker
// once the total element count exceeds Threshold. Only Shape and
// per-element reads are consumed, so any expression renders without
// being materialized.
func Sprint[T array.DType](e array.Expr[T], opts Options) (string, error) {
	if err := opts.validate(); err != nil {
		return "", err
	}

	r := renderer[T]{
		e:         e,
		shape:     e.Shape(),
		ix:        make(array.Index, len(e.Shape())),
		edge:      opts.EdgeItems,
		summarize: e.Shape().NumElements() > opts.Threshold,
		format:    valueFormatter[T](opts),
	}
	r.measure(0)
	r.render(0)
	return r.sb.String(), nil
}

// Fprint renders the expression to a writer.
func Fprint[T array.DType](w io.Writer, e array.Expr[T], opts Options) error {
	s, err := Sprint(e, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return errors.Wrap(err, "writing rendered array")
}

// valueFormatter picks the element renderer once per call. Floats
// honor Precision; every other element type uses its natural text.
func valueFormatter[T array.DType](opts Options) func(T) string {
	switch array.DataTypeOf[T]() {
	case array.Float32, array.Float64:
		if opts.Precision >= 0 {
			// The enclosing case guarantees v is a float here; boxing to
			// any keeps vet's printf check from flagging the int types
			// that DType also admits.
			return func(v T) string { return fmt.Sprintf("%.*f", opts.Precision, any(v)) }
		}
	}
	return func(v T) string { return fmt.Sprintf("%v", v) }
}

type renderer[T array.DType] struct {
	e         array.Expr[T]
	shape     array.Shape
	ix        array.Index
	edge      int
	summarize bool
	format    func(T) string
	width     int
	sb        strings.Builder
}

// skipped reports whether position i on an axis of extent n falls in
// the collapsed middle of a summarized axis.
func (r *renderer[T]) skipped(n, i int) bool {
	return r.summarize && n > 2*r.edge && i >= r.edge && i < n-r.edge
}

// measure walks the displayed positions to find the widest cell, so
// render can right-align every column.
func (r *renderer[T]) measure(axis int) {
	if axis == len(r.shape) {
		if w := len(r.format(array.At(r.e, r.ix...))); w > r.width {
			r.width = w
		}
		return
	}
	n := r.shape[axis]
	for i := 0; i < n; i++ {
		if r.skipped(n, i) {
			i = n - r.edge - 1
			continue
		}
		r.ix[axis] = i
		r.measure(axis + 1)
	}
}

func (r *renderer[T]) render(axis int) {
	if axis == len(r.shape) {
		fmt.Fprintf(&r.sb, "%*s", r.width, r.format(array.At(r.e, r.ix...)))
		return
	}
	n := r.shape[axis]
	r.sb.WriteByte('[')
	for i := 0; i < n; i++ {
		if r.skipped(n, i) {
			r.sb.WriteString("...")
			r.separator(axis)
			i = n - r.edge - 1
			continue
		}
		r.ix[axis] = i
		r.render(axis + 1)
		if i < n-1 {
			r.separator(axis)
		}
	}
	r.sb.WriteByte(']')
}

// separator writes the text between two entries of an axis: ", " on
// the innermost axis, a comma plus one blank line per remaining rank
// and indentation under the opening bracket everywhere else.
func (r *renderer[T]) separator(axis int) {
	if axis == len(r.shape)-1 {
		r.sb.WriteString(", ")
		return
	}
	r.sb.WriteByte(',')
	r.sb.WriteString(strings.Repeat("\n", len(r.shape)-axis-1))
	r.sb.WriteString(strings.Repeat(" ", axis+1))
}
