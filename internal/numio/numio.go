package numio

import (
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ndkit/nd/internal/array"
)

// chunkElems bounds the staging buffer used when streaming an
// expression's elements to a writer.
const chunkElems = 4096

// Save writes the expression's extents and elements to w. Any
// expression works as a source and is evaluated element by element;
// saving a large lazy expression never materializes it whole.
func Save[T array.DType](w io.Writer, e array.Expr[T]) error {
	if dt := array.DataTypeOf[T](); !dt.FixedWidth() {
		return errors.Wrapf(ErrUnsupportedType, "%s varies across platforms; convert to a fixed-width type first", dt)
	}
	shape := e.Shape()
	header := make([]uint64, len(shape))
	for i, dim := range shape {
		header[i] = uint64(dim)
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return errors.Wrapf(err, "writing %d extents", len(header))
	}

	buf := make([]T, 0, min(shape.NumElements(), chunkElems))
	for v := range array.Values(e) {
		buf = append(buf, v)
		if len(buf) == chunkElems {
			if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
				return errors.Wrap(err, "writing elements")
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
			return errors.Wrap(err, "writing elements")
		}
	}
	return nil
}

// Load reads an array of the given rank from r. The element type and
// rank are not recorded in the stream, so the caller must supply the
// same ones used to save it.
func Load[T array.DType](r io.Reader, rank int) (*array.Array[T], error) {
	if dt := array.DataTypeOf[T](); !dt.FixedWidth() {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s varies across platforms; load a fixed-width type instead", dt)
	}
	if rank < 0 {
		return nil, errors.Wrapf(array.ErrInvalidArgument, "negative rank %d", rank)
	}

	header := make([]uint64, rank)
	if err := binary.Read(r, binary.LittleEndian, header); err != nil {
		return nil, errors.Wrapf(ErrBadHeader, "reading %d extents: %v", rank, err)
	}
	shape := make(array.Shape, rank)
	for i, dim := range header {
		if dim > math.MaxInt {
			return nil, errors.Wrapf(ErrBadHeader, "extent %d overflows int", dim)
		}
		shape[i] = int(dim)
	}

	out, err := array.New[T](shape)
	if err != nil {
		return nil, errors.Wrapf(err, "allocating shape %v", shape)
	}
	if out.NumElements() == 0 {
		return out, nil
	}
	if err := binary.Read(r, binary.LittleEndian, out.Data()); err != nil {
		return nil, errors.Wrapf(ErrBadPayload, "reading %d elements for shape %v: %v", out.NumElements(), shape, err)
	}
	return out, nil
}

// SaveFile writes the expression to a file, creating or truncating it.
func SaveFile[T array.DType](path string, e array.Expr[T]) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return Save(f, e)
}

// LoadFile reads an array of the given rank back from a file.
func LoadFile[T array.DType](path string, rank int) (out *array.Array[T], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return Load[T](f, rank)
}
