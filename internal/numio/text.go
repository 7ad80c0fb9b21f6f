package numio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/ndkit/nd/internal/array"
)

// SaveTxt writes an expression of rank 0 to 2 as delimited text, one
// row per line. A rank-1 expression is written as a single column so
// that LoadTxt reads it back with the same shape. An empty delimiter
// means a single space.
func SaveTxt[T array.DType](w io.Writer, e array.Expr[T], delim string) error {
	shape := e.Shape()
	if len(shape) > 2 {
		return errors.Wrapf(ErrUnsupportedRank, "shape %v; text holds rank 2 at most", shape)
	}
	if delim == "" {
		delim = " "
	}

	rows, cols := 1, 1
	switch len(shape) {
	case 1:
		rows = shape[0]
	case 2:
		rows, cols = shape[0], shape[1]
	}

	bw := bufio.NewWriter(w)
	ix := make(array.Index, len(shape))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			switch len(shape) {
			case 1:
				ix[0] = i
			case 2:
				ix[0], ix[1] = i, j
			}
			if j > 0 {
				if _, err := bw.WriteString(delim); err != nil {
					return errors.Wrap(err, "writing text row")
				}
			}
			if _, err := fmt.Fprintf(bw, "%v", array.At(e, ix...)); err != nil {
				return errors.Wrap(err, "writing text row")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "writing text row")
		}
	}
	return errors.Wrap(bw.Flush(), "flushing text output")
}

// LoadTxt reads delimited text back into an array. Blank lines are
// skipped. A single-column input loads as rank 1, anything wider as
// rank 2; rows must all have the same width. An empty delimiter
// splits on any run of whitespace.
func LoadTxt[T array.DType](r io.Reader, delim string) (*array.Array[T], error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<22)

	var (
		data []T
		cols = -1
		row  = 0
	)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := splitFields(line, delim)
		if cols < 0 {
			cols = len(fields)
		} else if len(fields) != cols {
			return nil, errors.Wrapf(ErrRaggedText, "row %d has %d values, want %d", row, len(fields), cols)
		}
		for _, field := range fields {
			v, err := parseValue[T](field)
			if err != nil {
				return nil, errors.Wrapf(err, "row %d", row)
			}
			data = append(data, v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading text input")
	}

	if cols <= 1 {
		return array.FromSlice(data, array.Shape{len(data)})
	}
	return array.FromSlice(data, array.Shape{row, cols})
}

// SaveTxtFile writes the expression as text to a file.
func SaveTxtFile[T array.DType](path string, e array.Expr[T], delim string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return SaveTxt(f, e, delim)
}

// LoadTxtFile reads delimited text back from a file.
func LoadTxtFile[T array.DType](path string, delim string) (out *array.Array[T], err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))
	return LoadTxt[T](f, delim)
}

func splitFields(line, delim string) []string {
	if delim == "" {
		return strings.Fields(line)
	}
	fields := strings.Split(line, delim)
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

// parseValue converts one text token to the element type. The type
// switch runs on the reflected kind so a single parser covers every
// integer width as well as bool and the floats.
func parseValue[T array.DType](s string) (T, error) {
	var v T
	rv := reflect.ValueOf(&v).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return v, errors.Wrapf(array.ErrInvalidArgument, "parsing %q as bool", s)
		}
		rv.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, rv.Type().Bits())
		if err != nil {
			return v, errors.Wrapf(array.ErrInvalidArgument, "parsing %q as %s", s, rv.Type())
		}
		rv.SetInt(i)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u, err := strconv.ParseUint(s, 10, rv.Type().Bits())
		if err != nil {
			return v, errors.Wrapf(array.ErrInvalidArgument, "parsing %q as %s", s, rv.Type())
		}
		rv.SetUint(u)
	default:
		f, err := strconv.ParseFloat(s, rv.Type().Bits())
		if err != nil {
			return v, errors.Wrapf(array.ErrInvalidArgument, "parsing %q as %s", s, rv.Type())
		}
		rv.SetFloat(f)
	}
	return v, nil
}
