package array

import (
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// DType is the constraint for supported array element types.
type DType interface {
	constraints.Integer | constraints.Float | ~bool
}

// Numeric is the subset of DType that supports arithmetic.
type Numeric interface {
	constraints.Integer | constraints.Float
}

// Integer is the subset of DType covering integer elements.
type Integer interface {
	constraints.Integer
}

// Float is the subset of DType covering floating-point elements.
type Float interface {
	constraints.Float
}

// DataType represents runtime type information for array elements.
type DataType int

// Supported element categories.
const (
	Bool DataType = iota
	Int8
	Int16
	Int32
	Int64
	Int
	Uint8
	Uint16
	Uint32
	Uint64
	Uint
	Uintptr
	Float32
	Float64
)

// Size returns the in-memory byte size of the data type.
func (dt DataType) Size() int {
	switch dt {
	case Bool, Int8, Uint8:
		return 1
	case Int16, Uint16:
		return 2
	case Int32, Uint32, Float32:
		return 4
	case Int64, Uint64, Float64:
		return 8
	case Int, Uint, Uintptr:
		return strconv.IntSize / 8
	default:
		panic("unknown data type")
	}
}

// FixedWidth reports whether the type has the same byte size on every
// platform. Int, Uint, and Uintptr are machine dependent.
func (dt DataType) FixedWidth() bool {
	switch dt {
	case Int, Uint, Uintptr:
		return false
	default:
		return true
	}
}

// String returns a human-readable name for the data type.
func (dt DataType) String() string {
	switch dt {
	case Bool:
		return "bool"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	case Int:
		return "int"
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Uint64:
		return "uint64"
	case Uint:
		return "uint"
	case Uintptr:
		return "uintptr"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	default:
		return "unknown"
	}
}

// DataTypeOf resolves the runtime DataType for element type T.
// Named types resolve through their underlying kind.
func DataTypeOf[T DType]() DataType {
	var zero T
	switch reflect.TypeOf(zero).Kind() {
	case reflect.Bool:
		return Bool
	case reflect.Int8:
		return Int8
	case reflect.Int16:
		return Int16
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Int:
		return Int
	case reflect.Uint8:
		return Uint8
	case reflect.Uint16:
		return Uint16
	case reflect.Uint32:
		return Uint32
	case reflect.Uint64:
		return Uint64
	case reflect.Uint:
		return Uint
	case reflect.Uintptr:
		return Uintptr
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	default:
		panic("unsupported element type")
	}
}
