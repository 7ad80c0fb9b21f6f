package array

import "iter"

// Expr is a lazily evaluated array-valued expression. Owning arrays,
// views, selections, scalars, ranges, and every operation node satisfy
// it. The hierarchy is closed: evaluation internals stay inside the
// package and user extension goes through Apply and Combine.
//
// An expression holds non-owning references to its leaves and must be
// consumed, via Materialize, Assign, a reduction, or iteration, while
// those leaves are alive.
type Expr[T DType] interface {
	// Shape returns the extents of the expression's result, computed
	// at construction time.
	Shape() Shape

	// item evaluates one element. The coordinates are trusted to be in
	// bounds for Shape and the slice must not be retained.
	item(ix Index) T

	// lift returns an equivalent expression of shape to. The target is
	// trusted to be a broadcast of Shape. Strided leaves widen with
	// zero strides; other leaves fold coordinates, so broadcasting
	// never adds per-node work to interior arithmetic.
	lift(to Shape) Expr[T]

	// refs visits the storage buffers referenced by the expression's
	// leaves, used for alias detection before in-place writes.
	refs(fn func(leafRef))
}

// Mutable is an Expr whose elements can be written in place: owning
// arrays, views, and selections.
type Mutable[T DType] interface {
	Expr[T]
	setItem(ix Index, v T)
}

// incIndex advances coordinates one step in logical flat order
// (last axis fastest), wrapping to all zeros at the end.
func incIndex(ix Index, shape Shape) {
	for a := len(ix) - 1; a >= 0; a-- {
		ix[a]++
		if ix[a] < shape[a] {
			return
		}
		ix[a] = 0
	}
}

// At evaluates one element of an expression at the given coordinates.
// Panics if the coordinates are out of bounds.
func At[T DType](e Expr[T], indices ...int) T {
	if err := CheckBounds(e.Shape(), indices); err != nil {
		panic(err)
	}
	return e.item(indices)
}

// AtFlat evaluates one element of an expression at the given logical
// flat position. Panics if the position is out of range.
func AtFlat[T DType](e Expr[T], i int) T {
	ix, err := Unravel(e.Shape(), i, RowMajor)
	if err != nil {
		panic(err)
	}
	return e.item(ix)
}

// Values returns an iterator over the expression's elements in logical
// flat order. The expression is evaluated as the sequence is consumed.
func Values[T DType](e Expr[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		shape := e.Shape()
		n := shape.NumElements()
		ix := make(Index, len(shape))
		for i := 0; i < n; i++ {
			if !yield(e.item(ix)) {
				return
			}
			incIndex(ix, shape)
		}
	}
}

// scalarNode broadcasts a single value to any shape.
type scalarNode[T DType] struct {
	value T
	shape Shape
}

// Scalar returns a rank-0 expression holding a single value. It
// broadcasts against any shape.
func Scalar[T DType](v T) Expr[T] {
	return &scalarNode[T]{value: v, shape: Shape{}}
}

func (n *scalarNode[T]) Shape() Shape { return n.shape }
func (n *scalarNode[T]) item(Index) T { return n.value }
func (n *scalarNode[T]) lift(to Shape) Expr[T] { return &scalarNode[T]{value: n.value, shape: to} }
func (n *scalarNode[T]) refs(func(leafRef)) {}

// unaryNode applies an element function to one child.
type unaryNode[T DType] struct {
	child Expr[T]
	shape Shape
	fn    func(T) T
}

func (n *unaryNode[T]) Shape() Shape { return n.shape }
func (n *unaryNode[T]) item(ix Index) T { return n.fn(n.child.item(ix)) }
func (n *unaryNode[T]) lift(to Shape) Expr[T] {
	return &unaryNode[T]{child: n.child.lift(to), shape: to, fn: n.fn}
}
func (n *unaryNode[T]) refs(fn func(leafRef)) { n.child.refs(fn) }

// binaryNode applies an element function to two children of equal
// shape; operand widening happened at construction.
type binaryNode[T DType] struct {
	a, b  Expr[T]
	shape Shape
	fn    func(T, T) T
}

func (n *binaryNode[T]) Shape() Shape { return n.shape }
func (n *binaryNode[T]) item(ix Index) T { return n.fn(n.a.item(ix), n.b.item(ix)) }
func (n *binaryNode[T]) lift(to Shape) Expr[T] {
	return &binaryNode[T]{a: n.a.lift(to), b: n.b.lift(to), shape: to, fn: n.fn}
}
func (n *binaryNode[T]) refs(fn func(leafRef)) {
	n.a.refs(fn)
	n.b.refs(fn)
}

// cmpNode compares two children element-wise, producing booleans.
type cmpNode[T DType] struct {
	a, b  Expr[T]
	shape Shape
	fn    func(T, T) bool
}

func (n *cmpNode[T]) Shape() Shape { return n.shape }
func (n *cmpNode[T]) item(ix Index) bool { return n.fn(n.a.item(ix), n.b.item(ix)) }
func (n *cmpNode[T]) lift(to Shape) Expr[bool] {
	return &cmpNode[T]{a: n.a.lift(to), b: n.b.lift(to), shape: to, fn: n.fn}
}
func (n *cmpNode[T]) refs(fn func(leafRef)) {
	n.a.refs(fn)
	n.b.refs(fn)
}

// whereNode selects between two children element-wise.
type whereNode[T DType] struct {
	cond  Expr[bool]
	x, y  Expr[T]
	shape Shape
}

func (n *whereNode[T]) Shape() Shape { return n.shape }
func (n *whereNode[T]) item(ix Index) T {
	if n.cond.item(ix) {
		return n.x.item(ix)
	}
	return n.y.item(ix)
}
func (n *whereNode[T]) lift(to Shape) Expr[T] {
	return &whereNode[T]{cond: n.cond.lift(to), x: n.x.lift(to), y: n.y.lift(to), shape: to}
}
func (n *whereNode[T]) refs(fn func(leafRef)) {
	n.cond.refs(fn)
	n.x.refs(fn)
	n.y.refs(fn)
}

// broadcastNode folds output coordinates down to a lower-rank child.
// It carries leaves that have no strided layout, such as ranges and
// selections, and whole structural nodes, through a broadcast.
type broadcastNode[T DType] struct {
	child   Expr[T]
	shape   Shape
	folded  []bool
	scratch Index
}

func broadcast[T DType](child Expr[T], to Shape) *broadcastNode[T] {
	cs := child.Shape()
	folded := make([]bool, len(cs))
	off := len(to) - len(cs)
	for a := range cs {
		folded[a] = cs[a] == 1 && to[off+a] != 1
	}
	return &broadcastNode[T]{
		child:   child,
		shape:   to.Clone(),
		folded:  folded,
		scratch: make(Index, len(cs)),
	}
}

func (n *broadcastNode[T]) Shape() Shape { return n.shape }
func (n *broadcastNode[T]) item(ix Index) T {
	off := len(ix) - len(n.scratch)
	for a := range n.scratch {
		if n.folded[a] {
			n.scratch[a] = 0
		} else {
			n.scratch[a] = ix[off+a]
		}
	}
	return n.child.item(n.scratch)
}
func (n *broadcastNode[T]) lift(to Shape) Expr[T] { return n.child.lift(to) }
func (n *broadcastNode[T]) refs(fn func(leafRef)) { n.child.refs(fn) }
