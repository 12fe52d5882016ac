// SPDX-License-Identifier: MIT

// Package value - Matrix storage (dense row-major or sparse CSC) & safe accessors.
//
// Purpose:
//   - Wrap an Array with explicit shape metadata.
//   - Dense: flat row-major buffer with the offset formula ((i0*s1)+i1)*s2+... .
//   - Sparse: 2-D compressed column storage; absent cells read as number 0.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//
// Complexity quicksheet:
//   - NewMatrix: O(n); At/Set dense: O(d); At sparse: O(log nnz(col)); Set sparse: O(nnz);
//     ToArray: O(n); Clone: O(n).

package value

import (
	"fmt"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxNew    = "NewMatrix"
	ctxSparse = "NewSparse"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]"
	_fmtSep      = ", "
)

// Storage names the backing layout of a Matrix.
type Storage string

const (
	// StorageDense keeps every cell in a flat row-major buffer.
	StorageDense Storage = "dense"

	// StorageSparse keeps non-zero cells of a 2-D matrix in compressed columns.
	StorageSparse Storage = "sparse"
)

// ParseStorage resolves "dense" or "sparse".
func ParseStorage(s string) (Storage, bool) {
	switch Storage(strings.TrimSpace(s)) {
	case StorageDense:
		return StorageDense, true
	case StorageSparse:
		return StorageSparse, true
	}

	return "", false
}

// matrixErrorf wraps an error with Matrix method context and coordinates.
func matrixErrorf(method string, idx []int, err error) error {
	return fmt.Errorf("Matrix.%s(%s): %w", method, joinInts(idx), err)
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = fmt.Sprint(x)
	}

	return strings.Join(parts, ",")
}

// Matrix is a shaped container over values.
//   - shape holds the dimensions (len==0 never occurs; empty matrix has shape [0]).
//   - store is the dense or sparse backing.
type Matrix struct {
	shape []int
	store storage
}

// storage is the backing layout contract. Indices passed in are validated.
type storage interface {
	at(idx []int) Value
	set(idx []int, v Value)
	toArray(shape []int) Array
	clone() storage
	kind() Storage
}

// Compile-time conformance.
var (
	_ Value        = (*Matrix)(nil)
	_ fmt.Stringer = (*Matrix)(nil)
)

// NewMatrix builds a dense Matrix over a copy of a's leaves.
//
// Implementation:
//   - Stage 1: compute the rectangular size (ErrJagged otherwise).
//   - Stage 2: flatten leaves into a row-major buffer.
//
// Complexity: O(n) time and memory.
func NewMatrix(a Array) (*Matrix, error) {
	shape, err := arraySize(a)
	if err != nil {
		return nil, valueErrorf(ctxNew, err)
	}

	return &Matrix{shape: shape, store: &dense{shape: shape, data: a.Flatten()}}, nil
}

// NewDense builds a dense Matrix directly from row-major data.
// len(data) must equal the product of shape.
func NewDense(shape []int, data []Value) (*Matrix, error) {
	if len(shape) == 0 || product(shape) != len(data) {
		return nil, valueErrorf(ctxNew, ErrDimensionMismatch)
	}
	s := append([]int(nil), shape...)
	buf := append([]Value(nil), data...)

	return &Matrix{shape: s, store: &dense{shape: s, data: buf}}, nil
}

// NewSparse builds a sparse 2-D Matrix from a.
// Zero cells (see IsZero) are not stored.
func NewSparse(a Array) (*Matrix, error) {
	shape, err := arraySize(a)
	if err != nil {
		return nil, valueErrorf(ctxSparse, err)
	}
	if len(shape) != 2 {
		return nil, valueErrorf(ctxSparse, ErrNotTwoDim)
	}
	rows, cols := shape[0], shape[1]
	sp := &sparse{rows: rows, cols: cols, ptr: make([]int, cols+1)}
	var i, j int
	for j = 0; j < cols; j++ { // column-major walk keeps index sorted per column
		for i = 0; i < rows; i++ {
			v := a[i].(Array)[j]
			if IsZero(v) {
				continue
			}
			sp.values = append(sp.values, v)
			sp.index = append(sp.index, i)
		}
		sp.ptr[j+1] = len(sp.values)
	}

	return &Matrix{shape: shape, store: sp}, nil
}

func (*Matrix) Type() Type { return TypeMatrix }
func (*Matrix) value()     {}

// String renders the matrix like its Array form.
func (m *Matrix) String() string {
	return m.ToArray().String()
}

// Size returns a copy of the dimensions.
func (m *Matrix) Size() []int {
	return append([]int(nil), m.shape...)
}

// Storage reports the backing layout.
func (m *Matrix) Storage() Storage {
	return m.store.kind()
}

// Len returns the number of cells (product of the dimensions).
func (m *Matrix) Len() int {
	return product(m.shape)
}

// checkIndex validates idx against the shape.
func (m *Matrix) checkIndex(method string, idx []int) error {
	if len(idx) != len(m.shape) {
		return matrixErrorf(method, idx, ErrDimensionMismatch)
	}
	for d, i := range idx {
		if i < 0 || i >= m.shape[d] {
			return matrixErrorf(method, idx, ErrOutOfRange)
		}
	}

	return nil
}

// At retrieves the cell at idx (one position per dimension).
// Returns ErrOutOfRange or ErrDimensionMismatch, never panics.
func (m *Matrix) At(idx ...int) (Value, error) {
	if err := m.checkIndex(ctxAt, idx); err != nil {
		return nil, err
	}

	return m.store.at(idx), nil
}

// Set assigns v at idx. Matrices are owned by their creator; functions only
// call Set on clones they produced.
func (m *Matrix) Set(v Value, idx ...int) error {
	if err := m.checkIndex(ctxSet, idx); err != nil {
		return err
	}
	m.store.set(idx, v)

	return nil
}

// ToArray returns the nested Array form (a fresh structure).
func (m *Matrix) ToArray() Array {
	return m.store.toArray(m.shape)
}

// Clone returns an independent copy with the same storage kind.
func (m *Matrix) Clone() *Matrix {
	s := append([]int(nil), m.shape...)
	st := m.store.clone()
	if d, ok := st.(*dense); ok {
		d.shape = s
	}

	return &Matrix{shape: s, store: st}
}

// WithStorage returns m converted to the requested layout (m itself when equal).
func (m *Matrix) WithStorage(s Storage) (*Matrix, error) {
	if m.Storage() == s {
		return m, nil
	}
	if s == StorageSparse {
		return NewSparse(m.ToArray())
	}

	return NewMatrix(m.ToArray())
}

// Data returns the row-major leaves (a fresh slice).
func (m *Matrix) Data() []Value {
	if d, ok := m.store.(*dense); ok {
		return append([]Value(nil), d.data...)
	}

	return m.ToArray().Flatten()
}

// ---------- dense ----------

type dense struct {
	shape []int
	data  []Value
}

func (d *dense) offset(idx []int) int {
	off := 0
	for k, i := range idx {
		off = off*d.shape[k] + i
	}

	return off
}

func (d *dense) at(idx []int) Value     { return d.data[d.offset(idx)] }
func (d *dense) set(idx []int, v Value) { d.data[d.offset(idx)] = v }
func (d *dense) kind() Storage          { return StorageDense }

func (d *dense) clone() storage {
	return &dense{shape: d.shape, data: append([]Value(nil), d.data...)}
}

func (d *dense) toArray(shape []int) Array {
	return reshape(d.data, shape)
}

// ---------- sparse (CSC) ----------

// sparse stores column j's entries in values[ptr[j]:ptr[j+1]] with sorted row index.
type sparse struct {
	rows, cols int
	values     []Value
	index      []int
	ptr        []int
}

func (s *sparse) find(i, j int) (int, bool) {
	lo, hi := s.ptr[j], s.ptr[j+1]
	k := lo + sort.SearchInts(s.index[lo:hi], i)

	return k, k < hi && s.index[k] == i
}

func (s *sparse) at(idx []int) Value {
	if k, ok := s.find(idx[0], idx[1]); ok {
		return s.values[k]
	}

	return Number(0)
}

func (s *sparse) set(idx []int, v Value) {
	i, j := idx[0], idx[1]
	k, ok := s.find(i, j)
	switch {
	case ok && IsZero(v):
		s.values = append(s.values[:k], s.values[k+1:]...)
		s.index = append(s.index[:k], s.index[k+1:]...)
		for c := j + 1; c <= s.cols; c++ {
			s.ptr[c]--
		}
	case ok:
		s.values[k] = v
	case !IsZero(v):
		s.values = append(s.values, nil)
		copy(s.values[k+1:], s.values[k:])
		s.values[k] = v
		s.index = append(s.index, 0)
		copy(s.index[k+1:], s.index[k:])
		s.index[k] = i
		for c := j + 1; c <= s.cols; c++ {
			s.ptr[c]++
		}
	}
}

func (s *sparse) kind() Storage { return StorageSparse }

func (s *sparse) clone() storage {
	return &sparse{
		rows:   s.rows,
		cols:   s.cols,
		values: append([]Value(nil), s.values...),
		index:  append([]int(nil), s.index...),
		ptr:    append([]int(nil), s.ptr...),
	}
}

func (s *sparse) toArray(_ []int) Array {
	out := make(Array, s.rows)
	var i, j, k int
	for i = 0; i < s.rows; i++ {
		row := make(Array, s.cols)
		for j = 0; j < s.cols; j++ {
			row[j] = Number(0)
		}
		out[i] = row
	}
	for j = 0; j < s.cols; j++ {
		for k = s.ptr[j]; k < s.ptr[j+1]; k++ {
			out[s.index[k]].(Array)[j] = s.values[k]
		}
	}

	return out
}

// NonZeros returns the number of stored cells (all cells for dense storage).
func (m *Matrix) NonZeros() int {
	if s, ok := m.store.(*sparse); ok {
		return len(s.values)
	}

	return m.Len()
}
