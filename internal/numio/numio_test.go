package numio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/ndkit/nd/internal/array"
)

// TestSaveLoadRoundTrip tests round-trip: save → load → verify.
func TestSaveLoadRoundTrip(t *testing.T) {
	src := array.FromFunc(array.Shape{2, 3}, func(ix array.Index) float64 {
		return float64(ix[0]*10 + ix[1])
	})

	var buf bytes.Buffer
	if err := Save[float64](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// 2 extents of 8 bytes each plus 6 float64 values.
	if wantLen := 2*8 + 6*8; buf.Len() != wantLen {
		t.Errorf("Expected %d encoded bytes, got %d", wantLen, buf.Len())
	}

	got, err := Load[float64](&buf, 2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Shape().Equal(src.Shape()) {
		t.Fatalf("Expected shape %v, got %v", src.Shape(), got.Shape())
	}
	for i, want := range src.Data() {
		if got.Data()[i] != want {
			t.Errorf("Element %d: expected %v, got %v", i, want, got.Data()[i])
		}
	}
}

// TestSaveExpression tests that lazy expressions save their evaluated
// values without being materialized first.
func TestSaveExpression(t *testing.T) {
	a := array.FromFunc(array.Shape{4}, func(ix array.Index) float32 {
		return float32(ix[0] + 1)
	})
	e := array.Mul[float32](a, a)

	var buf bytes.Buffer
	if err := Save(&buf, e); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load[float32](&buf, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []float32{1, 4, 9, 16}
	for i, w := range want {
		if got.Data()[i] != w {
			t.Errorf("Element %d: expected %v, got %v", i, w, got.Data()[i])
		}
	}
}

// TestSaveLoadColMajor tests that a column-major source is encoded in
// logical row-major order.
func TestSaveLoadColMajor(t *testing.T) {
	src := array.FromFunc(array.Shape{2, 3}, func(ix array.Index) int32 {
		return int32(ix[0]*3 + ix[1])
	}, array.WithOrder(array.ColMajor))

	var buf bytes.Buffer
	if err := Save[int32](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load[int32](&buf, 2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if want := int32(i*3 + j); got.At(i, j) != want {
				t.Errorf("At(%d, %d): expected %v, got %v", i, j, want, got.At(i, j))
			}
		}
	}
}

// TestSaveLoadRankZero tests scalar persistence.
func TestSaveLoadRankZero(t *testing.T) {
	src := array.Full(array.Shape{}, 3.5)

	var buf bytes.Buffer
	if err := Save[float64](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if buf.Len() != 8 {
		t.Errorf("Expected 8 bytes for a bare scalar, got %d", buf.Len())
	}

	got, err := Load[float64](&buf, 0)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if v := got.Item(); v != 3.5 {
		t.Errorf("Expected scalar 3.5, got %v", v)
	}
}

// TestSaveLoadEmpty tests persistence of an array with a zero extent.
func TestSaveLoadEmpty(t *testing.T) {
	src := array.Zeros[float64](array.Shape{3, 0})

	var buf bytes.Buffer
	if err := Save[float64](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if buf.Len() != 16 {
		t.Errorf("Expected header-only encoding of 16 bytes, got %d", buf.Len())
	}

	got, err := Load[float64](&buf, 2)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{3, 0}) {
		t.Errorf("Expected shape [3 0], got %v", got.Shape())
	}
}

// TestSaveLoadBool tests that bool round-trips through the one-byte
// encoding.
func TestSaveLoadBool(t *testing.T) {
	src := array.FromFunc(array.Shape{4}, func(ix array.Index) bool {
		return ix[0]%2 == 0
	})

	var buf bytes.Buffer
	if err := Save[bool](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load[bool](&buf, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := []bool{true, false, true, false}
	for i, w := range want {
		if got.Data()[i] != w {
			t.Errorf("Element %d: expected %v, got %v", i, w, got.Data()[i])
		}
	}
}

// TestMachineDependentTypesRejected tests that int, uint, and uintptr
// are refused on both ends.
func TestMachineDependentTypesRejected(t *testing.T) {
	src := array.Zeros[int](array.Shape{3})

	var buf bytes.Buffer
	if err := Save[int](&buf, src); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType from Save, got %v", err)
	}
	if _, err := Load[uint](bytes.NewReader(nil), 1); !errors.Is(err, ErrUnsupportedType) {
		t.Errorf("Expected ErrUnsupportedType from Load, got %v", err)
	}
}

// TestLoadNegativeRank tests rank validation.
func TestLoadNegativeRank(t *testing.T) {
	if _, err := Load[float64](bytes.NewReader(nil), -1); !errors.Is(err, array.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
}

// TestLoadTruncatedHeader tests that a stream shorter than the header
// fails cleanly.
func TestLoadTruncatedHeader(t *testing.T) {
	if _, err := Load[float64](bytes.NewReader([]byte{1, 2, 3}), 2); !errors.Is(err, ErrBadHeader) {
		t.Errorf("Expected ErrBadHeader, got %v", err)
	}
}

// TestLoadTruncatedPayload tests that a stream with fewer elements than
// the header promises fails cleanly.
func TestLoadTruncatedPayload(t *testing.T) {
	src := array.Zeros[float64](array.Shape{4})

	var buf bytes.Buffer
	if err := Save[float64](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	short := buf.Bytes()[:buf.Len()-8]
	if _, err := Load[float64](bytes.NewReader(short), 1); !errors.Is(err, ErrBadPayload) {
		t.Errorf("Expected ErrBadPayload, got %v", err)
	}
}

// TestLoadOversizedExtent tests that an extent beyond the int range is
// rejected as a header error rather than attempted as an allocation.
func TestLoadOversizedExtent(t *testing.T) {
	header := make([]byte, 8)
	binary.LittleEndian.PutUint64(header, math.MaxUint64)

	if _, err := Load[float64](bytes.NewReader(header), 1); !errors.Is(err, ErrBadHeader) {
		t.Errorf("Expected ErrBadHeader, got %v", err)
	}
}

// TestLoadWrongRankReinterprets tests that the rank argument drives the
// header size, so reading with the wrong rank misparses the stream.
func TestLoadWrongRankReinterprets(t *testing.T) {
	src := array.FromFunc(array.Shape{2, 2}, func(ix array.Index) float64 {
		return float64(ix[0]*2 + ix[1])
	})

	var buf bytes.Buffer
	if err := Save[float64](&buf, src); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// The format carries no rank tag. Rank 1 consumes only the first
	// extent as header, so the load succeeds with the second extent
	// reinterpreted as payload. Supplying the right rank is the
	// caller's responsibility.
	got, err := Load[float64](&buf, 1)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{2}) {
		t.Errorf("Expected shape [2], got %v", got.Shape())
	}
}

// TestSaveFileLoadFile tests the file helpers end to end.
func TestSaveFileLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weights.nd")

	src := array.FromFunc(array.Shape{3, 2}, func(ix array.Index) float64 {
		return float64(ix[0]) + float64(ix[1])/10
	})
	if err := SaveFile[float64](path, src); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	got, err := LoadFile[float64](path, 2)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if !got.Shape().Equal(src.Shape()) {
		t.Fatalf("Expected shape %v, got %v", src.Shape(), got.Shape())
	}
	for i, want := range src.Data() {
		if got.Data()[i] != want {
			t.Errorf("Element %d: expected %v, got %v", i, want, got.Data()[i])
		}
	}
}

// TestLoadFileMissing tests the error path for a nonexistent file.
func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile[float64](filepath.Join(t.TempDir(), "absent.nd"), 1); err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}
