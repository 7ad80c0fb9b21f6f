package numio

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ndkit/nd/internal/array"
)

// TestSaveTxtMatrix tests the rank-2 text layout: one row per line.
func TestSaveTxtMatrix(t *testing.T) {
	src := array.FromFunc(array.Shape{2, 3}, func(ix array.Index) float64 {
		return float64(ix[0]*3 + ix[1] + 1)
	})

	var buf bytes.Buffer
	if err := SaveTxt[float64](&buf, src, ""); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	if want := "1 2 3\n4 5 6\n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestSaveTxtVector tests that rank 1 writes a single column so the
// shape survives a round trip.
func TestSaveTxtVector(t *testing.T) {
	src := array.FromFunc(array.Shape{3}, func(ix array.Index) int32 {
		return int32(ix[0] + 1)
	})

	var buf bytes.Buffer
	if err := SaveTxt[int32](&buf, src, ""); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	if want := "1\n2\n3\n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestSaveTxtDelimiter tests a custom delimiter.
func TestSaveTxtDelimiter(t *testing.T) {
	src := array.FromFunc(array.Shape{2, 2}, func(ix array.Index) int32 {
		return int32(ix[0]*2 + ix[1])
	})

	var buf bytes.Buffer
	if err := SaveTxt[int32](&buf, src, ","); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	if want := "0,1\n2,3\n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestSaveTxtExpression tests that lazy expressions write their
// evaluated values.
func TestSaveTxtExpression(t *testing.T) {
	a := array.FromFunc(array.Shape{3}, func(ix array.Index) float64 {
		return float64(ix[0] + 1)
	})

	var buf bytes.Buffer
	if err := SaveTxt(&buf, array.Mul[float64](a, a), ""); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	if want := "1\n4\n9\n"; buf.String() != want {
		t.Errorf("Expected %q, got %q", want, buf.String())
	}
}

// TestSaveTxtRankError tests that rank 3 and above are refused.
func TestSaveTxtRankError(t *testing.T) {
	src := array.Zeros[float64](array.Shape{2, 2, 2})
	if err := SaveTxt[float64](&bytes.Buffer{}, src, ""); !errors.Is(err, ErrUnsupportedRank) {
		t.Errorf("Expected ErrUnsupportedRank, got %v", err)
	}
}

// TestLoadTxtMatrix tests parsing a whitespace-delimited matrix.
func TestLoadTxtMatrix(t *testing.T) {
	got, err := LoadTxt[float64](strings.NewReader("1 2 3\n4 5 6\n"), "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{2, 3}) {
		t.Fatalf("Expected shape [2 3], got %v", got.Shape())
	}
	want := []float64{1, 2, 3, 4, 5, 6}
	for i, w := range want {
		if got.Data()[i] != w {
			t.Errorf("Element %d: expected %v, got %v", i, w, got.Data()[i])
		}
	}
}

// TestLoadTxtVector tests that a single column loads as rank 1.
func TestLoadTxtVector(t *testing.T) {
	got, err := LoadTxt[int64](strings.NewReader("10\n20\n30\n"), "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{3}) {
		t.Fatalf("Expected shape [3], got %v", got.Shape())
	}
	if got.Data()[1] != 20 {
		t.Errorf("Expected 20 at position 1, got %v", got.Data()[1])
	}
}

// TestLoadTxtBlankLines tests that blank lines are skipped.
func TestLoadTxtBlankLines(t *testing.T) {
	got, err := LoadTxt[float64](strings.NewReader("\n1 2\n\n3 4\n\n"), "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{2, 2}) {
		t.Errorf("Expected shape [2 2], got %v", got.Shape())
	}
}

// TestLoadTxtCommaDelimiter tests a custom delimiter with padding
// around values.
func TestLoadTxtCommaDelimiter(t *testing.T) {
	got, err := LoadTxt[float64](strings.NewReader("1.5, 2.5\n3.5, 4.5\n"), ",")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	if got.At(1, 0) != 3.5 {
		t.Errorf("Expected 3.5 at (1, 0), got %v", got.At(1, 0))
	}
}

// TestLoadTxtRagged tests that uneven rows are rejected.
func TestLoadTxtRagged(t *testing.T) {
	_, err := LoadTxt[float64](strings.NewReader("1 2 3\n4 5\n"), "")
	if !errors.Is(err, ErrRaggedText) {
		t.Fatalf("Expected ErrRaggedText, got %v", err)
	}
	if !strings.Contains(err.Error(), "row 1") {
		t.Errorf("Expected the row number in %q", err.Error())
	}
}

// TestLoadTxtBadValue tests the parse failure path.
func TestLoadTxtBadValue(t *testing.T) {
	if _, err := LoadTxt[int32](strings.NewReader("1 oops\n"), ""); !errors.Is(err, array.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument, got %v", err)
	}
	if _, err := LoadTxt[int32](strings.NewReader("1.5\n"), ""); !errors.Is(err, array.ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for a float into int32, got %v", err)
	}
}

// TestLoadTxtEmpty tests that empty input loads as an empty vector.
func TestLoadTxtEmpty(t *testing.T) {
	got, err := LoadTxt[float64](strings.NewReader(""), "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	if !got.Shape().Equal(array.Shape{0}) {
		t.Errorf("Expected shape [0], got %v", got.Shape())
	}
}

// TestTxtRoundTripFloats tests that %v formatting preserves values
// that need full precision.
func TestTxtRoundTripFloats(t *testing.T) {
	src, err := array.FromSlice([]float64{0.1, 1.0 / 3.0, 2.718281828459045}, array.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	var buf bytes.Buffer
	if err := SaveTxt[float64](&buf, src, ""); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	got, err := LoadTxt[float64](&buf, "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	for i, want := range src.Data() {
		if got.Data()[i] != want {
			t.Errorf("Element %d: expected exactly %v, got %v", i, want, got.Data()[i])
		}
	}
}

// TestTxtRoundTripBool tests bool text parsing.
func TestTxtRoundTripBool(t *testing.T) {
	src, err := array.FromSlice([]bool{true, false, true}, array.Shape{3})
	if err != nil {
		t.Fatalf("FromSlice failed: %v", err)
	}

	var buf bytes.Buffer
	if err := SaveTxt[bool](&buf, src, ""); err != nil {
		t.Fatalf("SaveTxt failed: %v", err)
	}
	got, err := LoadTxt[bool](&buf, "")
	if err != nil {
		t.Fatalf("LoadTxt failed: %v", err)
	}
	for i, want := range src.Data() {
		if got.Data()[i] != want {
			t.Errorf("Element %d: expected %v, got %v", i, want, got.Data()[i])
		}
	}
}

// TestSaveTxtFileLoadTxtFile tests the text file helpers end to end.
func TestSaveTxtFileLoadTxtFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.txt")

	src := array.FromFunc(array.Shape{2, 2}, func(ix array.Index) float64 {
		return float64(ix[0]) - float64(ix[1])
	})
	if err := SaveTxtFile[float64](path, src, ","); err != nil {
		t.Fatalf("SaveTxtFile failed: %v", err)
	}

	got, err := LoadTxtFile[float64](path, ",")
	if err != nil {
		t.Fatalf("LoadTxtFile failed: %v", err)
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
