package sarif

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const wantVersion = "2.1.0"

// minimalSARIF is the smallest document a scanner emits for a clean run.
const minimalSARIF = `{"version":"` + wantVersion + `","runs":[{"tool":{"driver":{"name":"test"}},"results":[]}]}`

func TestRead_ValidDocument(t *testing.T) {
	doc, err := Read(strings.NewReader(minimalSARIF))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
	if len(doc.Runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(doc.Runs))
	}
}

func TestRead_ValidWithTrailingWhitespace(t *testing.T) {
	input := minimalSARIF + "   \n\t\n  "
	doc, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("trailing whitespace should be accepted, got error: %v", err)
	}
	if doc.Version != wantVersion {
		t.Errorf("expected version %s, got %s", wantVersion, doc.Version)
	}
}

func TestRead_TrailingGarbageText(t *testing.T) {
	_, err := Read(strings.NewReader(minimalSARIF + `garbage`))
	if err == nil {
		t.Fatal("expected error for trailing garbage text, got nil")
	}
	if !strings.Contains(err.Error(), "trailing data") {
		t.Errorf("expected trailing data error, got: %v", err)
	}
}

func TestRead_TrailingJSONObject(t *testing.T) {
	_, err := Read(strings.NewReader(minimalSARIF + `{"extra":"object"}`))
	if err == nil {
		t.Fatal("expected error for trailing JSON object, got nil")
	}
	if !errors.Is(err, ErrDecode) {
		t.Errorf("expected ErrDecode, got: %v", err)
	}
}

func TestRead_InvalidJSON(t *testing.T) {
	_, err := Read(strings.NewReader(`not json`))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for invalid JSON, got %v", err)
	}
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := Read(strings.NewReader("  \n"))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode for empty input, got %v", err)
	}
}

func TestReadBytes_EmptyObjectHasNoRuns(t *testing.T) {
	doc, err := ReadBytes([]byte(`{}`))
	if err != nil {
		t.Fatalf("empty object should decode, got %v", err)
	}
	if len(doc.Runs) != 0 {
		t.Errorf("expected no runs, got %d", len(doc.Runs))
	}
}

func TestReadBytes_MissingVersionIsAccepted(t *testing.T) {
	doc, err := ReadBytes([]byte(`{"runs":[]}`))
	if err != nil {
		t.Fatalf("missing version should not fail, got %v", err)
	}
	if doc.Version != "" {
		t.Errorf("expected empty version, got %q", doc.Version)
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.sarif"))
	if !errors.Is(err, ErrRead) {
		t.Fatalf("expected ErrRead, got %v", err)
	}
}

func TestReadFile_WrapsDecodeErrorWithPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.sarif")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := ReadFile(path)
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
	if !strings.Contains(err.Error(), "broken.sarif") {
		t.Errorf("expected path in error, got %v", err)
	}
}

func TestReadBytes_WrongFieldTypeIsNotADecodeError(t *testing.T) {
	doc, err := ReadBytes([]byte(`{"runs":[{"results":[{"level":5,"locations":[{"physicalLocation":{"region":{"startLine":42.0}}}]}]}]}`))
	if err != nil {
		t.Fatalf("mistyped optional fields should not fail the document, got %v", err)
	}
	if len(doc.Runs) != 1 || len(doc.Runs[0].Results) != 1 {
		t.Fatalf("expected 1 run with 1 result, got %+v", doc.Runs)
	}
}
