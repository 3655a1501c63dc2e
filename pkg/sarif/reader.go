package sarif

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	gosarif "github.com/owenrumney/go-sarif/v2/sarif"
)

var (
	// ErrRead is returned when a SARIF file or stream cannot be read.
	ErrRead = errors.New("read sarif")
	// ErrDecode is returned when input is not a single valid JSON document.
	ErrDecode = errors.New("decode sarif")
)

// ReadFile parses a SARIF file from disk.
func ReadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	doc, err := ReadBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Read parses SARIF from an io.Reader.
func Read(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return ReadBytes(data)
}

// ReadBytes parses SARIF from raw bytes.
//
// The input must hold exactly one JSON value; anything after it other than
// whitespace is rejected. Version and schema are not checked, so `{}` decodes
// to a document with no runs. Fields of an unexpected type are treated as
// absent rather than failing the document.
func ReadBytes(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	var probe json.RawMessage
	if err := dec.Decode(&probe); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after document", ErrDecode)
	}

	doc, err := gosarif.FromBytes(probe)
	if err == nil {
		return doc, nil
	}
	// Valid JSON that does not fit the model: keep what can be read.
	salvaged, serr := salvage(probe)
	if serr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if doc, serr = gosarif.FromBytes(salvaged); serr != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return doc, nil
}
