package dicos

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// ReadFile reads and parses a complete DICOM Part-10 file into a *Dataset.
//
// Example:
//
//	ds, err := dicos.ReadFile("scan.dcm")
func ReadFile(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ReadBuffer(data)
}

// ReadBuffer parses a complete in-memory DICOM Part-10 byte stream into a
// *Dataset, including the group-0002 file meta information elements.
// Cancelled parses (a handler decision) don't apply here since
// DatasetHandler never cancels; a *BytesRemainingError means the stream was
// truncated.
func ReadBuffer(data []byte) (*Dataset, error) {
	handler := NewDatasetHandler()
	meta, err := Parse(handler, data)
	if err != nil {
		return nil, err
	}
	// The meta information is collected by Parse itself, not by the handler,
	// and is always Explicit VR Little Endian.
	for i, a := range meta.Attributes {
		handler.Dataset.Elements[a.Tag] = &Element{Tag: a.Tag, VR: string(a.VR), Value: decodeValue(a.VR, meta.Data[i], binary.LittleEndian)}
	}
	return handler.Dataset, nil
}
