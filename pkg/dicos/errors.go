package dicos

import (
	"errors"
	"fmt"

	"github.com/student/dicomstream/pkg/dicos/tag"
)

var (
	// ErrNotDicom is returned when a byte stream lacks the 128-byte preamble
	// and "DICM" magic at offset 128.
	ErrNotDicom = errors.New("dicos: not a DICOM stream (missing DICM prefix)")
	// ErrMalformedSequence is returned when a sequence or encapsulated
	// pixel-data item stream doesn't follow the expected item/delimiter shape.
	ErrMalformedSequence = errors.New("dicos: malformed sequence")
	// ErrMalformedUID is returned when a meta-information UID element
	// contains bytes outside 7-bit ASCII.
	ErrMalformedUID = errors.New("dicos: malformed UID (non 7-bit ASCII)")
	// ErrTooDeep is returned when nested sequences exceed maxSequenceDepth.
	ErrTooDeep = errors.New("dicos: sequence nesting too deep")
	// errInsufficientBytes is an internal sentinel used by Encoding
	// implementations to signal a header didn't fully fit in the given slice.
	errInsufficientBytes = errors.New("dicos: insufficient bytes")
)

// MissingMetaElementError is returned when a required group-0002 element
// (SOP Class/Instance UID, Transfer Syntax UID, Implementation Class UID)
// is absent from the file meta information.
type MissingMetaElementError struct {
	Tag tag.Tag
}

func (e *MissingMetaElementError) Error() string {
	return fmt.Sprintf("dicos: missing required meta element %s", e.Tag)
}

// UnsupportedTransferSyntaxError is returned for transfer syntaxes this
// package declines to parse, such as Deflated Explicit VR Little Endian.
type UnsupportedTransferSyntaxError struct {
	UID string
}

func (e *UnsupportedTransferSyntaxError) Error() string {
	return fmt.Sprintf("dicos: unsupported transfer syntax %q", e.UID)
}

// BytesRemainingError is returned by Parse when the data set wasn't fully
// consumed - either a handler cancelled the parse, or the input was
// truncated mid-element. N is the number of unread bytes in the data set.
type BytesRemainingError struct {
	N int
}

func (e *BytesRemainingError) Error() string {
	return fmt.Sprintf("dicos: %d bytes remaining unconsumed in data set", e.N)
}
