package dicos

import (
	"github.com/student/dicomstream/pkg/dicos/tag"
	"github.com/student/dicomstream/pkg/dicos/vr"
)

// undefinedLength is the DICOM sentinel marking a length that must be
// discovered by scanning for a delimiter instead of read directly.
const undefinedLength uint32 = 0xFFFFFFFF

// Attribute is the header of a single data element: its tag, its VR (when
// known - implicit VR encoding never supplies one) and its declared length.
type Attribute struct {
	Tag    tag.Tag
	VR     vr.VR
	HasVR  bool
	Length uint32
}

// IsUndefinedLength reports whether the attribute's length must be resolved
// by scanning for a delimiter rather than read directly.
func (a Attribute) IsUndefinedLength() bool {
	return a.Length == undefinedLength
}

// Control is returned by a Handler's Element/BasicOffsetTable/PixelDataFragment
// callbacks to steer the parser.
type Control int

const (
	// ControlContinue parses the element normally.
	ControlContinue Control = iota
	// ControlFilter is equivalent to ControlContinue: the handler still
	// receives the element's value, but signals it isn't interested in
	// deep inspection of it. Reserved for a future optimization where the
	// parser could skip copying value bytes it knows will be discarded;
	// no such skip exists yet, so it behaves exactly like ControlContinue.
	ControlFilter
	// ControlCancel aborts parsing immediately. When Element returns it,
	// the driver reports the number of bytes consumed by attributes
	// completed before the cancelling one - the cancelling attribute's own
	// header bytes are not counted, so a caller can resume right at its
	// start. When BasicOffsetTable or PixelDataFragment returns it, the
	// count runs through the end of the item just delivered.
	ControlCancel
)

// Status is the outcome of a single parser invocation.
type Status int

const (
	// StatusComplete means the parser consumed the requested region in full.
	StatusComplete Status = iota
	// StatusIncomplete means more bytes are needed to make progress.
	StatusIncomplete
	// StatusCancelled means a handler returned ControlCancel.
	StatusCancelled
)

// Result reports how a parser call ended and how much of its input it used.
type Result struct {
	Status        Status
	BytesConsumed int
}
