package dicos

import (
	"github.com/student/dicomstream/pkg/dicos/tag"
	"github.com/student/dicomstream/pkg/dicos/vr"
)

// readTag decodes a 4-byte tag using the encoding's byte order.
func readTag(enc Encoding, b []byte) tag.Tag {
	return tag.Tag{Group: enc.Uint16(b[0:2]), Element: enc.Uint16(b[2:4])}
}

// readAttributeHeader reads a tag plus its VR/length header from the start
// of buf. It returns ok=false (not an error) when buf is too short to
// decode the header at all - the caller reports that as StatusIncomplete.
func readAttributeHeader(enc Encoding, buf []byte) (Attribute, int, bool) {
	if len(buf) < 4 {
		return Attribute{}, 0, false
	}
	t := readTag(enc, buf[0:4])

	if t.IsSequenceControl() {
		if len(buf) < 8 {
			return Attribute{}, 0, false
		}
		length := enc.Uint32(buf[4:8])
		return Attribute{Tag: t, Length: length}, 8, true
	}

	v, hasVR, length, headerLen, err := enc.VRAndLength(buf[4:])
	if err != nil {
		return Attribute{}, 0, false
	}
	return Attribute{Tag: t, VR: v, HasVR: hasVR, Length: length}, 4 + headerLen, true
}

// parseAttribute parses exactly one data element from the start of buf:
// its header, the handler's Element callback, and (unless cancelled) its
// value or nested structure, dispatching to the appropriate sub-parser.
func parseAttribute(enc Encoding, h Handler, buf []byte, depth int) (Result, error) {
	attribute, headerLen, ok := readAttributeHeader(enc, buf)
	if !ok {
		return Result{Status: StatusIncomplete}, nil
	}

	remaining := buf[headerLen:]

	// Short input is reported before Element fires, so a defined-length
	// attribute produces no events until its whole value is present.
	if attribute.IsUndefinedLength() {
		if len(remaining) < 8 {
			return Result{Status: StatusIncomplete}, nil
		}
	} else if len(remaining) < int(attribute.Length) {
		return Result{Status: StatusIncomplete}, nil
	}

	switch h.Element(attribute) {
	case ControlCancel:
		return Result{Status: StatusCancelled}, nil
	default: // ControlContinue, ControlFilter
	}

	res, err := dispatchAttribute(enc, h, attribute, remaining, depth)
	if err != nil {
		return Result{}, err
	}
	if res.Status == StatusIncomplete {
		// Nothing of an incomplete attribute counts as consumed: the caller
		// resumes at its header.
		return Result{Status: StatusIncomplete}, nil
	}
	res.BytesConsumed += headerLen
	return res, nil
}

// dispatchAttribute picks the sub-parser for an attribute once its header
// (and, for undefined-length attributes, at least 8 more bytes) are available.
func dispatchAttribute(enc Encoding, h Handler, a Attribute, buf []byte, depth int) (Result, error) {
	switch {
	case a.HasVR && a.VR == vr.SQ:
		h.StartSequence(a)
		if a.IsUndefinedLength() {
			return parseSequenceUndefinedLength(enc, h, a, buf, depth)
		}
		return parseSequenceDefinedLength(enc, h, a, buf, depth)

	case a.Tag == tag.PixelData && a.IsUndefinedLength():
		return parseEncapsulatedPixelData(enc, h, a, buf)

	case a.IsUndefinedLength():
		if isSequenceItemTag(enc, buf) {
			h.StartSequence(a)
			return parseSequenceUndefinedLength(enc, h, a, buf, depth)
		}
		return parseUndefinedLengthData(enc, h, a, buf)

	default:
		return parseDefinedLengthData(h, a, buf)
	}
}

// isSequenceItemTag peeks at the first 4 bytes of buf (already guaranteed
// present by the undefined-length look-ahead) to see whether an
// undefined-length, VR-less attribute is actually a sequence of items.
func isSequenceItemTag(enc Encoding, buf []byte) bool {
	return readTag(enc, buf[0:4]) == tag.Item
}
