package dicos

import "github.com/student/dicomstream/pkg/dicos/tag"

// parseDefinedLengthData reads exactly a.Length bytes of value from buf.
func parseDefinedLengthData(h Handler, a Attribute, buf []byte) (Result, error) {
	n := int(a.Length)
	if len(buf) < n {
		return Result{Status: StatusIncomplete}, nil
	}
	h.Value(a, buf[:n])
	return Result{Status: StatusComplete, BytesConsumed: n}, nil
}

// parseUndefinedLengthData handles the rare case of an undefined-length,
// non-sequence, non-pixel-data attribute: it scans for the Item Delimitation
// sentinel (FFFE,E00D) with a zero length, which marks the end of the value.
func parseUndefinedLengthData(enc Encoding, h Handler, a Attribute, buf []byte) (Result, error) {
	for offset := 0; ; offset++ {
		if len(buf)-offset < 8 {
			return Result{Status: StatusIncomplete}, nil
		}
		if isItemDelimiter(enc, buf[offset:offset+8]) {
			h.Value(a, buf[:offset])
			return Result{Status: StatusComplete, BytesConsumed: offset + 8}, nil
		}
	}
}

// isItemDelimiter reports whether b (at least 8 bytes) is an Item
// Delimitation Item header: tag (FFFE,E00D) followed by a 4-byte zero length.
func isItemDelimiter(enc Encoding, b []byte) bool {
	return readTag(enc, b[0:4]) == tag.ItemDelimitationItem && enc.Uint32(b[4:8]) == 0
}
