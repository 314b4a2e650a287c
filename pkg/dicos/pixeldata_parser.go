package dicos

import "github.com/student/dicomstream/pkg/dicos/tag"

// parseEncapsulatedPixelData reads an undefined-length PixelData element's
// items: the first is delivered via BasicOffsetTable, every subsequent one
// via PixelDataFragment, until a Sequence Delimitation Item (FFFE,E0DD).
func parseEncapsulatedPixelData(enc Encoding, h Handler, a Attribute, buf []byte) (Result, error) {
	consumed := 0
	first := true
	for {
		if len(buf)-consumed < 8 {
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}
		itemTag := readTag(enc, buf[consumed:consumed+4])
		itemLength := enc.Uint32(buf[consumed+4 : consumed+8])

		if itemTag == tag.SequenceDelimitationItem {
			return Result{Status: StatusComplete, BytesConsumed: consumed + 8}, nil
		}
		if itemTag != tag.Item || itemLength == undefinedLength {
			return Result{}, ErrMalformedSequence
		}

		n := int(itemLength)
		if len(buf)-consumed-8 < n {
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}
		data := buf[consumed+8 : consumed+8+n]

		var ctrl Control
		if first {
			ctrl = h.BasicOffsetTable(a, data)
			first = false
		} else {
			ctrl = h.PixelDataFragment(a, data)
		}
		consumed += 8 + n

		if ctrl == ControlCancel {
			return Result{Status: StatusCancelled, BytesConsumed: consumed}, nil
		}
	}
}
