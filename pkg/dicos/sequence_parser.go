package dicos

import "github.com/student/dicomstream/pkg/dicos/tag"

// parseSequenceDefinedLength reads a.Length bytes of nested items. Each item
// is a (FFFE,E000) header followed by its own defined-length data set.
func parseSequenceDefinedLength(enc Encoding, h Handler, a Attribute, buf []byte, depth int) (Result, error) {
	if depth >= maxSequenceDepth {
		return Result{}, ErrTooDeep
	}

	total := int(a.Length)
	consumed := 0
	for consumed < total {
		if len(buf)-consumed < 8 {
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}
		itemTag := readTag(enc, buf[consumed:consumed+4])
		if itemTag != tag.Item {
			return Result{}, ErrMalformedSequence
		}
		itemLength := int(enc.Uint32(buf[consumed+4 : consumed+8]))
		itemStart := consumed + 8

		if len(buf)-itemStart < itemLength {
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}

		h.StartSequenceItem(a)
		itemBuf := buf[itemStart : itemStart+itemLength]
		res, err := runDataSet(enc, h, itemBuf, depth+1)
		if err != nil {
			return Result{}, err
		}
		if res.Status == StatusCancelled {
			return Result{Status: StatusCancelled, BytesConsumed: itemStart + res.BytesConsumed}, nil
		}
		if res.Status != StatusComplete {
			// An inner attribute claimed more than the item bounds allow, or
			// ran out of input; nothing more can be done with this buffer.
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}
		h.EndSequenceItem(a)

		consumed = itemStart + itemLength
	}

	h.EndSequence(a)
	return Result{Status: StatusComplete, BytesConsumed: consumed}, nil
}

// parseSequenceUndefinedLength reads items until a Sequence Delimitation Item
// (FFFE,E0DD). Each item's own length may be defined or undefined; an
// undefined-length item is bounded by an Item Delimitation Item (FFFE,E00D),
// which is discovered by recursing into the data set with a guard handler
// that maps that one tag to ControlCancel and forwards everything else.
func parseSequenceUndefinedLength(enc Encoding, h Handler, a Attribute, buf []byte, depth int) (Result, error) {
	if depth >= maxSequenceDepth {
		return Result{}, ErrTooDeep
	}

	consumed := 0
	for {
		if len(buf)-consumed < 8 {
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		}
		itemTag := readTag(enc, buf[consumed:consumed+4])
		itemLength := enc.Uint32(buf[consumed+4 : consumed+8])

		if itemTag == tag.SequenceDelimitationItem {
			h.EndSequence(a)
			return Result{Status: StatusComplete, BytesConsumed: consumed + 8}, nil
		}
		if itemTag != tag.Item {
			return Result{}, ErrMalformedSequence
		}
		itemStart := consumed + 8

		if itemLength != undefinedLength {
			n := int(itemLength)
			if len(buf)-itemStart < n {
				return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
			}
			h.StartSequenceItem(a)
			res, err := runDataSet(enc, h, buf[itemStart:itemStart+n], depth+1)
			if err != nil {
				return Result{}, err
			}
			if res.Status == StatusCancelled {
				return Result{Status: StatusCancelled, BytesConsumed: itemStart + res.BytesConsumed}, nil
			}
			if res.Status != StatusComplete {
				return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
			}
			h.EndSequenceItem(a)
			consumed = itemStart + n
			continue
		}

		h.StartSequenceItem(a)
		guard := &itemDelimiterGuard{Handler: h}
		res, err := runDataSet(enc, guard, buf[itemStart:], depth+1)
		if err != nil {
			return Result{}, err
		}
		switch res.Status {
		case StatusCancelled:
			if !guard.delimited {
				// The wrapped handler cancelled inside the item.
				return Result{Status: StatusCancelled, BytesConsumed: itemStart + res.BytesConsumed}, nil
			}
			// res.BytesConsumed points at the delimiter's header start
			// (ControlCancel never counts the cancelling attribute's own
			// header); reclaim those 8 bytes here.
			h.EndSequenceItem(a)
			consumed = itemStart + res.BytesConsumed + 8
		case StatusIncomplete:
			return Result{Status: StatusIncomplete, BytesConsumed: consumed}, nil
		case StatusComplete:
			// Ran out of buffer without ever seeing the delimiter.
			return Result{}, ErrMalformedSequence
		}
	}
}

// itemDelimiterGuard wraps a Handler so that the inner data-set driver used
// to scan an undefined-length item stops exactly at that item's Item
// Delimitation Item, without the item's own data-set driver needing to know
// about sequence framing.
type itemDelimiterGuard struct {
	Handler
	delimited bool
}

func (g *itemDelimiterGuard) Element(a Attribute) Control {
	if a.Tag == tag.ItemDelimitationItem {
		g.delimited = true
		return ControlCancel
	}
	return g.Handler.Element(a)
}
