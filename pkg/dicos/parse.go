package dicos

import "encoding/binary"

// byteOrderSetter is an optional capability a Handler can implement to learn
// the resolved Encoding's byte order before the data set is parsed, so it can
// decode numeric VR values itself (the way DatasetHandler does) without the
// Handler interface itself needing encoding awareness.
type byteOrderSetter interface {
	setByteOrder(binary.ByteOrder)
}

// Parse parses a complete DICOM Part-10 byte stream: the file meta
// information, then the main data set using the transfer syntax the meta
// information declares. Parse events are delivered to h as they're
// discovered; h.Element/h.Value etc. are never buffered internally.
//
// On success, every byte of the main data set was consumed and the returned
// error is nil. If a handler cancelled the parse, or the input was truncated
// mid-element, Parse returns the meta information it did manage to parse
// alongside a *BytesRemainingError describing how much of the data set went
// unread.
func Parse(h Handler, data []byte) (*MetaInformation, error) {
	meta, err := ParseMetaInformation(data)
	if err != nil {
		return nil, err
	}

	enc, err := EncodingForTransferSyntax(meta.TransferSyntaxUID)
	if err != nil {
		return meta, err
	}
	if bos, ok := h.(byteOrderSetter); ok {
		bos.setByteOrder(enc.ByteOrder())
	}

	body := data[meta.EndPosition:]
	res, err := runDataSet(enc, h, body, 0)
	if err != nil {
		return meta, err
	}

	if res.Status == StatusComplete {
		return meta, nil
	}
	return meta, &BytesRemainingError{N: len(body) - res.BytesConsumed}
}
