package dicos

import (
	"bytes"
	"encoding/binary"

	"github.com/student/dicomstream/pkg/dicos/tag"
	"github.com/student/dicomstream/pkg/dicos/vr"
)

// DatasetHandler is a Handler that accumulates parse events into a *Dataset
// tree, for callers who want a realized structure instead of streaming
// callbacks. Besides the do-nothing NopHandler, it is the one Handler
// implementation this package exports; anything wanting different behavior (validation, selective extraction,
// re-serialization elsewhere) implements Handler directly.
type DatasetHandler struct {
	Dataset *Dataset

	frames      []*Dataset
	seqs        []*pendingSequence
	activePixel *PixelData
	byteOrder   binary.ByteOrder
}

type pendingSequence struct {
	items []*Dataset
}

// NewDatasetHandler returns a DatasetHandler ready to receive events for a
// single data set.
func NewDatasetHandler() *DatasetHandler {
	ds := &Dataset{Elements: make(map[Tag]*Element)}
	return &DatasetHandler{
		Dataset:   ds,
		frames:    []*Dataset{ds},
		byteOrder: binary.LittleEndian,
	}
}

// setByteOrder is called by Parse once it has resolved the stream's
// Encoding, so numeric VRs decode in the transfer syntax's actual byte
// order instead of the implicit-VR-LE default above. It satisfies the
// unexported byteOrderSetter interface in parse.go.
func (h *DatasetHandler) setByteOrder(bo binary.ByteOrder) {
	h.byteOrder = bo
}

func (h *DatasetHandler) current() *Dataset {
	return h.frames[len(h.frames)-1]
}

func (h *DatasetHandler) Element(a Attribute) Control {
	if a.Tag == tag.PixelData && a.IsUndefinedLength() {
		pd := &PixelData{IsEncapsulated: true}
		h.activePixel = pd
		h.current().Elements[a.Tag] = &Element{Tag: a.Tag, VR: "OB", Value: pd}
	}
	return ControlContinue
}

func (h *DatasetHandler) Value(a Attribute, data []byte) {
	var value interface{}
	if a.HasVR {
		value = decodeValue(a.VR, data, h.byteOrder)
	} else {
		value = append([]byte(nil), data...)
	}
	h.current().Elements[a.Tag] = &Element{Tag: a.Tag, VR: string(a.VR), Value: value}
}

func (h *DatasetHandler) StartSequence(Attribute) {
	h.seqs = append(h.seqs, &pendingSequence{})
}

func (h *DatasetHandler) StartSequenceItem(Attribute) {
	h.frames = append(h.frames, &Dataset{Elements: make(map[Tag]*Element)})
}

func (h *DatasetHandler) EndSequenceItem(Attribute) {
	item := h.frames[len(h.frames)-1]
	h.frames = h.frames[:len(h.frames)-1]
	top := h.seqs[len(h.seqs)-1]
	top.items = append(top.items, item)
}

func (h *DatasetHandler) EndSequence(a Attribute) {
	top := h.seqs[len(h.seqs)-1]
	h.seqs = h.seqs[:len(h.seqs)-1]
	h.current().Elements[a.Tag] = &Element{Tag: a.Tag, VR: "SQ", Value: top.items}
}

func (h *DatasetHandler) BasicOffsetTable(a Attribute, data []byte) Control {
	h.activePixel.Offsets = decodeOffsetTable(data)
	return ControlContinue
}

func (h *DatasetHandler) PixelDataFragment(a Attribute, data []byte) Control {
	h.activePixel.Frames = append(h.activePixel.Frames, Frame{CompressedData: append([]byte(nil), data...)})
	return ControlContinue
}

// decodeOffsetTable is always Little Endian regardless of the stream's
// Encoding: encapsulated pixel data (the only place a Basic Offset Table
// occurs) is only ever framed under a compressed transfer syntax, and every
// compressed transfer syntax in PS3.5 uses Explicit VR Little Endian framing
// - there is no Explicit VR Big Endian encapsulated syntax to get wrong.
func decodeOffsetTable(data []byte) []uint32 {
	offsets := make([]uint32, len(data)/4)
	for i := range offsets {
		offsets[i] = binary.LittleEndian.Uint32(data[i*4:])
	}
	return offsets
}

// decodeValue converts raw element bytes into a Go value according to VR,
// the way teacher's reader.go's parseValue did for its blocking reader,
// decoding multi-byte numeric VRs in bo (the stream's resolved Encoding byte
// order - LittleEndian for every transfer syntax but Explicit VR Big Endian).
// Unrecognized or structurally odd VRs fall back to the raw bytes - this
// package does not implement full VR-lexical validation (spec.md non-goal).
func decodeValue(v vr.VR, data []byte, bo binary.ByteOrder) interface{} {
	switch v {
	case vr.UI, vr.SH, vr.LO, vr.ST, vr.LT, vr.UT, vr.PN, vr.CS, vr.DA, vr.TM, vr.DT, vr.AS, vr.IS, vr.DS, vr.UC, vr.UR:
		s := string(data)
		for len(s) > 0 && (s[len(s)-1] == 0 || s[len(s)-1] == ' ') {
			s = s[:len(s)-1]
		}
		return s
	case vr.US:
		if len(data) == 2 {
			return bo.Uint16(data)
		}
		values := make([]uint16, len(data)/2)
		for i := range values {
			values[i] = bo.Uint16(data[i*2:])
		}
		return values
	case vr.UL:
		if len(data) == 4 {
			return bo.Uint32(data)
		}
		values := make([]uint32, len(data)/4)
		for i := range values {
			values[i] = bo.Uint32(data[i*4:])
		}
		return values
	case vr.SS:
		if len(data) == 2 {
			return int16(bo.Uint16(data))
		}
	case vr.SL:
		if len(data) == 4 {
			return int32(bo.Uint32(data))
		}
	case vr.FL:
		if len(data) == 4 {
			var f float32
			_ = binary.Read(bytes.NewReader(data), bo, &f)
			return f
		}
	case vr.FD:
		if len(data) == 8 {
			var f float64
			_ = binary.Read(bytes.NewReader(data), bo, &f)
			return f
		}
	case vr.OB, vr.OW, vr.UN, vr.OF, vr.OD, vr.OL:
		return append([]byte(nil), data...)
	}
	return append([]byte(nil), data...)
}
