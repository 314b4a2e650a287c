package dicos

// Handler receives parse events from Parse and the data-set driver. Every
// call site is synchronous - a Handler never needs to buffer or defer work
// to the next event to see a consistent view of the stream.
type Handler interface {
	// Element is called once a data element's tag/VR/length header has been
	// read, before its value (if any) is delivered. Returning ControlCancel
	// aborts the parse.
	Element(a Attribute) Control
	// Value delivers an element's raw bytes. For defined-length elements
	// this is exactly a.Length bytes; for undefined-length elements it is
	// everything up to (not including) the delimiter that terminated it.
	Value(a Attribute, data []byte)
	// StartSequence/EndSequence bracket a sequence (VR SQ, or an
	// undefined-length attribute whose value turns out to be a sequence of
	// items). StartSequenceItem/EndSequenceItem bracket each item within it.
	StartSequence(a Attribute)
	StartSequenceItem(a Attribute)
	EndSequenceItem(a Attribute)
	EndSequence(a Attribute)
	// BasicOffsetTable delivers the first item of an encapsulated PixelData
	// element (the Basic Offset Table, DICOM PS3.5 section A.4).
	BasicOffsetTable(a Attribute, data []byte) Control
	// PixelDataFragment delivers each subsequent item of an encapsulated
	// PixelData element.
	PixelDataFragment(a Attribute, data []byte) Control
}

// NopHandler implements Handler with no-ops that always continue parsing.
// Embed it to implement only the callbacks you care about.
type NopHandler struct{}

func (NopHandler) Element(Attribute) Control                        { return ControlContinue }
func (NopHandler) Value(Attribute, []byte)                          {}
func (NopHandler) StartSequence(Attribute)                          {}
func (NopHandler) StartSequenceItem(Attribute)                      {}
func (NopHandler) EndSequenceItem(Attribute)                        {}
func (NopHandler) EndSequence(Attribute)                            {}
func (NopHandler) BasicOffsetTable(Attribute, []byte) Control        { return ControlContinue }
func (NopHandler) PixelDataFragment(Attribute, []byte) Control       { return ControlContinue }
