package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/student/dicomstream/pkg/dicos/tag"
)

// recordingHandler counts every event it receives, for asserting invariant 1
// (start/end sequence item balance) and the literal scenarios' event counts.
type recordingHandler struct {
	NopHandler
	elements           int
	startSequences     int
	endSequences       int
	startSequenceItems int
	endSequenceItems   int
	bots               int
	fragments          int
	values             []struct {
		Tag tag.Tag
		VR  string
	}
}

func (r *recordingHandler) Element(a Attribute) Control {
	r.elements++
	return ControlContinue
}

func (r *recordingHandler) Value(a Attribute, data []byte) {
	r.values = append(r.values, struct {
		Tag tag.Tag
		VR  string
	}{a.Tag, string(a.VR)})
}

func (r *recordingHandler) StartSequence(Attribute)     { r.startSequences++ }
func (r *recordingHandler) EndSequence(Attribute)       { r.endSequences++ }
func (r *recordingHandler) StartSequenceItem(Attribute) { r.startSequenceItems++ }
func (r *recordingHandler) EndSequenceItem(Attribute)   { r.endSequenceItems++ }
func (r *recordingHandler) BasicOffsetTable(a Attribute, data []byte) Control {
	r.bots++
	return ControlContinue
}
func (r *recordingHandler) PixelDataFragment(a Attribute, data []byte) Control {
	r.fragments++
	return ControlContinue
}

func TestParse_ExplicitLittleEndianBody(t *testing.T) {
	// S3.
	b := makeP10Header("1.2.840.10008.1.2.1")
	b = explicitLEAttr(b, 0x0008, 0x0005, "CS", []byte("IS"))

	h := &recordingHandler{}
	meta, err := Parse(h, b)
	require.NoError(t, err)
	assert.Equal(t, "1.2.840.10008.1.2.1", meta.TransferSyntaxUID)
	assert.Equal(t, 1, h.elements)
}

func TestParse_ImplicitLittleEndianBody(t *testing.T) {
	// S4.
	b := makeP10Header("1.2.840.10008.1.2")
	b = implicitLEAttr(b, 0x0008, 0x0005, []byte("IS"))

	h := &recordingHandler{}
	_, err := Parse(h, b)
	require.NoError(t, err)
	assert.Equal(t, 1, h.elements)
}

func TestParse_ExplicitBigEndianBody(t *testing.T) {
	// S5.
	b := makeP10Header("1.2.840.10008.1.2.2")
	b = explicitBEAttr(b, 0x0008, 0x0005, "CS", []byte("IS"))

	h := &recordingHandler{}
	_, err := Parse(h, b)
	require.NoError(t, err)
	assert.Equal(t, 1, h.elements)
}

func TestParse_DeflatedTransferSyntaxUnsupported(t *testing.T) {
	b := makeP10Header("1.2.840.10008.1.2.1.99")
	_, err := Parse(&recordingHandler{}, b)
	var unsupported *UnsupportedTransferSyntaxError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "1.2.840.10008.1.2.1.99", unsupported.UID)
}

func TestParse_UnrecognizedTransferSyntaxDefaultsToExplicitLE(t *testing.T) {
	b := makeP10Header("1.2.840.10008.1.2.4.50") // JPEG Baseline: compressed, but framing is Explicit LE
	b = explicitLEAttr(b, 0x0008, 0x0005, "CS", []byte("IS"))

	h := &recordingHandler{}
	_, err := Parse(h, b)
	require.NoError(t, err)
	assert.Equal(t, 1, h.elements)
}

func appendItem(buf []byte, group, element uint16, length uint32, data []byte) []byte {
	var hdr [8]byte
	putU16LE(hdr[0:2], group)
	putU16LE(hdr[2:4], element)
	putU32LE(hdr[4:8], length)
	buf = append(buf, hdr[:]...)
	return append(buf, data...)
}

func putU16LE(b []byte, v uint16) { b[0] = byte(v); b[1] = byte(v >> 8) }
func putU32LE(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

// makeEncapsulatedPixelData builds an undefined-length PixelData element
// followed by a zero-length BOT item, two 4-byte fragments, and a Sequence
// Delimitation Item - S6.
func makeEncapsulatedPixelData() []byte {
	var b []byte
	b = metaElementLongForm(b, 0x7FE0, 0x0010, "OB", nil)
	// overwrite the 4-byte length field (last 4 bytes of the 12-byte header)
	// with the undefined-length sentinel instead of 0.
	putU32LE(b[len(b)-4:], undefinedLength)

	b = appendItem(b, 0xFFFE, 0xE000, 0, nil)               // BOT, empty
	b = appendItem(b, 0xFFFE, 0xE000, 4, []byte{1, 2, 3, 4}) // fragment 1
	b = appendItem(b, 0xFFFE, 0xE000, 4, []byte{5, 6, 7, 8}) // fragment 2
	b = appendItem(b, 0xFFFE, 0xE0DD, 0, nil)               // sequence delimitation
	return b
}

func TestParse_EncapsulatedPixelData(t *testing.T) {
	// S6.
	header := makeP10Header("1.2.840.10008.1.2.4.80") // JPEG-LS Lossless: encapsulated
	body := makeEncapsulatedPixelData()
	b := append(header, body...)

	h := &recordingHandler{}
	_, err := Parse(h, b)
	require.NoError(t, err)
	assert.Equal(t, 1, h.elements)
	assert.Equal(t, 1, h.bots)
	assert.Equal(t, 2, h.fragments)
}

// TestParse_Resumability is invariant 3: feeding the body one byte at a time
// and re-invoking on Incomplete yields the same events as feeding it whole.
func TestParse_Resumability(t *testing.T) {
	header := makeP10Header("1.2.840.10008.1.2.1")
	var body []byte
	body = explicitLEAttr(body, 0x0008, 0x0005, "CS", []byte("IS"))
	body = explicitLEAttr(body, 0x0010, 0x0010, "PN", []byte("A\x00"))

	full := &recordingHandler{}
	enc, err := EncodingForTransferSyntax("1.2.840.10008.1.2.1")
	require.NoError(t, err)
	res, err := runDataSet(enc, full, body, 0)
	require.NoError(t, err)
	require.Equal(t, StatusComplete, res.Status)

	incremental := &recordingHandler{}
	pos, limit := 0, 1
	for pos < len(body) {
		require.LessOrEqual(t, limit, len(body), "never completed parsing the body")
		res, err := runDataSet(enc, incremental, body[pos:limit], 0)
		require.NoError(t, err)
		if res.BytesConsumed > 0 {
			pos += res.BytesConsumed
			limit = pos + 1
		} else {
			limit++
		}
	}

	assert.Equal(t, full.elements, incremental.elements)
	assert.Equal(t, len(full.values), len(incremental.values))

	_ = header // header construction exercised above; body is what's resumed here
}

// TestParse_CancelStopsAtElement is invariant 4: Cancel on element N produces
// no events for N+1..., and BytesConsumed lands at element N's header start.
func TestParse_CancelStopsAtElement(t *testing.T) {
	var body []byte
	body = explicitLEAttr(body, 0x0008, 0x0005, "CS", []byte("IS"))
	secondStart := len(body)
	body = explicitLEAttr(body, 0x0010, 0x0010, "PN", []byte("A\x00"))

	canceller := &cancelOnSecond{}
	res, err := runDataSet(ExplicitLittleEndian, canceller, body, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, res.Status)
	assert.Equal(t, secondStart, res.BytesConsumed)
	assert.Equal(t, 2, canceller.seen)
}

type cancelOnSecond struct {
	NopHandler
	seen int
}

func (c *cancelOnSecond) Element(a Attribute) Control {
	c.seen++
	if c.seen == 2 {
		return ControlCancel
	}
	return ControlContinue
}
