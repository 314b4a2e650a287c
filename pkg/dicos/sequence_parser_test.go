package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func innerAttribute() []byte {
	return explicitLEAttr(nil, 0x0010, 0x0010, "PN", []byte("A\x00"))
}

func TestSequence_DefinedLength(t *testing.T) {
	inner := innerAttribute()
	item := appendItem(nil, 0xFFFE, 0xE000, uint32(len(inner)), inner)
	sq := metaElementLongForm(nil, 0x0008, 0x9121, "SQ", item)

	h := &recordingHandler{}
	res, err := runDataSet(ExplicitLittleEndian, h, sq, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, res.Status)
	assert.Equal(t, len(sq), res.BytesConsumed)

	assert.Equal(t, 2, h.elements) // the SQ attribute itself + the inner PN attribute
	assert.Equal(t, 1, h.startSequences)
	assert.Equal(t, 1, h.endSequences)
	assert.Equal(t, 1, h.startSequenceItems)
	assert.Equal(t, 1, h.endSequenceItems)
}

func TestSequence_DefinedLength_MalformedItemTag(t *testing.T) {
	sq := metaElementLongForm(nil, 0x0008, 0x9121, "SQ", appendItem(nil, 0x1234, 0x5678, 0, nil))

	_, err := runDataSet(ExplicitLittleEndian, &recordingHandler{}, sq, 0)
	assert.ErrorIs(t, err, ErrMalformedSequence)
}

func TestSequence_UndefinedLength(t *testing.T) {
	inner := innerAttribute()
	var body []byte
	body = appendItem(body, 0xFFFE, 0xE000, uint32(len(inner)), inner)
	body = appendItem(body, 0xFFFE, 0xE0DD, 0, nil)

	sq := metaElementLongForm(nil, 0x0008, 0x9121, "SQ", nil)
	putU32LE(sq[len(sq)-4:], undefinedLength)
	sq = append(sq, body...)

	h := &recordingHandler{}
	res, err := runDataSet(ExplicitLittleEndian, h, sq, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, res.Status)
	assert.Equal(t, len(sq), res.BytesConsumed)

	assert.Equal(t, 1, h.startSequences)
	assert.Equal(t, 1, h.endSequences)
	assert.Equal(t, 1, h.startSequenceItems)
	assert.Equal(t, 1, h.endSequenceItems)
}

func TestSequence_UndefinedLength_UndefinedLengthItem(t *testing.T) {
	// Item itself has undefined length, bounded by an Item Delimitation Item.
	inner := innerAttribute()
	var item []byte
	item = appendItem(item, 0xFFFE, 0xE000, undefinedLength, nil)
	item = append(item, inner...)
	item = appendItem(item, 0xFFFE, 0xE00D, 0, nil)
	item = appendItem(item, 0xFFFE, 0xE0DD, 0, nil)

	sq := metaElementLongForm(nil, 0x0008, 0x9121, "SQ", nil)
	putU32LE(sq[len(sq)-4:], undefinedLength)
	sq = append(sq, item...)

	h := &recordingHandler{}
	res, err := runDataSet(ExplicitLittleEndian, h, sq, 0)
	require.NoError(t, err)
	assert.Equal(t, StatusComplete, res.Status)
	assert.Equal(t, len(sq), res.BytesConsumed)
	assert.Equal(t, 1, h.startSequenceItems)
	assert.Equal(t, 1, h.endSequenceItems)
}

func TestSequence_DepthGuard(t *testing.T) {
	_, err := parseSequenceDefinedLength(ExplicitLittleEndian, &recordingHandler{}, Attribute{Length: 0}, nil, maxSequenceDepth)
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = parseSequenceUndefinedLength(ExplicitLittleEndian, &recordingHandler{}, Attribute{}, nil, maxSequenceDepth)
	assert.ErrorIs(t, err, ErrTooDeep)
}
