package dicos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncapsulatedPixelData_MalformedItemTag(t *testing.T) {
	buf := appendItem(nil, 0x1234, 0x5678, 0, nil)
	_, err := parseEncapsulatedPixelData(ExplicitLittleEndian, &recordingHandler{}, Attribute{}, buf)
	assert.ErrorIs(t, err, ErrMalformedSequence)
}

func TestEncapsulatedPixelData_CancelOnFragment(t *testing.T) {
	var buf []byte
	buf = appendItem(buf, 0xFFFE, 0xE000, 0, nil)              // BOT
	buf = appendItem(buf, 0xFFFE, 0xE000, 4, []byte{1, 2, 3, 4}) // fragment 1, cancels here
	buf = appendItem(buf, 0xFFFE, 0xE000, 4, []byte{5, 6, 7, 8}) // fragment 2, never seen
	buf = appendItem(buf, 0xFFFE, 0xE0DD, 0, nil)

	h := &cancellingPixelHandler{}
	res, err := parseEncapsulatedPixelData(ExplicitLittleEndian, h, Attribute{}, buf)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, res.Status)
	assert.Equal(t, 1, h.fragments)
}

type cancellingPixelHandler struct {
	NopHandler
	fragments int
}

func (h *cancellingPixelHandler) PixelDataFragment(a Attribute, data []byte) Control {
	h.fragments++
	return ControlCancel
}

func TestEncapsulatedPixelData_Incomplete(t *testing.T) {
	buf := appendItem(nil, 0xFFFE, 0xE000, 10, []byte{1, 2}) // declares 10 bytes, only 2 present
	res, err := parseEncapsulatedPixelData(ExplicitLittleEndian, &recordingHandler{}, Attribute{}, buf)
	require.NoError(t, err)
	assert.Equal(t, StatusIncomplete, res.Status)
	assert.Equal(t, 0, res.BytesConsumed)
}
