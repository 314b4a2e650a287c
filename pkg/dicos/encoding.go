package dicos

import (
	"encoding/binary"

	"github.com/student/dicomstream/pkg/dicos/transfer"
	"github.com/student/dicomstream/pkg/dicos/vr"
)

// Encoding abstracts the byte-order and VR/length header shape that differs
// between transfer syntaxes, so the rest of the parser can stay encoding-agnostic.
type Encoding interface {
	Uint16(b []byte) uint16
	Uint32(b []byte) uint32
	// VRAndLength decodes the VR/length header that immediately follows a
	// 4-byte tag. It returns the VR (zero value if the encoding doesn't
	// carry one), whether a VR was present, the decoded length, and the
	// number of bytes of b consumed by this header (not counting the tag).
	// It returns errInsufficientBytes if b is too short to decode.
	VRAndLength(b []byte) (v vr.VR, hasVR bool, length uint32, headerLen int, err error)
	// ByteOrder is the byte order element *values* are encoded in under this
	// transfer syntax, for handlers that decode numeric VRs themselves.
	ByteOrder() binary.ByteOrder
}

// isLongFormVR is the closed set of VRs that use the 4-byte-length,
// 2-reserved-byte explicit encoding instead of the 2-byte-length short form.
// This is intentionally narrower than vr.VR.IsExplicitLength (which also
// treats OD, OL, UC, UR as long-form) - this parser only needs the set DICOM
// PS3.5 section 7.1.2 actually assigns 4-byte lengths to for the transfer
// syntaxes in scope here, and a narrower closed set is easier to audit.
func isLongFormVR(v vr.VR) bool {
	switch v {
	case vr.OB, vr.OW, vr.OF, vr.SQ, vr.UT, vr.UN:
		return true
	default:
		return false
	}
}

type implicitLittleEndian struct{}

func (implicitLittleEndian) Uint16(b []byte) uint16      { return binary.LittleEndian.Uint16(b) }
func (implicitLittleEndian) Uint32(b []byte) uint32      { return binary.LittleEndian.Uint32(b) }
func (implicitLittleEndian) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

func (implicitLittleEndian) VRAndLength(b []byte) (vr.VR, bool, uint32, int, error) {
	if len(b) < 4 {
		return "", false, 0, 0, errInsufficientBytes
	}
	return "", false, binary.LittleEndian.Uint32(b[0:4]), 4, nil
}

type explicitLittleEndian struct{}

func (explicitLittleEndian) Uint16(b []byte) uint16      { return binary.LittleEndian.Uint16(b) }
func (explicitLittleEndian) Uint32(b []byte) uint32      { return binary.LittleEndian.Uint32(b) }
func (explicitLittleEndian) ByteOrder() binary.ByteOrder { return binary.LittleEndian }

func (explicitLittleEndian) VRAndLength(b []byte) (vr.VR, bool, uint32, int, error) {
	return explicitVRAndLength(b, binary.LittleEndian)
}

type explicitBigEndian struct{}

func (explicitBigEndian) Uint16(b []byte) uint16      { return binary.BigEndian.Uint16(b) }
func (explicitBigEndian) Uint32(b []byte) uint32      { return binary.BigEndian.Uint32(b) }
func (explicitBigEndian) ByteOrder() binary.ByteOrder { return binary.BigEndian }

func (explicitBigEndian) VRAndLength(b []byte) (vr.VR, bool, uint32, int, error) {
	return explicitVRAndLength(b, binary.BigEndian)
}

// explicitVRAndLength implements the explicit-VR header shape shared by
// little- and big-endian explicit transfer syntaxes. The 2-byte VR itself is
// ASCII and has no byte order; only the length field's order depends on bo.
func explicitVRAndLength(b []byte, bo binary.ByteOrder) (vr.VR, bool, uint32, int, error) {
	if len(b) < 2 {
		return "", false, 0, 0, errInsufficientBytes
	}
	v := vr.VR(b[0:2])
	if isLongFormVR(v) {
		if len(b) < 8 {
			return "", false, 0, 0, errInsufficientBytes
		}
		return v, true, bo.Uint32(b[4:8]), 8, nil
	}
	if len(b) < 4 {
		return "", false, 0, 0, errInsufficientBytes
	}
	return v, true, uint32(bo.Uint16(b[2:4])), 4, nil
}

// Package-level Encoding singletons; all three implementations are stateless.
var (
	ImplicitLittleEndian Encoding = implicitLittleEndian{}
	ExplicitLittleEndian Encoding = explicitLittleEndian{}
	ExplicitBigEndian    Encoding = explicitBigEndian{}
)

// EncodingForTransferSyntax resolves a transfer syntax UID (as found in the
// meta-information's Transfer Syntax UID element) to its Encoding. Any UID
// not recognized as Implicit VR LE or Explicit VR BE defaults to Explicit VR
// LE, matching the behavior of every non-retired DICOM transfer syntax
// (including the compressed ones, whose pixel data is merely opaque to this
// parser but whose data-set framing is Explicit VR Little Endian).
func EncodingForTransferSyntax(uid string) (Encoding, error) {
	switch transfer.Syntax(uid) {
	case transfer.ImplicitVRLittleEndian:
		return ImplicitLittleEndian, nil
	case transfer.ExplicitVRBigEndian:
		return ExplicitBigEndian, nil
	case transfer.DeflatedExplicitVR:
		return nil, &UnsupportedTransferSyntaxError{UID: uid}
	default:
		return ExplicitLittleEndian, nil
	}
}
