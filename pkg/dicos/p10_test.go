package dicos

import "encoding/binary"

// makePreambleAndPrefix returns a 132-byte zeroed preamble ending in "DICM",
// the minimal valid Part-10 prefix.
func makePreambleAndPrefix() []byte {
	b := make([]byte, preambleSize)
	copy(b[128:], "DICM")
	return b
}

// metaElement appends one Explicit VR Little Endian group-0002 element.
func metaElement(buf []byte, group, element uint16, v string, value []byte) []byte {
	var hdr [8]byte
	binary.LittleEndian.PutUint16(hdr[0:2], group)
	binary.LittleEndian.PutUint16(hdr[2:4], element)
	copy(hdr[4:6], v)
	binary.LittleEndian.PutUint16(hdr[6:8], uint16(len(value)))
	buf = append(buf, hdr[:]...)
	return append(buf, value...)
}

// metaElementLongForm appends one Explicit VR Little Endian long-form
// element (2 reserved bytes + 4-byte length), for VRs like OB.
func metaElementLongForm(buf []byte, group, element uint16, v string, value []byte) []byte {
	var hdr [12]byte
	binary.LittleEndian.PutUint16(hdr[0:2], group)
	binary.LittleEndian.PutUint16(hdr[2:4], element)
	copy(hdr[4:6], v)
	binary.LittleEndian.PutUint32(hdr[8:12], uint32(len(value)))
	buf = append(buf, hdr[:]...)
	return append(buf, value...)
}

// makeP10Header builds preamble + a minimal valid file meta information
// block (group 0002 only): a FileMetaInformationGroupLength placeholder,
// FileMetaInformationVersion, and the four required UIDs, mirroring
// original_source/src/meta_information.rs's make_p10_header test fixture.
func makeP10Header(transferSyntaxUID string) []byte {
	b := makePreambleAndPrefix()
	if len(transferSyntaxUID)%2 != 0 {
		transferSyntaxUID += "\x00"
	}
	groupLength := make([]byte, 4)
	b = metaElement(b, 0x0002, 0x0000, "UL", groupLength)
	b = metaElementLongForm(b, 0x0002, 0x0001, "OB", []byte{0, 1})
	b = metaElement(b, 0x0002, 0x0002, "UI", []byte("1\x00"))
	b = metaElement(b, 0x0002, 0x0003, "UI", []byte("2\x00"))
	b = metaElement(b, 0x0002, 0x0010, "UI", []byte(transferSyntaxUID))
	b = metaElement(b, 0x0002, 0x0012, "UI", []byte("4\x00"))
	return b
}

// explicitLEAttr appends one Explicit VR Little Endian short-form data
// element (CS/IS/UI/... not in the long-form VR set).
func explicitLEAttr(buf []byte, group, element uint16, v string, value []byte) []byte {
	return metaElement(buf, group, element, v, value)
}

// implicitLEAttr appends one Implicit VR Little Endian data element: tag
// plus a 4-byte length, no VR.
func implicitLEAttr(buf []byte, group, element uint16, value []byte) []byte {
	var hdr [8]byte
	binary.LittleEndian.PutUint16(hdr[0:2], group)
	binary.LittleEndian.PutUint16(hdr[2:4], element)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(value)))
	buf = append(buf, hdr[:]...)
	return append(buf, value...)
}

// explicitBEAttr appends one Explicit VR Big Endian short-form data element.
func explicitBEAttr(buf []byte, group, element uint16, v string, value []byte) []byte {
	var hdr [8]byte
	binary.BigEndian.PutUint16(hdr[0:2], group)
	binary.BigEndian.PutUint16(hdr[2:4], element)
	copy(hdr[4:6], v)
	binary.BigEndian.PutUint16(hdr[6:8], uint16(len(value)))
	buf = append(buf, hdr[:]...)
	return append(buf, value...)
}
