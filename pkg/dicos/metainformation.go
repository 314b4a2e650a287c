package dicos

import "github.com/student/dicomstream/pkg/dicos/tag"

// MetaInformation holds the File Meta Information (group 0002), which is
// always Explicit VR Little Endian regardless of the main data set's
// transfer syntax.
type MetaInformation struct {
	MediaStorageSOPClassUID    string
	MediaStorageSOPInstanceUID string
	TransferSyntaxUID          string
	ImplementationClassUID     string
	// EndPosition is the absolute offset (from the start of the original
	// byte stream, preamble included) where the main data set begins.
	EndPosition int
	Attributes  []Attribute
	Data        [][]byte
}

// metaCollector accumulates group-0002 attributes and cancels as soon as it
// sees the first element outside that group, mirroring the look-ahead
// original_source/src/meta_information.rs uses to find the end of the meta
// information block.
type metaCollector struct {
	NopHandler
	attributes []Attribute
	data       [][]byte
}

func (c *metaCollector) Element(a Attribute) Control {
	if a.Tag.Group != 0x0002 {
		return ControlCancel
	}
	c.attributes = append(c.attributes, a)
	c.data = append(c.data, nil)
	return ControlContinue
}

func (c *metaCollector) Value(a Attribute, data []byte) {
	c.data[len(c.data)-1] = append([]byte(nil), data...)
}

// ParseMetaInformation parses the File Meta Information from the start of
// data, which must include the 132-byte Part-10 preamble.
func ParseMetaInformation(data []byte) (*MetaInformation, error) {
	if !DetectPrefix(data) {
		return nil, ErrNotDicom
	}

	collector := &metaCollector{}
	res, err := runDataSet(ExplicitLittleEndian, collector, data[preambleSize:], 0)
	if err != nil {
		return nil, err
	}
	// Either the collector cancelled on the first non-group-2 element, or
	// the stream ended exactly at the close of group 2 (StatusComplete) -
	// either way res.BytesConsumed ends the meta-information region.
	endPos := preambleSize + res.BytesConsumed

	find := func(t tag.Tag) (string, error) {
		for i, a := range collector.attributes {
			if a.Tag == t {
				return decodeUID(collector.data[i])
			}
		}
		return "", &MissingMetaElementError{Tag: t}
	}

	sopClass, err := find(tag.MediaStorageSOPClassUID)
	if err != nil {
		return nil, err
	}
	sopInstance, err := find(tag.MediaStorageSOPInstanceUID)
	if err != nil {
		return nil, err
	}
	transferSyntax, err := find(tag.TransferSyntaxUID)
	if err != nil {
		return nil, err
	}
	implClass, err := find(tag.ImplementationClassUID)
	if err != nil {
		return nil, err
	}

	return &MetaInformation{
		MediaStorageSOPClassUID:    sopClass,
		MediaStorageSOPInstanceUID: sopInstance,
		TransferSyntaxUID:          transferSyntax,
		ImplementationClassUID:     implClass,
		EndPosition:                endPos,
		Attributes:                 collector.attributes,
		Data:                       collector.data,
	}, nil
}

// decodeUID strips a single trailing NUL pad byte (the DICOM convention for
// odd-length UIDs) and validates the remainder is 7-bit ASCII, per spec.md's
// non-goal of general character-set decoding: UIDs are the one string type
// this parser interprets, and only as plain ASCII.
func decodeUID(b []byte) (string, error) {
	if len(b) > 0 && b[len(b)-1] == 0x00 {
		b = b[:len(b)-1]
	}
	for _, c := range b {
		if c > 0x7F {
			return "", ErrMalformedUID
		}
	}
	return string(b), nil
}
