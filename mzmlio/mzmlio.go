package mzmlio

import (
	"encoding/xml"

	"github.com/b000io/b000/mzml"
)

// Read parses an mzML 1.1.x document from data into an mzml.Document. It
// does not validate schema beyond what is needed to round-trip the fields
// the core codec carries (spec §1's non-goals apply here too).
func Read(data []byte) (*mzml.Document, error) {
	var x xmlMzML
	if err := xml.Unmarshal(data, &x); err != nil {
		return nil, err
	}
	return documentFromXML(&x)
}

// Write serializes doc as a pretty-printed mzML 1.1.x document.
func Write(doc *mzml.Document) ([]byte, error) {
	x := documentToXML(doc)

	body, err := xml.MarshalIndent(x, "", "  ")
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(xml.Header)+len(body)+1)
	out = append(out, []byte(xml.Header)...)
	out = append(out, body...)
	out = append(out, '\n')
	return out, nil
}
