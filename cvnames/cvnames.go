// Package cvnames resolves a CV accession to its human-readable term name
// for round-tripping mzML CvParam.name (spec §9 Open Question 1: the codec
// itself only ever stores accession + cv-ref, never the name string, so a
// name lookup is supplied by the caller at decode time rather than
// shipped as a bundled copy of the full ontology).
package cvnames

import "github.com/b000io/b000/format"

// Table resolves an accession to its CV term name. Implementations may
// back onto an embedded subset of the PSI-MS/UO/NCIT ontologies, a live
// OLS lookup, or — as Static does — a small in-memory seed map.
type Table interface {
	// Name returns the term name for ref:tail, and false if unknown.
	Name(ref format.CvRef, tail uint32) (string, bool)
}

// Static is a Table backed by a fixed map, populated with the handful of
// terms this format's own pipeline produces or consumes directly (array
// kinds, numeric types, compression methods, chromatogram types, and a few
// common spectrum and unit terms).
// Callers that need full ontology coverage should supply their own Table.
type Static struct {
	names map[key]string
}

type key struct {
	ref  format.CvRef
	tail uint32
}

// NewStatic creates a Static table seeded with the default entries.
func NewStatic() *Static {
	s := &Static{names: make(map[key]string, len(defaultNames))}
	for k, v := range defaultNames {
		s.names[k] = v
	}
	return s
}

// Name implements Table.
func (s *Static) Name(ref format.CvRef, tail uint32) (string, bool) {
	name, ok := s.names[key{ref: ref, tail: tail}]
	return name, ok
}

// Set adds or overrides an entry.
func (s *Static) Set(ref format.CvRef, tail uint32, name string) {
	s.names[key{ref: ref, tail: tail}] = name
}

var defaultNames = map[key]string{
	{format.CvRefMS, 1000514}: "m/z array",
	{format.CvRefMS, 1000515}: "intensity array",
	{format.CvRefMS, 1000595}: "time array",
	{format.CvRefMS, 1000521}: "32-bit float",
	{format.CvRefMS, 1000523}: "64-bit float",
	{format.CvRefMS, 1000522}: "64-bit integer",
	{format.CvRefMS, 1000520}: "16-bit float",
	{format.CvRefMS, 1000574}: "zlib compression",
	{format.CvRefMS, 1000576}: "no compression",
	{format.CvRefMS, 1000285}: "total ion current",
	{format.CvRefMS, 1000235}: "total ion current chromatogram",
	{format.CvRefMS, 1000627}: "selected ion current chromatogram",
	{format.CvRefMS, 1000016}: "scan start time",
	{format.CvRefMS, 1000511}: "ms level",
	{format.CvRefMS, 1000127}: "centroid spectrum",
	{format.CvRefMS, 1000128}: "profile spectrum",
	{format.CvRefUO, 28}:      "minute",
	{format.CvRefUO, 21}:      "second",
}
