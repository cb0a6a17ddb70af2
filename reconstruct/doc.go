// Package reconstruct implements the schema reconstructor (spec §4.7): the
// inverse of flatten, turning a flattened metadata.Row slice for one
// top-level item back into an mzml document fragment.
package reconstruct
