// Package flatten implements the schema flattener (spec §4.6): it walks an
// in-memory mzml.Document (or a single spectrum/chromatogram item) and
// produces the column-of-arrays metadata.Row slice the metadata packer
// stores on the wire, allocating owner/parent ids as it recurses.
package flatten
