// Package metadata implements the B000 metadata packer (spec §4.4): the
// structure-of-arrays wire layout shared by the spectrum, chromatogram, and
// global metadata sections. Packing turns a flat slice of attributed rows
// (owner id, parent id, tag, accession, unit accession, value) into the
// CI/MOI/MPI/MTI/MRI/MAN/MURI/MUAN/AOFF/ALEN/AUOFF/AULEN/VK/VI/VN/VOFF/VLEN/VS
// columns; unpacking reverses it. The schema flattener and reconstructor
// (flatten, reconstruct) are the layer above this one that decides what
// rows to emit and how to walk them back into a document tree.
package metadata
