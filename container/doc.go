// Package container implements the block-packed element storage the B000
// format uses for binary data arrays (spec §4.1, §4.8). Elements of the
// same width are appended into one open "box" per element size; a box
// seals into a directory-indexed block once it would overflow the target
// block size, compressing (optionally byte-shuffled first) as it goes.
// Oversized single items bypass bucketing entirely and get a dedicated
// block. Grounded on the original implementation's ContainerBuilder/
// ContainerView (container.rs).
package container
