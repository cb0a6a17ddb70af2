// Package b000 is the top-level convenience wrapper around the codec: it
// wires flatten/reconstruct, metadata, arrays, and container together into
// the two operations most callers need, Encode and Decode, following the
// file layout and compression policy of spec §4.9 and §6.
package b000
