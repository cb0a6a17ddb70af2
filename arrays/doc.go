// Package arrays implements the binary-array pipeline (spec §4.8): dtype
// selection for a BinaryDataArray's numeric payload, encoding payloads into
// a container.Builder and the A0/A1 (or B0/B1) directory and array-ref
// tables, and the inverse decode path.
package arrays
