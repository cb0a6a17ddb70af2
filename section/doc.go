// Package section implements the fixed-size wire records documented in the
// original B000 container implementation's container.rs: the 512-byte
// file header and 8-byte trailer (§4.9), the 32-byte block directory entry
// (§3), and the A0/A1/B0/B1 item and array-reference tables (§4.8). Every
// record here is a pure byte-layout type; the packing rules that decide
// *what* goes into them live in container, metadata, and arrays.
package section
