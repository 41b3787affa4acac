// Package transcript defines the word-level transcript records consumed by
// the text-driven decision stages.
//
// Words and segments are immutable value types validated once at the input
// boundary; the disfluency and retake stages only read them and emit cut
// lists or filtered copies. The package also owns sentence-like segment
// rebuilding from the word stream, text normalization used before any
// similarity comparison, and the edit-distance similarity ratio itself.
package transcript
