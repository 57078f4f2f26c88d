// Package label implements mcctx.Labeling: an ascending, named collection
// of state bitsets, one per label, mirroring the one-one label/bitset
// relation of MRMC's labelling structure (storage/label.h): "bitset[0]
// indicates the states in which label[0] is valid."
//
// A Set is built by adding labels and toggling individual bit positions,
// then used read-only for the remainder of a run; it holds no reference
// back to a chain.Chain so it can be constructed independently from a
// ".lab" file (package mcio) or programmatically by tests and builders.
package label
