// Package mcio reads the .tra/.lab file pair MRMC-family tools use to
// describe a model: ReadTra builds a chain.Chain from a ".tra" transition
// file ("STATES n" / "TRANSITIONS m" header followed by "from to value"
// rows, 1-indexed per the MRMC format), and ReadLab builds a label.Set
// from a ".lab" file ("#DECLARATION" / label names / "#END" followed by
// "state label..." rows).
package mcio
