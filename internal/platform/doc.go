package platform

// Package platform contains OS/platform integration: image decoding for the
// formats the picker offers, speech synthesizer discovery, and well-known
// user directories.
