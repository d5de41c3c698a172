package ui

// Package ui contains the Fyne-based desktop user interface for the meme
// generator. RootUI lays out the caption form, the meme canvas, and the
// read-aloud controls, forwards widget events to the controller, and applies
// the controller's state back to the widgets. All UI strings are localized
// via Localization.
