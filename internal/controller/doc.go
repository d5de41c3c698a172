package controller

// Package controller contains the meme form logic. It owns the single
// image-loaded flag that drives button enablement, composes the surface on
// image load and caption submit, and turns captions into utterances for the
// speech service. Widgets, drawing and speech are injected as interfaces so
// the logic runs headless in tests.
