package model

// Package model defines the transient, single-session values the meme
// generator works with: the loaded image, caption pair, voice catalog,
// speech utterances, and the action state that drives button enablement.
// Nothing here is persisted.
