package geometry

// Package geometry holds the pure layout math used to place a user image on
// the meme canvas. Nothing here touches pixels or UI state.
