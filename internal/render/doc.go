package render

// Package render implements the meme canvas: a fixed-size RGBA raster with
// clear, fill, scaled image blit, and single-line text primitives built on
// golang.org/x/image. Captions use the embedded Go Bold face.
