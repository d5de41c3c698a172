package speech

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// AudioFormat describes raw PCM samples
type AudioFormat struct {
	SampleRate int
	Channels   int
	BitDepth   int
}

// BytesPerFrame returns the size of one sample across all channels
func (f AudioFormat) BytesPerFrame() int {
	return f.BitDepth / 8 * f.Channels
}

// Valid reports whether the format can be played
func (f AudioFormat) Valid() bool {
	return f.SampleRate > 0 && (f.Channels == 1 || f.Channels == 2) && f.BitDepth == 16
}

// String formats the audio format for logs
func (f AudioFormat) String() string {
	return fmt.Sprintf("%dHz/%dch/%dbit", f.SampleRate, f.Channels, f.BitDepth)
}

const (
	wavHeaderSize  = 12
	chunkHeader    = 8
	wavFormatPCM   = 1
	minFmtChunkLen = 16
)

// DecodeWAV extracts 16-bit PCM samples and their format from a RIFF/WAVE
// buffer. Streaming writers (espeak --stdout) leave placeholder sizes in the
// header, so a data chunk that claims more bytes than remain is cut to the
// buffer end.
func DecodeWAV(data []byte) ([]byte, AudioFormat, error) {
	var format AudioFormat

	if len(data) < wavHeaderSize || !bytes.Equal(data[0:4], []byte("RIFF")) || !bytes.Equal(data[8:12], []byte("WAVE")) {
		return nil, format, fmt.Errorf("%w: missing RIFF/WAVE header", ErrInvalidWAV)
	}

	haveFmt := false
	pos := wavHeaderSize
	for pos+chunkHeader <= len(data) {
		id := string(data[pos : pos+4])
		size := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		body := pos + chunkHeader

		switch id {
		case "fmt ":
			if size < minFmtChunkLen || body+size > len(data) {
				return nil, format, fmt.Errorf("%w: short fmt chunk", ErrInvalidWAV)
			}
			audioFormat := binary.LittleEndian.Uint16(data[body : body+2])
			if audioFormat != wavFormatPCM {
				return nil, format, fmt.Errorf("%w: encoding %d", ErrUnsupportedFormat, audioFormat)
			}
			format.Channels = int(binary.LittleEndian.Uint16(data[body+2 : body+4]))
			format.SampleRate = int(binary.LittleEndian.Uint32(data[body+4 : body+8]))
			format.BitDepth = int(binary.LittleEndian.Uint16(data[body+14 : body+16]))
			haveFmt = true

		case "data":
			if !haveFmt {
				return nil, format, fmt.Errorf("%w: data before fmt", ErrInvalidWAV)
			}
			if !format.Valid() {
				return nil, format, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
			}
			end := body + size
			if size == 0 || end > len(data) || end < body {
				end = len(data)
			}
			pcm := data[body:end]
			// Drop a trailing partial frame.
			pcm = pcm[:len(pcm)-len(pcm)%format.BytesPerFrame()]
			return pcm, format, nil
		}

		next := body + size + size%2
		if next <= pos || next > len(data) {
			break
		}
		pos = next
	}

	return nil, format, fmt.Errorf("%w: no data chunk", ErrInvalidWAV)
}
