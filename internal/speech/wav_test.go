package speech

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

// buildWAV encodes pcm as a canonical 44-byte header WAV. dataSize overrides
// the data chunk length when non-negative.
func buildWAV(pcm []byte, format AudioFormat, dataSize int) []byte {
	if dataSize < 0 {
		dataSize = len(pcm)
	}
	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(format.Channels))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(format.SampleRate*format.BytesPerFrame()))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(format.BytesPerFrame()))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(format.BitDepth))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(dataSize))
	buf.Write(pcm)
	return buf.Bytes()
}

var espeakFormat = AudioFormat{SampleRate: 22050, Channels: 1, BitDepth: 16}

func TestDecodeWAV(t *testing.T) {
	pcm := []byte{1, 0, 2, 0, 3, 0, 4, 0}

	tests := []struct {
		name     string
		data     []byte
		expected []byte
		err      error
	}{
		{
			name:     "canonical",
			data:     buildWAV(pcm, espeakFormat, -1),
			expected: pcm,
		},
		{
			name:     "streaming placeholder size",
			data:     buildWAV(pcm, espeakFormat, 0x7ffff000),
			expected: pcm,
		},
		{
			name:     "zero data size",
			data:     buildWAV(pcm, espeakFormat, 0),
			expected: pcm,
		},
		{
			name:     "partial trailing frame",
			data:     buildWAV(append(pcm, 9), espeakFormat, -1),
			expected: pcm,
		},
		{
			name: "not a wav",
			data: []byte("hello world, not audio"),
			err:  ErrInvalidWAV,
		},
		{
			name: "too short",
			data: []byte("RIFF"),
			err:  ErrInvalidWAV,
		},
		{
			name: "8-bit",
			data: buildWAV(pcm, AudioFormat{SampleRate: 8000, Channels: 1, BitDepth: 8}, -1),
			err:  ErrUnsupportedFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, format, err := DecodeWAV(tt.data)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("DecodeWAV() error = %v, expected %v", err, tt.err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeWAV() unexpected error = %v", err)
			}
			if !bytes.Equal(got, tt.expected) {
				t.Errorf("DecodeWAV() pcm = %v, expected %v", got, tt.expected)
			}
			if format != espeakFormat {
				t.Errorf("DecodeWAV() format = %v, expected %v", format, espeakFormat)
			}
		})
	}
}

func TestDecodeWAV_SkipsUnknownChunks(t *testing.T) {
	pcm := []byte{5, 0, 6, 0}
	wav := buildWAV(pcm, espeakFormat, -1)

	// Insert an odd-sized LIST chunk (with pad byte) between fmt and data.
	extra := []byte{'L', 'I', 'S', 'T', 3, 0, 0, 0, 'a', 'b', 'c', 0}
	withList := append([]byte{}, wav[:36]...)
	withList = append(withList, extra...)
	withList = append(withList, wav[36:]...)

	got, _, err := DecodeWAV(withList)
	if err != nil {
		t.Fatalf("DecodeWAV() error = %v", err)
	}
	if !bytes.Equal(got, pcm) {
		t.Errorf("DecodeWAV() pcm = %v, expected %v", got, pcm)
	}
}

func TestAudioFormat(t *testing.T) {
	if got := espeakFormat.BytesPerFrame(); got != 2 {
		t.Errorf("BytesPerFrame() = %d, expected 2", got)
	}
	if got := espeakFormat.String(); got != "22050Hz/1ch/16bit" {
		t.Errorf("String() = %q", got)
	}
	if (AudioFormat{SampleRate: 44100, Channels: 3, BitDepth: 16}).Valid() {
		t.Error("3 channels should be invalid")
	}
}
