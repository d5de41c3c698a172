package speech

// Package speech provides text-to-speech for the meme captions. An Engine
// turns text into PCM audio (espeak-ng via subprocess, or a no-op engine
// when nothing is installed), a Player sends it to the audio device through
// oto, and Service ties them together with an ordered utterance queue and a
// cache of synthesized clips.
