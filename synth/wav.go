package synth

import (
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/pkg/errors"
)

const bitDepth = 16

// WriteWav encodes mono samples in [-1, 1] as 16-bit PCM. Samples outside
// that range are clipped.
func WriteWav(w io.WriteSeeker, samples []float64, sampleRate int) error {
	peak := float64(int(1)<<(bitDepth-1) - 1)
	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(math.Max(-1, math.Min(1, s)) * peak))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return errors.Wrap(err, "encoding wav")
	}
	return enc.Close()
}

func WriteWavFile(path string, samples []float64, sampleRate int) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating wav file")
	}
	defer f.Close()

	if err := WriteWav(f, samples, sampleRate); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return f.Close()
}
