package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var (
	errNotWAV         = errors.New("not a valid WAV file")
	errUnsupportedWAV = errors.New("unsupported WAV encoding")
)

// wavFormatPCM is the WAVE_FORMAT_PCM tag in the fmt chunk.
const wavFormatPCM = 1

// pcm is planar audio in [-1, 1].
type pcm struct {
	planes     [][]float64
	sampleRate int
	bitDepth   int
}

func (p *pcm) frames() int {
	if len(p.planes) == 0 {
		return 0
	}
	return len(p.planes[0])
}

func fullScale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}

func readWAV(path string) (*pcm, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: %w", path, errNotWAV)
	}

	if dec.WavAudioFormat != wavFormatPCM {
		return nil, fmt.Errorf("%s: %w: format tag %d, want integer PCM", path, errUnsupportedWAV, dec.WavAudioFormat)
	}
	if dec.BitDepth != 16 && dec.BitDepth != 24 {
		return nil, fmt.Errorf("%s: %w: %d-bit, want 16 or 24", path, errUnsupportedWAV, dec.BitDepth)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: decode: %w", path, err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 {
		return nil, fmt.Errorf("%s: %w: no channels", path, errNotWAV)
	}

	bitDepth := int(dec.BitDepth)
	scale := 1 / fullScale(bitDepth)
	frames := len(buf.Data) / channels

	planes := make([][]float64, channels)
	for ch := range planes {
		planes[ch] = make([]float64, frames)
		for i := range frames {
			planes[ch][i] = float64(buf.Data[i*channels+ch]) * scale
		}
	}

	return &pcm{planes: planes, sampleRate: int(dec.SampleRate), bitDepth: bitDepth}, nil
}

func writeWAV(path string, p *pcm) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	channels := len(p.planes)
	frames := p.frames()
	peak := fullScale(p.bitDepth)

	data := make([]int, frames*channels)
	for ch, plane := range p.planes {
		for i, v := range plane {
			s := math.Round(v * peak)
			data[i*channels+ch] = int(math.Max(-peak, math.Min(peak-1, s)))
		}
	}

	enc := wav.NewEncoder(f, p.sampleRate, p.bitDepth, channels, 1)
	err = enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: p.sampleRate},
		Data:           data,
		SourceBitDepth: p.bitDepth,
	})
	if err == nil {
		err = enc.Close()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("%s: encode: %w", path, err)
	}
	return nil
}
