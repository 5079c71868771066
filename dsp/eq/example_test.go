package eq_test

import (
	"fmt"

	"github.com/cwbudde/algo-eq/dsp/core"
	"github.com/cwbudde/algo-eq/dsp/eq"
	"github.com/sirupsen/logrus"
)

func ExampleEngine() {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)

	e := eq.New(eq.WithBands(1), eq.WithSmoothingTime(0), eq.WithLogger(logger))
	if err := e.Prepare(core.ProcessorConfig{SampleRate: 48000, MaxBlockSize: 256, Channels: 2}); err != nil {
		panic(err)
	}

	_ = e.SetParameter(eq.BandParam(0, eq.RoleFrequency), 1000)
	_ = e.SetParameter(eq.BandParam(0, eq.RoleGain), 6)

	buf := [][]float64{make([]float64, 256), make([]float64, 256)}
	if err := e.ProcessBlock(buf); err != nil {
		panic(err)
	}

	fmt.Printf("1 kHz: %+.1f dB\n", e.MagnitudeDB(1000))
	// Output:
	// 1 kHz: +6.0 dB
}

func ExampleParseParamID() {
	id, err := eq.ParseParamID("band3.gain")
	if err != nil {
		panic(err)
	}
	fmt.Println(id.Band, id.Role, id)
	// Output:
	// 3 gain band3.gain
}
