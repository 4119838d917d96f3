package audio

import (
	"math"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/marbles/parameter"
)

// ClickGenerator produces an exponentially decaying sine burst
type ClickGenerator struct {
	sr     beep.SampleRate
	volume float64
	pos    int
}

// NewClickGenerator creates a click at the given peak amplitude
func NewClickGenerator(sr beep.SampleRate, volume float64) *ClickGenerator {
	return &ClickGenerator{
		sr:     sr,
		volume: volume,
	}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		v := g.volume * math.Exp(-parameter.ClickDecay*t) * math.Sin(2*math.Pi*parameter.ClickFrequency*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}
