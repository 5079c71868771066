//go:build !fastmath

package eq

import "github.com/cwbudde/algo-eq/dsp/core"

func amplitudeToDB(x float64) float64 {
	return core.LinearToDB(x)
}
