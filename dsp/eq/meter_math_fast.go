//go:build fastmath

package eq

import "github.com/meko-christian/algo-approx"

// 20/ln(10)
const dbPerNeper = 8.685889638065036553

func amplitudeToDB(x float64) float64 {
	return dbPerNeper * approx.FastLog(x)
}
