//go:build eqdebug

package eq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_PreconditionsPanicInDebug(t *testing.T) {
	assert.PanicsWithError(t, ErrNotPrepared.Error(), func() {
		_ = New().ProcessBlock([][]float64{{1}})
	})

	e, _ := newEngine(t, 64, 2)
	assert.PanicsWithError(t, ErrChannelMismatch.Error(), func() {
		_ = e.ProcessBlock([][]float64{{1}})
	})
}
