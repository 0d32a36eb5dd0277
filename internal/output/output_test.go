package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(true)
	assert.True(t, Verbose())

	SetVerbose(false)
	assert.False(t, Verbose())
}
