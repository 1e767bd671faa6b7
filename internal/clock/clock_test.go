package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemReturnsUTC(t *testing.T) {
	now := System{}.Now()
	assert.Equal(t, time.UTC, now.Location())
}

func TestFixedAlwaysReturnsSameInstant(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	c := Fixed{T: at}

	assert.True(t, c.Now().Equal(at))
	assert.True(t, c.Now().Equal(c.Now()))
}
