package ptr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTo(t *testing.T) {
	p := To("survival")
	assert.Equal(t, "survival", *p)

	a, b := To(1), To(1)
	assert.NotSame(t, a, b)
}

func TestInt(t *testing.T) {
	assert.Equal(t, 2048, *Int(2048))
}
