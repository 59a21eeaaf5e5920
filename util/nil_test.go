package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type nilTester interface {
	Value() int
}

type nilTesterImpl struct{}

func (*nilTesterImpl) Value() int { return 1 }

func TestIsNil(t *testing.T) {
	var typed *nilTesterImpl

	var iface nilTester = typed

	var m map[string]int

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(typed))
	assert.True(t, IsNil(iface))
	assert.True(t, IsNil(m))

	assert.False(t, IsNil(&nilTesterImpl{}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
	assert.False(t, IsNil(map[string]int{}))
}
