// SPDX-License-Identifier: Unlicense OR MIT

//go:build !js

package gl

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandleZeroValue(t *testing.T) {
	assert.False(t, Buffer{}.Valid())
	assert.False(t, Texture{}.Valid())
	assert.False(t, Fence{}.Valid())
	assert.True(t, Buffer{V: 1}.Valid())
	assert.True(t, UniformLocation{}.Valid(), "location 0 is a valid uniform")
	assert.False(t, UniformLocation{V: -1}.Valid())
}

func TestHandleMapKeyAndOrder(t *testing.T) {
	m := map[Texture]string{{V: 2}: "b", {V: 1}: "a"}
	assert.Equal(t, "a", m[Texture{V: 1}])

	texs := []Texture{{V: 5}, {V: 1}, {V: 3}}
	sort.Slice(texs, func(i, j int) bool { return texs[i].Compare(texs[j]) < 0 })
	assert.Equal(t, []Texture{{V: 1}, {V: 3}, {V: 5}}, texs)
	assert.Equal(t, 0, Fence{V: 0x10}.Compare(Fence{V: 0x10}))
	assert.Equal(t, "7", Program{V: 7}.String())
}
