// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseExtensionString(t *testing.T) {
	set := ParseExtensionString("GL_KHR_debug  GL_EXT_buffer_storage\tGL_ARB_sync ")
	assert.Len(t, set, 3)
	assert.True(t, set.Has("GL_KHR_debug"))
	assert.True(t, set.Has("GL_ARB_sync"))
	assert.False(t, set.Has("GL_KHR"))
	assert.Equal(t, []string{"GL_ARB_sync", "GL_EXT_buffer_storage", "GL_KHR_debug"}, set.Sorted())
}

func TestExtensionSetOf(t *testing.T) {
	set := ExtensionSetOf("b", "", "a", "b")
	assert.Equal(t, []string{"a", "b"}, set.Sorted())
	assert.Empty(t, ParseExtensionString("").Sorted())
}
