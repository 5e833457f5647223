package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHook(t *testing.T) {
	for _, name := range Supported() {
		t.Run(name, func(t *testing.T) {
			snippet, ok := Hook(name)
			assert.True(t, ok)
			assert.Contains(t, snippet, "termtrack")
		})
	}
}

func TestHook_UnknownShell(t *testing.T) {
	snippet, ok := Hook("powershell")
	assert.False(t, ok)
	assert.Empty(t, snippet)
}
