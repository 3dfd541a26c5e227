package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	assert.Equal(t, "tech-news", Make("Tech News"))
	assert.Equal(t, "hello-world", Make("Hello, World!"))
	assert.Equal(t, "hello-world", Make("Hello World"))
	assert.Equal(t, "a-b-c", Make("  a   b---c  "))
	assert.Equal(t, "100-go-tips", Make("100% Go Tips"))
	assert.Equal(t, "", Make("!!!"))
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{
		"Tech News",
		"Hello, World!",
		"--Already--Slugged--",
		"Ünïcode Títle 42",
		"",
	}

	for _, in := range inputs {
		once := Make(in)
		assert.Equal(t, once, Make(once), "Make must be idempotent for %q", in)
	}
}
