package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	assert.Equal(t,
		"interviewprep:question:generated:behavioral",
		GenerateCacheKey("question", "generated", "behavioral"))

	assert.Equal(t,
		"interviewprep:question:generated:behavioral:medium_goroutines",
		GenerateCacheKey("question", "generated", "behavioral", "medium", "goroutines"))
}
