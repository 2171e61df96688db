package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateETag(t *testing.T) {
	at := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	a := GenerateETag("id-1", at)
	assert.Equal(t, a, GenerateETag("id-1", at), "same inputs must be stable")
	assert.NotEqual(t, a, GenerateETag("id-2", at))
	assert.NotEqual(t, a, GenerateETag("id-1", at.Add(time.Second)))

	assert.True(t, len(a) > 2 && a[0] == '"' && a[len(a)-1] == '"', "etag must be quoted")
}
