package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCacheKey(t *testing.T) {
	key := GenerateCacheKey("quiz", "detail", "quiz1")
	assert.Equal(t, "learnhub:quiz:detail:quiz1", key)

	key = GenerateCacheKey("quiz", "list", "instructor1", "with_deleted")
	assert.Equal(t, "learnhub:quiz:list:instructor1:with_deleted", key)

	key = GenerateCacheKey("quiz", "list", "all", "page1", "size20")
	assert.Equal(t, "learnhub:quiz:list:all:page1_size20", key)
}
