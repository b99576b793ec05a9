package helpers

import (
	"errors"
	"fmt"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestIsCacheMiss(t *testing.T) {
	assert.True(t, isCacheMiss(redis.Nil))
	assert.True(t, isCacheMiss(fmt.Errorf("get featured: %w", redis.Nil)))
	assert.False(t, isCacheMiss(errors.New("connection refused")))
	assert.False(t, isCacheMiss(nil))
}
