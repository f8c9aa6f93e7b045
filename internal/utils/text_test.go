package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 15))
	assert.Equal(t, "exactly fifteen", Truncate("exactly fifteen", 15))
	assert.Equal(t, "a text way long", Truncate("a text way longer than that", 15))
	assert.Equal(t, "Тестовый пост п", Truncate("Тестовый пост про осень", 15))
	assert.Equal(t, "", Truncate("", 15))
}

func TestStringToInt(t *testing.T) {
	assert.Equal(t, 3, StringToInt("3"))
	assert.Equal(t, -2, StringToInt("-2"))
	assert.Equal(t, 0, StringToInt(""))
	assert.Equal(t, 0, StringToInt("garbage"))
}

func TestRandString(t *testing.T) {
	a := RandString(8)
	b := RandString(8)
	assert.Len(t, a, 8)
	assert.Len(t, b, 8)
	assert.NotEqual(t, a, b)
}
