package converter

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type upperConverter struct{}

func (upperConverter) Convert(text string) string { return strings.ToUpper(text) }

func TestConvertTextToEmoji(t *testing.T) {
	out, err := ConvertTextToEmoji("Le soleil brille et mon coeur bat")
	require.NoError(t, err)
	assert.Equal(t, "Le ☀️ brille et mon ❤️ bat", out)

	for _, v := range []any{nil, 123} {
		_, err := ConvertTextToEmoji(v)
		assert.True(t, errors.Is(err, ErrInvalidInput))
	}
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.Equal(t, 9, Default().Len())
}

func TestChain(t *testing.T) {
	// 先转大写，emoji 转换忽略大小写所以仍然命中
	ch := Chain{upperConverter{}, NewEmojiConverter()}
	assert.Equal(t, "MON 🐱", ch.Convert("mon chat"))

	// 顺序反过来，emoji 先替换
	ch = Chain{NewEmojiConverter(), upperConverter{}}
	assert.Equal(t, "MON 🐱", ch.Convert("mon chat"))

	assert.Equal(t, "x", Chain{}.Convert("x"))
}

func TestInvalidInputError_Message(t *testing.T) {
	err := &InvalidInputError{Value: 42}
	assert.Equal(t, "text must be a string, got int", err.Error())
}
