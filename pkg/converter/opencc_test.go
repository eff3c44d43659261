package converter

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpenCCConverter_Uninitialized(t *testing.T) {
	var buf bytes.Buffer
	c := &openCCConverter{logger: log.New(&buf, "", 0)}

	assert.Equal(t, "這是繁體", c.Convert("這是繁體"))
	assert.Contains(t, buf.String(), "WARN: OpenCC converter not initialized")

	// 作为 Chain 的第一环时原文继续交给 emoji 转换
	assert.Equal(t, "le 🐱", Chain{c, NewEmojiConverter()}.Convert("le chat"))
}
