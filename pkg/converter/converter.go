package converter

// TextConverter 定义文本转换器接口
type TextConverter interface {
	Convert(text string) string
}

// Chain 依次执行多个转换器
type Chain []TextConverter

func (ch Chain) Convert(text string) string {
	for _, c := range ch {
		text = c.Convert(text)
	}
	return text
}

var defaultConverter = NewEmojiConverter()

// Default 返回使用内置词典的全局转换器
func Default() *EmojiConverter {
	return defaultConverter
}

// ConvertTextToEmoji 使用全局转换器转换文本，非字符串输入返回 *InvalidInputError
func ConvertTextToEmoji(v any) (string, error) {
	return defaultConverter.ConvertValue(v)
}
