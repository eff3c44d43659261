package converter

import (
	"regexp"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/yleoer/emoji/pkg/dictionary"
)

// matcher 是词典中一条记录编译后的结果
type matcher struct {
	re     *regexp.Regexp // 空单词或非法 UTF-8 时为 nil，永远不匹配
	symbol string
}

// EmojiConverter 按词典把整词（忽略大小写）替换为对应的符号。
// 词典每次变更后立即重新编译全部 matcher，保证两者始终一致。
type EmojiConverter struct {
	mu       sync.RWMutex
	dict     *dictionary.Dictionary
	matchers []matcher
}

// NewEmojiConverter 以内置词典为基础，按顺序叠加 overrides 创建转换器
func NewEmojiConverter(overrides ...dictionary.Entry) *EmojiConverter {
	d := dictionary.Defaults()
	d.Merge(overrides...)
	return NewEmojiConverterFrom(d)
}

// NewEmojiConverterFrom 使用给定词典（不叠加内置词典）创建转换器，d 会被复制
func NewEmojiConverterFrom(d *dictionary.Dictionary) *EmojiConverter {
	c := &EmojiConverter{dict: d.Clone()}
	c.matchers = compileMatchers(c.dict)
	return c
}

// Convert 按词典顺序逐条替换，后面的记录作用于前面替换过的文本
func (c *EmojiConverter) Convert(text string) string {
	c.mu.RLock()
	matchers := c.matchers
	c.mu.RUnlock()

	for _, m := range matchers {
		text = m.replace(text)
	}
	return text
}

// ConvertValue 接受任意值，只有字符串才会被转换，其他类型返回 *InvalidInputError
func (c *EmojiConverter) ConvertValue(v any) (string, error) {
	switch text := v.(type) {
	case string:
		return c.Convert(text), nil
	case *string:
		if text != nil {
			return c.Convert(*text), nil
		}
	}
	return "", &InvalidInputError{Value: v}
}

// AddWord 添加或覆盖一个单词
func (c *EmojiConverter) AddWord(word, symbol string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.Set(word, symbol)
	c.matchers = compileMatchers(c.dict)
}

// RemoveWord 删除一个单词，单词不存在时不报错
func (c *EmojiConverter) RemoveWord(word string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dict.Delete(word)
	c.matchers = compileMatchers(c.dict)
}

// Replace 整体替换词典
func (c *EmojiConverter) Replace(d *dictionary.Dictionary) {
	dict := d.Clone()
	matchers := compileMatchers(dict)
	c.mu.Lock()
	c.dict, c.matchers = dict, matchers
	c.mu.Unlock()
}

// Dictionary 返回当前词典的副本，修改副本不影响转换器
func (c *EmojiConverter) Dictionary() *dictionary.Dictionary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Clone()
}

func (c *EmojiConverter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dict.Len()
}

func compileMatchers(d *dictionary.Dictionary) []matcher {
	entries := d.Entries()
	matchers := make([]matcher, 0, len(entries))
	for _, e := range entries {
		m := matcher{symbol: e.Symbol}
		// 非法 UTF-8 的单词无法编译，和空单词一样保留一个不生效的 matcher
		if e.Word != "" && utf8.ValidString(e.Word) {
			if re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(e.Word)); err == nil {
				m.re = re
			}
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func (m matcher) replace(text string) string {
	if m.re == nil {
		return text
	}
	var (
		b        strings.Builder
		last     int
		replaced bool
	)
	for pos := 0; pos < len(text); {
		loc := m.re.FindStringIndex(text[pos:])
		if loc == nil {
			break
		}
		start, end := pos+loc[0], pos+loc[1]
		if !isWholeWord(text, start, end) {
			// 从命中位置的下一个字符继续，避免漏掉重叠的命中
			_, size := utf8.DecodeRuneInString(text[start:])
			pos = start + size
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(m.symbol)
		last, pos, replaced = end, end, true
	}
	if !replaced {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}

// isWholeWord 检查 text[start:end] 两侧是否为字符串边界或非单词字符
func isWholeWord(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if isWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r)
}
