package dictionary

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/yleoer/emoji/pkg/util"
)

// ErrInvalidDictionary 表示词典文件内容不是 字符串 -> 字符串 的映射
var ErrInvalidDictionary = errors.New("invalid dictionary")

// Load 读取 YAML 或 JSON 格式的词典文件，按文件中的顺序返回记录
func Load(path string) ([]Entry, error) {
	content, err := util.ReadTextFileContent(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}
	entries, err := Parse([]byte(content))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return entries, nil
}

// Parse 解析词典内容。JSON 是 YAML 的子集，所以两种格式都走同一个解析器。
func Parse(data []byte) ([]Entry, error) {
	var doc yaml.MapSlice
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDictionary, err)
	}
	entries := make([]Entry, 0, len(doc))
	for _, item := range doc {
		word, ok := item.Key.(string)
		if !ok {
			return nil, fmt.Errorf("%w: key %v is not a string", ErrInvalidDictionary, item.Key)
		}
		symbol, ok := item.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: symbol for %q is not a string", ErrInvalidDictionary, word)
		}
		entries = append(entries, Entry{Word: word, Symbol: symbol})
	}
	return entries, nil
}
