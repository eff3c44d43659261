package dictionary

import "strings"

// Entry 是词典中的一条记录：单词 -> 符号
type Entry struct {
	Word   string `json:"word" yaml:"word"`
	Symbol string `json:"symbol" yaml:"symbol"`
}

// Dictionary 是保持插入顺序的 单词 -> 符号 映射，单词不区分大小写。
// 覆盖已有单词时保留其原来的位置（拼写和符号以最后一次为准），新单词追加到末尾。
type Dictionary struct {
	entries []Entry
	index   map[string]int // 小写单词 -> entries 下标
}

func key(word string) string {
	return strings.ToLower(word)
}

// New 按给定顺序构建词典，重复的单词以最后一次为准
func New(entries ...Entry) *Dictionary {
	d := &Dictionary{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		d.Set(e.Word, e.Symbol)
	}
	return d
}

// Set 插入或覆盖一条记录
func (d *Dictionary) Set(word, symbol string) {
	if d.index == nil {
		d.index = make(map[string]int)
	}
	k := key(word)
	if i, ok := d.index[k]; ok {
		d.entries[i] = Entry{Word: word, Symbol: symbol}
		return
	}
	d.index[k] = len(d.entries)
	d.entries = append(d.entries, Entry{Word: word, Symbol: symbol})
}

// Delete 删除单词，不存在时什么也不做。返回是否删除了记录。
func (d *Dictionary) Delete(word string) bool {
	k := key(word)
	i, ok := d.index[k]
	if !ok {
		return false
	}
	d.entries = append(d.entries[:i], d.entries[i+1:]...)
	delete(d.index, k)
	for j := i; j < len(d.entries); j++ {
		d.index[key(d.entries[j].Word)] = j
	}
	return true
}

// Get 返回单词对应的符号
func (d *Dictionary) Get(word string) (string, bool) {
	i, ok := d.index[key(word)]
	if !ok {
		return "", false
	}
	return d.entries[i].Symbol, true
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Entries 按插入顺序返回记录的副本
func (d *Dictionary) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)
	return out
}

// Words 按插入顺序返回所有单词
func (d *Dictionary) Words() []string {
	words := make([]string, 0, len(d.entries))
	for _, e := range d.entries {
		words = append(words, e.Word)
	}
	return words
}

// Merge 将 entries 依次覆盖到词典上
func (d *Dictionary) Merge(entries ...Entry) {
	for _, e := range entries {
		d.Set(e.Word, e.Symbol)
	}
}

// Clone 返回一个独立的副本
func (d *Dictionary) Clone() *Dictionary {
	return New(d.entries...)
}

// Map 返回普通 map 形式的副本（不保留顺序）
func (d *Dictionary) Map() map[string]string {
	m := make(map[string]string, len(d.entries))
	for _, e := range d.entries {
		m[e.Word] = e.Symbol
	}
	return m
}
