package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	d := Defaults()
	assert.Equal(t, 9, d.Len())
	assert.Equal(t, []string{"coeur", "amour", "chat", "chien", "soleil", "lune", "eau", "feu", "terre"}, d.Words())

	symbol, ok := d.Get("chat")
	assert.True(t, ok)
	assert.Equal(t, "🐱", symbol)
	symbol, _ = d.Get("soleil")
	assert.Equal(t, "☀️", symbol)
	symbol, _ = d.Get("coeur")
	assert.Equal(t, "❤️", symbol)

	// 每次返回新副本
	d.Delete("chat")
	assert.Equal(t, 9, Defaults().Len())
}

func TestSet_OverwriteKeepsOrder(t *testing.T) {
	d := New(Entry{"a", "1"}, Entry{"b", "2"}, Entry{"c", "3"})
	d.Set("a", "10")
	d.Set("d", "4")
	assert.Equal(t, []Entry{{"a", "10"}, {"b", "2"}, {"c", "3"}, {"d", "4"}}, d.Entries())
}

func TestNew_DuplicatesLastWins(t *testing.T) {
	d := New(Entry{"a", "1"}, Entry{"b", "2"}, Entry{"a", "3"})
	assert.Equal(t, []Entry{{"a", "3"}, {"b", "2"}}, d.Entries())
}

func TestDelete(t *testing.T) {
	d := New(Entry{"a", "1"}, Entry{"b", "2"}, Entry{"c", "3"})
	assert.True(t, d.Delete("a"))
	assert.False(t, d.Delete("a"))
	assert.Equal(t, []string{"b", "c"}, d.Words())

	// 删除后下标要同步更新
	d.Set("c", "30")
	symbol, ok := d.Get("c")
	assert.True(t, ok)
	assert.Equal(t, "30", symbol)
	assert.Equal(t, []Entry{{"b", "2"}, {"c", "30"}}, d.Entries())

	_, ok = d.Get("a")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	d := Defaults()
	d.Merge(Entry{"hello", "👋"}, Entry{"chat", "🐈"})
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, "hello", d.Words()[9])
	symbol, _ := d.Get("chat")
	assert.Equal(t, "🐈", symbol)
	assert.Equal(t, "chat", d.Words()[2])
}

func TestClone_Independent(t *testing.T) {
	d := New(Entry{"a", "1"})
	c := d.Clone()
	c.Set("a", "2")
	c.Set("b", "3")
	symbol, _ := d.Get("a")
	assert.Equal(t, "1", symbol)
	assert.Equal(t, 1, d.Len())
}

func TestEntries_Copy(t *testing.T) {
	d := New(Entry{"a", "1"})
	entries := d.Entries()
	entries[0].Symbol = "x"
	symbol, _ := d.Get("a")
	assert.Equal(t, "1", symbol)

	m := d.Map()
	m["a"] = "y"
	symbol, _ = d.Get("a")
	assert.Equal(t, "1", symbol)
	assert.Equal(t, map[string]string{"a": "1"}, d.Map())
}

func TestZeroValue(t *testing.T) {
	var d Dictionary
	d.Set("a", "1")
	assert.Equal(t, 1, d.Len())
	assert.False(t, d.Delete("b"))
}

func TestCaseInsensitiveKeys(t *testing.T) {
	d := New(Entry{"Chat", "1"}, Entry{"b", "2"})
	d.Set("CHAT", "3")
	assert.Equal(t, []Entry{{"CHAT", "3"}, {"b", "2"}}, d.Entries())

	symbol, ok := d.Get("chat")
	assert.True(t, ok)
	assert.Equal(t, "3", symbol)

	assert.True(t, d.Delete("cHaT"))
	assert.Equal(t, []string{"b"}, d.Words())
	d.Set("B", "4")
	assert.Equal(t, []Entry{{"B", "4"}}, d.Entries())
}
