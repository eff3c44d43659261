package dictionary

// defaultEntries 内置词典，顺序即替换顺序，不要随意调整
var defaultEntries = []Entry{
	{Word: "coeur", Symbol: "❤️"},
	{Word: "amour", Symbol: "💕"},
	{Word: "chat", Symbol: "🐱"},
	{Word: "chien", Symbol: "🐶"},
	{Word: "soleil", Symbol: "☀️"},
	{Word: "lune", Symbol: "🌙"},
	{Word: "eau", Symbol: "💧"},
	{Word: "feu", Symbol: "🔥"},
	{Word: "terre", Symbol: "🌍"},
}

// Defaults 返回内置词典的一个新副本
func Defaults() *Dictionary {
	return New(defaultEntries...)
}

// DefaultEntries 返回内置词典记录的副本
func DefaultEntries() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}
