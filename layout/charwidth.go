package layout

import (
	"unicode"

	xwidth "golang.org/x/text/width"
)

// 宽度模型：铺排阶段唯一的度量来源。手写字体按字符分类取固定宽度，
// 因此宽度严格可加，同样的输入必然得到同样的度量。

// WidthModel 依据 Config 的宽度表把字符映射为宽度。
type WidthModel struct {
	table map[CharCategory]float64
}

// NewWidthModel 拷贝配置中的宽度表，之后对 Config 的修改不影响已建模型。
func NewWidthModel(cfg *Config) *WidthModel {
	table := make(map[CharCategory]float64, len(cfg.WidthTable))
	for cat, w := range cfg.WidthTable {
		table[cat] = w
	}
	return &WidthModel{table: table}
}

// Classify 返回字符的宽度分类。
// 汉字与其它东亚全宽字母归入 CJK；全宽标点仍按标点计。
// 未命中任何分类的字符归入标点类（显式回退策略，永不失败）。
func Classify(r rune) CharCategory {
	switch {
	case unicode.Is(unicode.Han, r) || (isEastAsianWide(r) && unicode.IsLetter(r)):
		return CategoryCJK
	case unicode.Is(unicode.Latin, r):
		return CategoryLatin
	case unicode.IsDigit(r):
		return CategoryDigit
	case unicode.IsSpace(r):
		return CategorySpace
	default:
		return CategoryPunct
	}
}

func isEastAsianWide(r rune) bool {
	switch xwidth.LookupRune(r).Kind() {
	case xwidth.EastAsianWide, xwidth.EastAsianFullwidth:
		return true
	}
	return false
}

// RuneWidth 返回单个字符的宽度（px）。
func (m *WidthModel) RuneWidth(r rune) float64 {
	if w, ok := m.table[Classify(r)]; ok {
		return w
	}
	return m.table[CategoryPunct]
}

// TextWidth 返回整段文本的宽度，严格等于逐字符宽度之和。
func (m *WidthModel) TextWidth(s string) float64 {
	var total float64
	for _, r := range s {
		total += m.RuneWidth(r)
	}
	return total
}
