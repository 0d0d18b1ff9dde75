package layout

import "testing"

// newTestConfig 返回便于口算的测试版面：可用宽度 100，汉字宽 10，其余 5。
func newTestConfig() *Config {
	cfg := DefaultConfig()
	cfg.TextAreaWidth = 100
	cfg.ParagraphIndent = 20
	cfg.WidthTable = map[CharCategory]float64{
		CategoryCJK:   10,
		CategoryLatin: 5,
		CategoryDigit: 5,
		CategoryPunct: 5,
		CategorySpace: 5,
	}
	return cfg
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func TestClassifyCategories(t *testing.T) {
	cases := []struct {
		r    rune
		want CharCategory
	}{
		{'中', CategoryCJK},
		{'あ', CategoryCJK}, // 东亚全宽假名同样按全宽字计
		{'a', CategoryLatin},
		{'Z', CategoryLatin},
		{'7', CategoryDigit},
		{' ', CategorySpace},
		{'\t', CategorySpace},
		{',', CategoryPunct},
		{'。', CategoryPunct}, // 全宽标点仍是标点
		{'∑', CategoryPunct}, // 未命中分类回退到标点
	}
	for _, c := range cases {
		if got := Classify(c.r); got != c.want {
			t.Fatalf("字符 %q 分类错误: got=%q want=%q", c.r, got, c.want)
		}
	}
}

// TestTextWidthAdditivity 断言：TextWidth(s) == Σ RuneWidth(r)。
func TestTextWidthAdditivity(t *testing.T) {
	m := NewWidthModel(newTestConfig())
	samples := []string{
		"人工智能2026年report",
		"Hello, 世界。",
		"",
		"a中b中c",
	}
	for _, s := range samples {
		sum := 0.0
		for _, r := range s {
			sum += m.RuneWidth(r)
		}
		if got := m.TextWidth(s); absf(got-sum) > 1e-9 {
			t.Fatalf("宽度可加性不成立: %q got=%g want=%g", s, got, sum)
		}
	}
}

func TestWidthModelCopiesTable(t *testing.T) {
	cfg := newTestConfig()
	m := NewWidthModel(cfg)
	cfg.WidthTable[CategoryCJK] = 999
	if got := m.RuneWidth('中'); got != 10 {
		t.Fatalf("宽度模型未隔离配置表的后续修改: got=%g want=10", got)
	}
}

func TestRuneWidthFallback(t *testing.T) {
	m := NewWidthModel(newTestConfig())
	if got := m.RuneWidth('∑'); got != 5 {
		t.Fatalf("未知字符应取标点宽度: got=%g want=5", got)
	}
}
