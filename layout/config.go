package layout

// CharCategory 是宽度表的键：每类字符在手写版面上占用一个固定宽度。
type CharCategory string

const (
	CategoryCJK   CharCategory = "cjk"
	CategoryLatin CharCategory = "latin"
	CategoryDigit CharCategory = "digit"
	CategoryPunct CharCategory = "punct"
	CategorySpace CharCategory = "space"
)

// Config 描述 A4 手写版面的几何与铺排参数，所有几何单位均为 CSS px。
// Config 在一次 Compose 期间只读共享，不会被引擎修改。
type Config struct {
	// A4 页面尺寸：210mm × 297mm 按 96dpi 折算。
	PageWidth  float64
	PageHeight float64

	MarginLeft   float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64

	// 文字区域：页宽减左右边距、页高减上下边距（页眉页脚另行占位）。
	TextAreaWidth  float64
	TextAreaHeight float64

	HeaderHeight float64
	FooterHeight float64

	FontSizePt float64
	FontFamily string
	// LineHeight 是一个行槽的高度；标题行占两个行槽。
	LineHeight float64

	// ParagraphIndent 是段首缩进（约 2em）。
	ParagraphIndent float64

	// 分页容量，按行槽计。首页页眉占位更多，容量略小。
	FirstPageLines  int
	NormalPageLines int

	// 三档填充容差，均为相对本行可用宽度的比例，要求单调不减：
	//   BaseThreshold        基准档，填到此线即视为"将满"；
	//   SoftOverflowTolerance 软溢出档，宁可轻微超宽也不留行尾空洞；
	//   WordBreakTolerance   拆词档，仅对英文长词生效。
	BaseThreshold         float64
	SoftOverflowTolerance float64
	WordBreakTolerance    float64

	// 利用率低于该阈值的行不做两端对齐，避免把将空的行硬拉满。
	JustifyMinUtilization float64

	TitleColor string

	// WidthTable 把字符分类映射到宽度（px），五类必须齐全。
	WidthTable map[CharCategory]float64
}

// DefaultConfig 返回标准 A4 手写报告版面。
func DefaultConfig() *Config {
	return &Config{
		PageWidth:  794,
		PageHeight: 1123,

		MarginLeft:   48,
		MarginTop:    71,
		MarginRight:  48,
		MarginBottom: 71,

		TextAreaWidth:  698,
		TextAreaHeight: 972,

		HeaderHeight: 30,
		FooterHeight: 30,

		FontSizePt: 15.9,
		FontFamily: `"Microsoft YaHei", "微软雅黑", sans-serif`,
		LineHeight: 36,

		ParagraphIndent: 43.6,

		FirstPageLines:  25,
		NormalPageLines: 27,

		BaseThreshold:         0.965,
		SoftOverflowTolerance: 1.01,
		WordBreakTolerance:    1.03,

		JustifyMinUtilization: 0.85,

		TitleColor: "#A60000",

		WidthTable: map[CharCategory]float64{
			CategoryCJK:   21.2,
			CategoryLatin: 10.2,
			CategoryDigit: 11.0,
			CategoryPunct: 10.6,
			CategorySpace: 5.3,
		},
	}
}

// CapacityFor 返回指定页码的行槽容量，首页与后续页可以不同。
func (c *Config) CapacityFor(pageNumber int) int {
	if pageNumber == 1 {
		return c.FirstPageLines
	}
	return c.NormalPageLines
}

// Validate 在铺排开始前做快速失败检查，任何问题都以 ValidationError 返回。
func (c *Config) Validate() error {
	if c.PageWidth <= 0 || c.PageHeight <= 0 {
		return validationErrorf("页面尺寸必须为正: %gx%g", c.PageWidth, c.PageHeight)
	}
	if c.TextAreaWidth <= 0 || c.TextAreaHeight <= 0 {
		return validationErrorf("文字区域尺寸必须为正: %gx%g", c.TextAreaWidth, c.TextAreaHeight)
	}
	if c.LineHeight <= 0 {
		return validationErrorf("行高必须为正: %g", c.LineHeight)
	}
	if c.FirstPageLines < 1 || c.NormalPageLines < 1 {
		return validationErrorf("页面行槽容量必须为正: 首页 %d, 普通页 %d", c.FirstPageLines, c.NormalPageLines)
	}
	if c.ParagraphIndent < 0 || c.ParagraphIndent >= c.TextAreaWidth {
		return validationErrorf("段首缩进超出文字区域: %g", c.ParagraphIndent)
	}
	if c.BaseThreshold <= 0 {
		return validationErrorf("基准填充阈值必须为正: %g", c.BaseThreshold)
	}
	if c.BaseThreshold > c.SoftOverflowTolerance || c.SoftOverflowTolerance > c.WordBreakTolerance {
		return validationErrorf("容差阶梯必须单调不减: %g/%g/%g",
			c.BaseThreshold, c.SoftOverflowTolerance, c.WordBreakTolerance)
	}
	if c.JustifyMinUtilization < 0 || c.JustifyMinUtilization > 1 {
		return validationErrorf("对齐利用率阈值必须在 [0,1] 内: %g", c.JustifyMinUtilization)
	}
	for _, cat := range []CharCategory{CategoryCJK, CategoryLatin, CategoryDigit, CategoryPunct, CategorySpace} {
		w, ok := c.WidthTable[cat]
		if !ok {
			return validationErrorf("宽度表缺少分类 %q", cat)
		}
		if w <= 0 {
			return validationErrorf("宽度表分类 %q 的宽度必须为正: %g", cat, w)
		}
	}
	return nil
}
