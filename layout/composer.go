package layout

import (
	"strings"
	"unicode"
)

// 铺排核心：把单个内容块的文本按三档容差贪心填充为若干 LineRecord。
// 整个过程只向前看一个单元，不做全局优化，以换取逐字节可复现的结果。

// UnitKind 标识一个铺排单元的种类。
type UnitKind int

const (
	UnitCJK UnitKind = iota
	UnitWord
	UnitPunct
	UnitSpace
)

// Unit 是不可再分的铺排单元：一个汉字、一个连续英文/数字词，
// 或单个标点/空白字符。渲染器做两端对齐时复用同一切分。
type Unit struct {
	Text string
	Kind UnitKind
}

// SplitUnits 把文本切分为铺排单元序列。
func SplitUnits(text string) []Unit {
	var units []Unit
	var word []rune
	flush := func() {
		if len(word) > 0 {
			units = append(units, Unit{Text: string(word), Kind: UnitWord})
			word = word[:0]
		}
	}
	for _, r := range text {
		switch Classify(r) {
		case CategoryCJK:
			flush()
			units = append(units, Unit{Text: string(r), Kind: UnitCJK})
		case CategoryLatin, CategoryDigit:
			word = append(word, r)
		case CategorySpace:
			flush()
			units = append(units, Unit{Text: string(r), Kind: UnitSpace})
		default:
			flush()
			units = append(units, Unit{Text: string(r), Kind: UnitPunct})
		}
	}
	flush()
	return units
}

// 标题行占两个行槽（72px 行盒 = 2×36px 行槽）。
const headingSlotWeight = 2

// 短于该长度的英文词不做连字符拆分。
const minHyphenWordLen = 6

// 行首禁则字符集：这些闭合标点不允许出现在行首。
const closingPuncts = ".,;:!?)]}，。；：！？）】》、"

func isClosingPunct(r rune) bool {
	return strings.ContainsRune(closingPuncts, r)
}

// LineComposer 把内容块铺排为行记录，自身无状态，可跨块复用。
type LineComposer struct {
	cfg    *Config
	widths *WidthModel
}

func NewLineComposer(cfg *Config) *LineComposer {
	return &LineComposer{cfg: cfg, widths: NewWidthModel(cfg)}
}

// ComposeBlock 把一个内容块铺排为零或多个行记录。
// 空文本返回零条记录；未知块类型返回 ValidationError，不做任何宽度计算。
func (lc *LineComposer) ComposeBlock(block ContentBlock) ([]LineRecord, error) {
	switch block.Kind {
	case Heading1, Heading2:
		return lc.composeHeading(block), nil
	case Paragraph:
		return lc.composeParagraph(block), nil
	default:
		return nil, validationErrorf("未知的内容块类型: %q", block.Kind)
	}
}

func (lc *LineComposer) composeHeading(block ContentBlock) []LineRecord {
	role := MainTitle
	if block.Kind == Heading2 {
		role = SectionTitle
	}
	maxWidth := lc.cfg.TextAreaWidth
	var records []LineRecord
	remaining := strings.TrimSpace(block.Text)
	for remaining != "" {
		lineText, rest := lc.fillLine(remaining, maxWidth)
		if strings.TrimSpace(lineText) == "" {
			break
		}
		w := lc.widths.TextWidth(lineText)
		records = append(records, LineRecord{
			Text:        lineText,
			Role:        role,
			Width:       w,
			Utilization: w / maxWidth,
			SlotWeight:  headingSlotWeight,
		})
		remaining = rest
	}
	return records
}

func (lc *LineComposer) composeParagraph(block ContentBlock) []LineRecord {
	var records []LineRecord
	remaining := strings.TrimSpace(block.Text)
	isFirst := true
	for remaining != "" {
		indent := 0.0
		if isFirst {
			indent = lc.cfg.ParagraphIndent
		}
		maxWidth := lc.cfg.TextAreaWidth - indent
		lineText, rest := lc.fillLine(remaining, maxWidth)
		if strings.TrimSpace(lineText) == "" && strings.TrimSpace(rest) == "" {
			break
		}

		role := ParagraphContinue
		switch {
		case rest == "":
			// 段落末行：保持左对齐的自然参差，单行段落也落在这里。
			role = ParagraphLast
		case isFirst:
			role = ParagraphFirst
		}

		w := lc.widths.TextWidth(lineText)
		rec := LineRecord{
			Text:        lineText,
			Role:        role,
			Width:       w,
			Utilization: w / maxWidth,
			Indent:      indent,
			SlotWeight:  1,
		}
		if role != ParagraphLast {
			lc.justify(&rec, maxWidth)
		}
		records = append(records, rec)
		remaining = rest
		isFirst = false
	}
	return records
}

// justify 为非末行正文行计算两端对齐信息：把可用宽度与自然宽度的差额
// 平摊到单元间隙。软溢出行的差额为负，渲染时会被压回可用宽度。
func (lc *LineComposer) justify(rec *LineRecord, maxWidth float64) {
	if rec.Utilization < lc.cfg.JustifyMinUtilization {
		return
	}
	gaps := len(SplitUnits(rec.Text)) - 1
	if gaps <= 0 {
		return
	}
	rec.Justified = true
	rec.ExtraSpacing = (maxWidth - rec.Width) / float64(gaps)
}

// fillLine 以三档容差贪心填充一行，返回本行文本与剩余文本（已去除行首空白）。
// 只要输入非空就保证至少消费一个单元，必要时在单元内部按字符强拆。
func (lc *LineComposer) fillLine(text string, maxWidth float64) (string, string) {
	units := SplitUnits(text)
	if len(units) == 0 {
		return "", ""
	}
	base := maxWidth * lc.cfg.BaseThreshold
	soft := maxWidth * lc.cfg.SoftOverflowTolerance
	hard := maxWidth * lc.cfg.WordBreakTolerance

	var line strings.Builder
	lineWidth := 0.0
	idx := 0
	for idx < len(units) {
		u := units[idx]
		uw := lc.widths.TextWidth(u.Text)
		candidate := lineWidth + uw

		if candidate <= base {
			line.WriteString(u.Text)
			lineWidth = candidate
			idx++
			continue
		}
		if candidate <= soft {
			// 软溢出档：行已"将满未满"，收下比留出明显空洞更自然。
			line.WriteString(u.Text)
			lineWidth = candidate
			idx++
			continue
		}
		if u.Kind == UnitWord && candidate <= hard {
			if head, rest := lc.hyphenate(u.Text, maxWidth-lineWidth); head != "" {
				line.WriteString(head)
				units[idx].Text = rest
				break
			}
		}
		if line.Len() == 0 {
			// 行首单元无论多宽都必须推进。
			if uw > hard {
				head, rest := forceBreakRunes(u.Text, maxWidth, lc.widths)
				line.WriteString(head)
				units[idx].Text = rest
				break
			}
			line.WriteString(u.Text)
			idx++
		}
		break
	}

	lineText := line.String()
	rest := joinUnits(units[idx:])
	lineText, rest = pullBackClosingPunct(lineText, rest)
	return lineText, strings.TrimLeftFunc(rest, unicode.IsSpace)
}

// hyphenate 尝试把长英文词拆出能放进剩余宽度的前段并补连字符。
// 词长不超过 minHyphenWordLen、或拆出的前后段任一不足 2 个字符时放弃。
func (lc *LineComposer) hyphenate(word string, available float64) (head, rest string) {
	runes := []rune(word)
	if len(runes) <= minHyphenWordLen {
		return "", ""
	}
	for i := len(runes) - 2; i >= 2; i-- {
		h := string(runes[:i]) + "-"
		if lc.widths.TextWidth(h) <= available {
			return h, string(runes[i:])
		}
	}
	return "", ""
}

// forceBreakRunes 对独占一行仍超过拆词上限的单元按字符强拆，至少取一个字符。
func forceBreakRunes(token string, maxWidth float64, m *WidthModel) (head, rest string) {
	runes := []rune(token)
	width := 0.0
	cut := 0
	for i, r := range runes {
		rw := m.RuneWidth(r)
		if cut > 0 && width+rw > maxWidth {
			break
		}
		width += rw
		cut = i + 1
	}
	return string(runes[:cut]), string(runes[cut:])
}

// pullBackClosingPunct 执行行首禁则：下一行不得以闭合标点开头，
// 把本行最后一个非标点字符移到下一行行首。整行只剩一个可移字符时放弃，保证推进。
func pullBackClosingPunct(lineText, rest string) (string, string) {
	if rest == "" {
		return lineText, rest
	}
	first, _ := firstRune(rest)
	if !isClosingPunct(first) {
		return lineText, rest
	}
	runes := []rune(lineText)
	for i := len(runes) - 1; i > 0; i-- {
		r := runes[i]
		if !isClosingPunct(r) && !unicode.IsSpace(r) {
			return string(runes[:i]) + string(runes[i+1:]), string(r) + rest
		}
	}
	return lineText, rest
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

func joinUnits(units []Unit) string {
	var b strings.Builder
	for _, u := range units {
		b.WriteString(u.Text)
	}
	return b.String()
}
