package layout

import "fmt"

// 该文件定义铺排输入与输出的数据结构，供铺排计算、渲染与调试 JSON 共用。

// BlockKind 标识内容块类型，取值与上游 Markdown 解析结果保持一致。
type BlockKind string

const (
	Heading1  BlockKind = "h1"
	Heading2  BlockKind = "h2"
	Paragraph BlockKind = "paragraph"
)

// ContentBlock 是上游解析器产出的零件箱：一段待铺排的文本及其类型。
// Metadata 对引擎完全透明，只做透传。
type ContentBlock struct {
	Kind     BlockKind         `json:"kind"`
	Text     string            `json:"text"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// LineRole 标识一行在其内容块中的结构角色，同时是渲染样式的依据。
type LineRole string

const (
	MainTitle         LineRole = "main-title"
	SectionTitle      LineRole = "section-title"
	ParagraphFirst    LineRole = "paragraph-first"
	ParagraphContinue LineRole = "paragraph-continue"
	ParagraphLast     LineRole = "paragraph-last"
)

// LineRecord 表示铺排后的一行文本及其度量信息，宽度单位均为 CSS px。
type LineRecord struct {
	Text string   `json:"text"`
	Role LineRole `json:"role"`
	// Width 是按宽度表累加出的自然宽度；Utilization = Width / 本行可用宽度。
	Width       float64 `json:"width"`
	Utilization float64 `json:"utilization"`
	// Indent 是本行的首行缩进（px），独立字段，不由角色推断。
	Indent float64 `json:"indent,omitempty"`
	// SlotWeight 是该行占用的行槽数：标题行为 2，正文行为 1。
	SlotWeight int `json:"slotWeight"`
	// Justified 表示本行需要两端对齐；ExtraSpacing 是分摊到每个单元间隙的
	// 额外间距（px），可为负（轻微软溢出的行会被压回可用宽度）。
	Justified    bool    `json:"justified,omitempty"`
	ExtraSpacing float64 `json:"extraSpacing,omitempty"`
	// LineNo 与 LineLabel 由分页阶段回填：本行首个行槽的页内序号，
	// 以及行号显示文本（正文 "7"，两槽标题 "7+8"）。
	LineNo    int    `json:"lineNo,omitempty"`
	LineLabel string `json:"lineLabel,omitempty"`
}

// Page 记录单页装入的行与行槽占用情况。
type Page struct {
	Lines      []LineRecord `json:"lines"`
	PageNumber int          `json:"pageNumber"`
	LineCount  int          `json:"lineCount"`
	// Remaining 是封页时剩余的行槽数（按槽计，标题占 2 槽）。
	Remaining int `json:"remaining"`
}

// Result 保存整篇文档铺排后的页面序列。
type Result struct {
	Pages []Page `json:"pages"`
}

// ValidationError 表示配置或输入在任何宽度计算开始前即被拒绝。
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationErrorf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
