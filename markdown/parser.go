package markdown

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/wwh5441/handwriteA4/layout"
)

// Markdown 子集解析器：逐行切词后折叠为内容块。
// 支持 `# ` 一级标题、`## ` 二级标题与空行分隔的段落；
// 分隔线与引用行只作为段落边界，不产出内容块。

var (
	mdLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n`},
		{Name: "H2", Pattern: `##[ \t]+[^\n]*`},
		{Name: "H1", Pattern: `#[ \t]+[^\n]*`},
		{Name: "Rule", Pattern: `-{3,}[^\n]*`},
		{Name: "Quote", Pattern: `>[^\n]*`},
		{Name: "Line", Pattern: `[^\n]+`},
	})

	docParser = participle.MustBuild[document](
		participle.Lexer(mdLexer),
		participle.Elide("Whitespace"),
	)
)

// document 是逐行的解析结果，块级折叠在 assemble 中完成。
type document struct {
	Lines []sourceLine `parser:"@@*"`
}

type sourceLine struct {
	H1    *string `parser:"  @H1 Newline?"`
	H2    *string `parser:"| @H2 Newline?"`
	Rule  *string `parser:"| @Rule Newline?"`
	Quote *string `parser:"| @Quote Newline?"`
	Text  *string `parser:"| @Line Newline?"`
	Blank bool    `parser:"| @Newline"`
}

// Parse 从 r 读取 Markdown 文本并解析为内容块序列。
func Parse(r io.Reader) ([]layout.ContentBlock, error) {
	doc, err := docParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("解析 Markdown 失败: %w", err)
	}
	return assemble(doc), nil
}

// ParseString 是 Parse 的字符串便捷入口。
func ParseString(input string) ([]layout.ContentBlock, error) {
	doc, err := docParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("解析 Markdown 失败: %w", err)
	}
	return assemble(doc), nil
}

// assemble 把逐行结果折叠为内容块：标题独立成块，连续文本行合并为段落，
// 空行、分隔线与引用行都会触发段落缓冲落盘。
func assemble(doc *document) []layout.ContentBlock {
	var blocks []layout.ContentBlock
	var buf strings.Builder
	flush := func() {
		text := strings.TrimSpace(buf.String())
		buf.Reset()
		if text != "" {
			blocks = append(blocks, layout.ContentBlock{Kind: layout.Paragraph, Text: text})
		}
	}
	for _, line := range doc.Lines {
		switch {
		case line.H1 != nil:
			flush()
			if text := headingText(*line.H1); text != "" {
				blocks = append(blocks, layout.ContentBlock{Kind: layout.Heading1, Text: text})
			}
		case line.H2 != nil:
			flush()
			if text := headingText(*line.H2); text != "" {
				blocks = append(blocks, layout.ContentBlock{Kind: layout.Heading2, Text: text})
			}
		case line.Rule != nil, line.Quote != nil, line.Blank:
			flush()
		case line.Text != nil:
			// 段内换行不引入分隔符，中文行拼接后不应出现多余空格。
			buf.WriteString(strings.TrimSpace(*line.Text))
		}
	}
	flush()
	return blocks
}

func headingText(token string) string {
	return strings.TrimSpace(strings.TrimLeft(token, "#"))
}
