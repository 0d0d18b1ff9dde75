package htmlrenderer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwh5441/handwriteA4/layout"
)

func renderDoc(t *testing.T, opts Options, blocks ...layout.ContentBlock) string {
	t.Helper()
	cfg := layout.DefaultConfig()
	result, err := layout.Compose(blocks, cfg)
	require.NoError(t, err)
	out, err := New(cfg, opts).Render(result)
	require.NoError(t, err)
	return string(out)
}

func TestRenderRolesToCSSClasses(t *testing.T) {
	html := renderDoc(t, Options{},
		layout.ContentBlock{Kind: layout.Heading1, Text: "年度报告"},
		layout.ContentBlock{Kind: layout.Heading2, Text: "第一章"},
		layout.ContentBlock{Kind: layout.Paragraph, Text: strings.Repeat("正文内容测试句子。", 12)},
	)
	assert.Contains(t, html, `class="bt1"`)
	assert.Contains(t, html, `class="bt2"`)
	assert.Contains(t, html, `class="zw1"`)
	assert.Contains(t, html, `class="zw2"`)
	assert.Contains(t, html, `class="zw3"`)
}

func TestRenderLineLabels(t *testing.T) {
	html := renderDoc(t, Options{},
		layout.ContentBlock{Kind: layout.Heading1, Text: "标题"},
		layout.ContentBlock{Kind: layout.Paragraph, Text: "第一段"},
	)
	// 标题占 1、2 两槽，其后正文落在第 3 槽
	assert.Contains(t, html, `data-line="1+2"`)
	assert.Contains(t, html, `data-line="3"`)
}

func TestRenderFooterAndTitle(t *testing.T) {
	html := renderDoc(t, Options{Title: "测试文档", HeaderText: "页眉文字"},
		layout.ContentBlock{Kind: layout.Paragraph, Text: "内容"},
	)
	assert.Contains(t, html, "<title>测试文档</title>")
	assert.Contains(t, html, "第 1 页 | 共 1 页 | 测试文档")
	assert.Contains(t, html, ">页眉文字</div>")
}

func TestRenderSingleLineParagraphKeepsIndent(t *testing.T) {
	html := renderDoc(t, Options{}, layout.ContentBlock{Kind: layout.Paragraph, Text: "短段落"})
	assert.Contains(t, html, `class="zw3" style="text-indent:43.6px"`)
}

func TestRenderEscapesText(t *testing.T) {
	html := renderDoc(t, Options{},
		layout.ContentBlock{Kind: layout.Paragraph, Text: "a<b&c"},
	)
	assert.NotContains(t, html, "a<b&c")
	assert.Contains(t, html, "a&lt;b&amp;c")
}

func TestRenderDebugPanelToggle(t *testing.T) {
	block := layout.ContentBlock{Kind: layout.Paragraph, Text: "内容"}
	withPanel := renderDoc(t, Options{ShowDebugInfo: true}, block)
	assert.Contains(t, withPanel, `class="debug-info"`)
	withoutPanel := renderDoc(t, Options{}, block)
	assert.NotContains(t, withoutPanel, `class="debug-info"`)
}

func TestRenderPageCount(t *testing.T) {
	// 每段 1 行共 30 槽，默认容量 25/27 应分 2 页
	blocks := make([]layout.ContentBlock, 30)
	for i := range blocks {
		blocks[i] = layout.ContentBlock{Kind: layout.Paragraph, Text: "段落"}
	}
	html := renderDoc(t, Options{}, blocks...)
	assert.Equal(t, 2, strings.Count(html, `class="page"`))
	assert.Contains(t, html, "第 2 页 | 共 2 页")
}
