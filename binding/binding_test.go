package binding

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwh5441/handwriteA4/layout"
)

func dataTree(t *testing.T, raw string) any {
	t.Helper()
	var data any
	require.NoError(t, json.Unmarshal([]byte(raw), &data))
	return data
}

func TestInterpolatePaths(t *testing.T) {
	data := dataTree(t, `{
		"report": {"year": 2026, "author": "研究部"},
		"chapters": [{"title": "概述"}, {"title": "展望"}]
	}`)

	assert.Equal(t, "2026年度报告", Interpolate("${report.year}年度报告", data))
	assert.Equal(t, "作者：研究部", Interpolate("作者：${report.author}", data))
	assert.Equal(t, "第二章 展望", Interpolate("第二章 ${chapters[1].title}", data))
}

func TestInterpolateMissingPathKeepsPlaceholder(t *testing.T) {
	data := dataTree(t, `{"a": {"b": 1}}`)
	assert.Equal(t, "${a.c}", Interpolate("${a.c}", data))
	assert.Equal(t, "${a.b[0]}", Interpolate("${a.b[0]}", data))
	assert.Equal(t, "原文", Interpolate("原文", nil))
}

func TestApplyLeavesInputUntouched(t *testing.T) {
	data := dataTree(t, `{"name": "甲方"}`)
	blocks := []layout.ContentBlock{
		{Kind: layout.Heading1, Text: "${name}报告"},
		{Kind: layout.Paragraph, Text: "无占位符"},
	}
	out := Apply(blocks, data)
	require.Len(t, out, 2)
	assert.Equal(t, "甲方报告", out[0].Text)
	assert.Equal(t, "无占位符", out[1].Text)
	// 原切片不被修改
	assert.Equal(t, "${name}报告", blocks[0].Text)
}

func TestApplyNilDataPassthrough(t *testing.T) {
	blocks := []layout.ContentBlock{{Kind: layout.Paragraph, Text: "${x}"}}
	assert.Equal(t, blocks, Apply(blocks, nil))
}
