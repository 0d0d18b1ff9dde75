package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wwh5441/handwriteA4/layout"
)

func TestParseHeadingsAndParagraphs(t *testing.T) {
	input := `# 人工智能年度报告

## 第一章 概述

人工智能技术在过去一年取得了显著进展。
大模型的推理能力持续提升。

第二段独立成块。
`
	blocks, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	assert.Equal(t, layout.Heading1, blocks[0].Kind)
	assert.Equal(t, "人工智能年度报告", blocks[0].Text)

	assert.Equal(t, layout.Heading2, blocks[1].Kind)
	assert.Equal(t, "第一章 概述", blocks[1].Text)

	// 段内换行直接拼接，不引入空格
	assert.Equal(t, layout.Paragraph, blocks[2].Kind)
	assert.Equal(t, "人工智能技术在过去一年取得了显著进展。大模型的推理能力持续提升。", blocks[2].Text)

	assert.Equal(t, "第二段独立成块。", blocks[3].Text)
}

func TestParseRuleAndQuoteAreBoundaries(t *testing.T) {
	input := "前半段\n---\n后半段\n> 引用行不产出内容\n尾段"
	blocks, err := ParseString(input)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, "前半段", blocks[0].Text)
	assert.Equal(t, "后半段", blocks[1].Text)
	assert.Equal(t, "尾段", blocks[2].Text)
	for _, b := range blocks {
		assert.Equal(t, layout.Paragraph, b.Kind)
	}
}

func TestParseHashWithoutSpaceIsParagraph(t *testing.T) {
	blocks, err := ParseString("#无空格不是标题")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, layout.Paragraph, blocks[0].Kind)
	assert.Equal(t, "#无空格不是标题", blocks[0].Text)
}

func TestParseEmptyInput(t *testing.T) {
	for _, input := range []string{"", "\n\n\n", "   \n\t\n"} {
		blocks, err := ParseString(input)
		require.NoError(t, err)
		assert.Empty(t, blocks)
	}
}

func TestParseReader(t *testing.T) {
	blocks, err := Parse(strings.NewReader("# 标题\n正文"))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, layout.Heading1, blocks[0].Kind)
	assert.Equal(t, layout.Paragraph, blocks[1].Kind)
}

func TestParseEmptyHeadingSkipped(t *testing.T) {
	blocks, err := ParseString("# \n正文")
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, layout.Paragraph, blocks[0].Kind)
}
