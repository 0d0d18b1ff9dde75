package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/wwh5441/handwriteA4/layout"
)

// 报告模板的数据绑定：铺排前把内容块文本中的 ${path.to.value}
// 占位符替换为 JSON 数据树中的值，路径支持 a.b[0].c 形式。

var exprPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Apply 对每个内容块的文本做占位符插值，返回新的切片，输入保持只读。
func Apply(blocks []layout.ContentBlock, data any) []layout.ContentBlock {
	if data == nil || len(blocks) == 0 {
		return blocks
	}
	out := make([]layout.ContentBlock, len(blocks))
	for i, block := range blocks {
		block.Text = Interpolate(block.Text, data)
		out[i] = block
	}
	return out
}

// Interpolate 将文本中的 ${path.to.value} 替换为 data 中的值。
// 若 data 为空或路径不存在，则保留原占位符，便于排查缺失字段。
func Interpolate(text string, data any) string {
	if data == nil || !strings.Contains(text, "${") {
		return text
	}
	return exprPattern.ReplaceAllStringFunc(text, func(match string) string {
		groups := exprPattern.FindStringSubmatch(match)
		if len(groups) < 2 {
			return match
		}
		path := strings.TrimSpace(groups[1])
		if path == "" {
			return match
		}
		if val, ok := lookup(data, path); ok {
			return fmt.Sprint(val)
		}
		return match
	})
}

// lookup 沿点号路径下钻，段内允许若干 [idx] 下标。
func lookup(data any, path string) (any, bool) {
	current := data
	for _, segment := range strings.Split(path, ".") {
		name, indexes := splitSegment(segment)
		if name != "" {
			node, ok := current.(map[string]any)
			if !ok {
				return nil, false
			}
			current, ok = node[name]
			if !ok {
				return nil, false
			}
		}
		for _, raw := range indexes {
			idx, err := strconv.Atoi(raw)
			if err != nil {
				return nil, false
			}
			list, ok := current.([]any)
			if !ok || idx < 0 || idx >= len(list) {
				return nil, false
			}
			current = list[idx]
		}
	}
	return current, true
}

func splitSegment(segment string) (string, []string) {
	i := strings.IndexByte(segment, '[')
	if i == -1 {
		return segment, nil
	}
	name := segment[:i]
	var indexes []string
	rest := segment[i:]
	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end == -1 {
			break
		}
		indexes = append(indexes, rest[1:end])
		rest = rest[end+1:]
	}
	return name, indexes
}
