package canvasrenderer

import (
	"strings"
	"testing"

	"github.com/wwh5441/handwriteA4/layout"
)

func TestSlotTopPositions(t *testing.T) {
	cfg := layout.DefaultConfig()
	cases := []struct {
		lineNo int
		want   float64
	}{
		{1, 71},       // 首槽紧贴上边距
		{2, 107},      // 71 + 36
		{3, 143},      // 两槽标题之后的正文行
		{27, 71 + 26*36},
	}
	for _, c := range cases {
		rec := layout.LineRecord{LineNo: c.lineNo, SlotWeight: 1}
		if got := slotTopPx(cfg, rec); got != c.want {
			t.Fatalf("行槽 %d 顶边错误: got=%g want=%g", c.lineNo, got, c.want)
		}
	}
}

func TestRenderRequiresFont(t *testing.T) {
	cfg := layout.DefaultConfig()
	result, err := layout.Compose([]layout.ContentBlock{{Kind: layout.Paragraph, Text: "正文"}}, cfg)
	if err != nil {
		t.Fatalf("铺排失败: %v", err)
	}
	r := NewRenderer(cfg, Options{})
	if _, err := r.Render(result); err == nil || !strings.Contains(err.Error(), "字体") {
		t.Fatalf("未提供字体应报错, 实际: %v", err)
	}
	if _, err := r.RenderPagePNG(result, 0); err == nil {
		t.Fatalf("未提供字体时 PNG 渲染也应报错")
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	r := NewRenderer(layout.DefaultConfig(), Options{})
	if _, err := r.Render(nil); err == nil {
		t.Fatalf("空结果应报错")
	}
	if _, err := r.Render(&layout.Result{}); err == nil {
		t.Fatalf("零页结果应报错")
	}
	if _, err := r.RenderPagePNG(&layout.Result{Pages: []layout.Page{{PageNumber: 1}}}, 5); err == nil {
		t.Fatalf("页索引越界应报错")
	}
}
