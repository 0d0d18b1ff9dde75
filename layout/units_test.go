package layout

import "testing"

func TestPxMmRoundTrip(t *testing.T) {
	for _, px := range []float64{0, 36, 43.6, 698, 794, 1123} {
		back := MMToPx(PxToMM(px))
		if absf(back-px) > 1e-9 {
			t.Fatalf("px↔mm 往返误差过大: %g -> %g", px, back)
		}
	}
}

// A4 页面 794×1123px 应换算回 210×297mm（96dpi 取整带来的亚毫米误差可接受）。
func TestA4PageInMm(t *testing.T) {
	if w := PxToMM(794); absf(w-210) > 0.2 {
		t.Fatalf("A4 宽度换算错误: got=%gmm", w)
	}
	if h := PxToMM(1123); absf(h-297) > 0.2 {
		t.Fatalf("A4 高度换算错误: got=%gmm", h)
	}
}
