package layout

// 版面几何以 CSS px 表示，canvas 渲染边界使用 mm。
// 换算关系：1px = 1/96 英寸，1 英寸 = 25.4mm。

const (
	PxPerMm = 96.0 / 25.4
	MmPerPx = 25.4 / 96.0
)

// PxToMM 把 CSS px 换算为毫米。
func PxToMM(px float64) float64 { return px * MmPerPx }

// MMToPx 把毫米换算为 CSS px。
func MMToPx(mm float64) float64 { return mm * PxPerMm }
