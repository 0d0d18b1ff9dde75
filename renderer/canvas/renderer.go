package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"sync"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/wwh5441/handwriteA4/layout"
)

// Canvas 渲染器：在行槽网格上逐行绘制分页结果。
// 页面几何来自 Config（CSS px），canvas 边界统一换算为 mm。

const (
	headerFontPt = 12
	footerFontPt = 10

	bodyColor   = "#333333"
	headerColor = "#666666"
	footerColor = "#999999"
)

// Options 配置字体来源与文档信息。字体必须由调用方提供：
// Bytes 优先，否则读 Path。
type Options struct {
	FontPath   string
	FontBytes  []byte
	Title      string
	HeaderText string
}

type Renderer struct {
	cfg  *layout.Config
	opts Options
	// 两端对齐时按引擎宽度模型推进游标，保证视觉宽度与铺排结果一致。
	widths *layout.WidthModel

	fontMu sync.Mutex
	family *canvas.FontFamily
}

func NewRenderer(cfg *layout.Config, opts Options) *Renderer {
	if cfg == nil {
		cfg = layout.DefaultConfig()
	}
	return &Renderer{cfg: cfg, opts: opts, widths: layout.NewWidthModel(cfg)}
}

// Render 把全部页面渲染为一个 PDF 字节切片。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("铺排结果为空")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("缺少可渲染的页面")
	}

	pageW := layout.PxToMM(r.cfg.PageWidth)
	pageH := layout.PxToMM(r.cfg.PageHeight)

	var buf bytes.Buffer
	writer := pdf.New(&buf, pageW, pageH, nil)
	writer.SetInfo(r.opts.Title, "", "", "", "handwriteA4")
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(pageW, pageH)
		}
		c, err := r.renderPage(page, len(result.Pages))
		if err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPagePNG 把指定页（0 基）栅格化为 PNG，分辨率与 CSS 像素一一对应。
func (r *Renderer) RenderPagePNG(result *layout.Result, pageIndex int) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("铺排结果为空")
	}
	if pageIndex < 0 || pageIndex >= len(result.Pages) {
		return nil, fmt.Errorf("页索引越界: %d (共 %d 页)", pageIndex, len(result.Pages))
	}
	c, err := r.renderPage(result.Pages[pageIndex], len(result.Pages))
	if err != nil {
		return nil, err
	}
	img := rasterizer.Draw(c, canvas.DPMM(layout.PxPerMm), canvas.DefaultColorSpace)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("编码 PNG 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) renderPage(page layout.Page, totalPages int) (*canvas.Canvas, error) {
	pageW := layout.PxToMM(r.cfg.PageWidth)
	pageH := layout.PxToMM(r.cfg.PageHeight)
	c := canvas.New(pageW, pageH)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 左上角为原点，与版面坐标一致

	ctx.SetFillColor(canvas.White)
	ctx.DrawPath(0, 0, canvas.Rectangle(pageW, pageH))

	bodyFace, err := r.face(r.cfg.FontSizePt, bodyColor)
	if err != nil {
		return nil, err
	}
	titleFace, err := r.face(r.cfg.FontSizePt, r.cfg.TitleColor)
	if err != nil {
		return nil, err
	}

	if r.opts.HeaderText != "" {
		headerFace, err := r.face(headerFontPt, headerColor)
		if err != nil {
			return nil, err
		}
		top := layout.PxToMM(r.cfg.MarginTop - 40)
		baseline := top + (layout.PxToMM(r.cfg.HeaderHeight)+headerFace.Metrics().CapHeight)/2
		ctx.DrawText(pageW/2, baseline, canvas.NewTextLine(headerFace, r.opts.HeaderText, canvas.Center))
	}

	for _, rec := range page.Lines {
		face := bodyFace
		if rec.Role == layout.MainTitle || rec.Role == layout.SectionTitle {
			face = titleFace
		}
		r.drawLine(ctx, face, rec)
	}

	footerFace, err := r.face(footerFontPt, footerColor)
	if err != nil {
		return nil, err
	}
	footerText := fmt.Sprintf("第 %d 页 | 共 %d 页", page.PageNumber, totalPages)
	footerTop := layout.PxToMM(r.cfg.PageHeight - (r.cfg.MarginBottom - 40) - r.cfg.FooterHeight)
	baseline := footerTop + (layout.PxToMM(r.cfg.FooterHeight)+footerFace.Metrics().CapHeight)/2
	ctx.DrawText(pageW/2, baseline, canvas.NewTextLine(footerFace, footerText, canvas.Center))

	return c, nil
}

// drawLine 在行槽内垂直居中绘制一行；两端对齐的行逐单元推进游标。
func (r *Renderer) drawLine(ctx *canvas.Context, face *canvas.FontFace, rec layout.LineRecord) {
	top := layout.PxToMM(slotTopPx(r.cfg, rec))
	slotH := layout.PxToMM(float64(rec.SlotWeight) * r.cfg.LineHeight)
	baseline := top + (slotH+face.Metrics().CapHeight)/2
	x := layout.PxToMM(r.cfg.MarginLeft + rec.Indent)

	if !rec.Justified {
		ctx.DrawText(x, baseline, canvas.NewTextLine(face, rec.Text, canvas.Left))
		return
	}
	extra := layout.PxToMM(rec.ExtraSpacing)
	units := layout.SplitUnits(rec.Text)
	cursor := x
	for i, u := range units {
		ctx.DrawText(cursor, baseline, canvas.NewTextLine(face, u.Text, canvas.Left))
		cursor += layout.PxToMM(r.widths.TextWidth(u.Text))
		if i < len(units)-1 {
			cursor += extra
		}
	}
}

// slotTopPx 返回记录首个行槽的页内顶边（px）。
func slotTopPx(cfg *layout.Config, rec layout.LineRecord) float64 {
	return cfg.MarginTop + float64(rec.LineNo-1)*cfg.LineHeight
}

func (r *Renderer) face(sizePt float64, hex string) (*canvas.FontFace, error) {
	family, err := r.ensureFamily()
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, canvas.Hex(hex), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFamily() (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	if r.family != nil {
		return r.family, nil
	}
	data := r.opts.FontBytes
	if len(data) == 0 {
		if r.opts.FontPath == "" {
			return nil, fmt.Errorf("缺少字体：请通过 Options.FontBytes 或 Options.FontPath 提供")
		}
		b, err := os.ReadFile(r.opts.FontPath)
		if err != nil {
			return nil, fmt.Errorf("读取字体 %s 失败: %w", r.opts.FontPath, err)
		}
		data = b
	}
	family := canvas.NewFontFamily("handwrite-body")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("加载字体失败: %w", err)
	}
	r.family = family
	return family, nil
}
