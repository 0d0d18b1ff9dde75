package htmlrenderer

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/wwh5441/handwriteA4/layout"
)

// HTML 渲染器：把分页结果装入 A4 页面容器。
// 每行一个 div，角色映射为样式类，行号写入 data-line 属性。

// Options 控制文档级外观，零值可用。
type Options struct {
	Title           string
	HeaderText      string
	ShowDebugInfo   bool
	ShowPageBorders bool
}

type Renderer struct {
	cfg  *layout.Config
	opts Options
}

func New(cfg *layout.Config, opts Options) *Renderer {
	if cfg == nil {
		cfg = layout.DefaultConfig()
	}
	if opts.Title == "" {
		opts.Title = "A4自动分页文档"
	}
	return &Renderer{cfg: cfg, opts: opts}
}

type documentView struct {
	Title      string
	HeaderText string
	Styles     template.CSS
	Debug      *debugView
	Pages      []pageView
	TotalPages int
}

type debugView struct {
	PageSize        string
	TextArea        string
	Margins         string
	Font            string
	LineHeight      string
	FirstPageLines  int
	NormalPageLines int
}

type pageView struct {
	Number int
	Lines  []lineView
}

type lineView struct {
	Class string
	Label string
	Text  string
	Style template.HTMLAttr
}

var documentTemplate = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="zh-CN">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>{{.Styles}}</style>
</head>
<body>
{{- with .Debug}}
    <div class="debug-info">
        <strong>A4页面容器信息</strong><br>
        页面尺寸: {{.PageSize}}<br>
        文字区域: {{.TextArea}}<br>
        页面边距: {{.Margins}}<br>
        字体设置: {{.Font}}<br>
        行高: {{.LineHeight}}<br>
        第一页: {{.FirstPageLines}}行<br>
        普通页: {{.NormalPageLines}}行
    </div>
{{- end}}
{{- range .Pages}}
    <div class="page">
        <div class="page-header">{{$.HeaderText}}</div>
        <div class="text-area">
{{- range .Lines}}
            <div class="{{.Class}}"{{.Style}} data-line="{{.Label}}">{{.Text}}</div>
{{- end}}
        </div>
        <div class="page-footer">第 {{.Number}} 页 | 共 {{$.TotalPages}} 页 | {{$.Title}}</div>
    </div>
{{- end}}
</body>
</html>
`))

// Render 生成完整的自包含 HTML 文档。
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("铺排结果为空")
	}
	view := documentView{
		Title:      r.opts.Title,
		HeaderText: r.opts.HeaderText,
		Styles:     template.CSS(r.styles()),
		TotalPages: len(result.Pages),
	}
	if r.opts.ShowDebugInfo {
		view.Debug = r.debugInfo()
	}
	for _, page := range result.Pages {
		pv := pageView{Number: page.PageNumber}
		for _, rec := range page.Lines {
			lv := lineView{
				Class: cssClass(rec.Role),
				Label: rec.LineLabel,
				Text:  rec.Text,
			}
			// 单行段落取末行样式类，缩进由记录字段补回。
			if rec.Indent > 0 && rec.Role == layout.ParagraphLast {
				lv.Style = template.HTMLAttr(fmt.Sprintf(" style=%q", fmt.Sprintf("text-indent:%gpx", rec.Indent)))
			}
			pv.Lines = append(pv.Lines, lv)
		}
		view.Pages = append(view.Pages, pv)
	}
	var buf bytes.Buffer
	if err := documentTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("渲染 HTML 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func cssClass(role layout.LineRole) string {
	switch role {
	case layout.MainTitle:
		return "bt1"
	case layout.SectionTitle:
		return "bt2"
	case layout.ParagraphFirst:
		return "zw1"
	case layout.ParagraphContinue:
		return "zw2"
	default:
		return "zw3"
	}
}

func (r *Renderer) debugInfo() *debugView {
	cfg := r.cfg
	return &debugView{
		PageSize:        fmt.Sprintf("%g×%gpx", cfg.PageWidth, cfg.PageHeight),
		TextArea:        fmt.Sprintf("%g×%gpx", cfg.TextAreaWidth, cfg.TextAreaHeight),
		Margins:         fmt.Sprintf("上下%gpx, 左右%gpx", cfg.MarginTop, cfg.MarginLeft),
		Font:            fmt.Sprintf("%gpt %s", cfg.FontSizePt, cfg.FontFamily),
		LineHeight:      fmt.Sprintf("%gpx", cfg.LineHeight),
		FirstPageLines:  cfg.FirstPageLines,
		NormalPageLines: cfg.NormalPageLines,
	}
}

// styles 生成页面容器样式，标题行高 = 2 个行槽。
func (r *Renderer) styles() string {
	cfg := r.cfg
	border := "none"
	if r.opts.ShowPageBorders {
		border = "1px dashed #ccc"
	}
	headingHeight := 2 * cfg.LineHeight
	return fmt.Sprintf(`
* { margin: 0; padding: 0; box-sizing: border-box; }

body {
    font-family: %[1]s;
    font-size: %[2]gpt;
    line-height: %[3]gpx;
    background-color: #f0f0f0;
    padding: 20px;
    color: #333;
}

.page {
    width: %[4]gpx;
    height: %[5]gpx;
    background-color: white;
    margin: 0 auto 20px auto;
    box-shadow: 0 4px 8px rgba(0,0,0,0.1);
    position: relative;
    page-break-after: always;
}

.text-area {
    position: absolute;
    left: %[6]gpx;
    top: %[7]gpx;
    width: %[8]gpx;
    height: %[9]gpx;
    font-size: %[2]gpt;
    line-height: %[3]gpx;
    font-weight: normal;
    border: %[10]s;
}

.page-header {
    position: absolute;
    top: %[11]gpx;
    left: %[6]gpx;
    right: %[12]gpx;
    height: %[13]gpx;
    text-align: center;
    font-size: 12pt;
    color: #666;
    line-height: %[13]gpx;
}

.page-footer {
    position: absolute;
    bottom: %[14]gpx;
    left: %[6]gpx;
    right: %[12]gpx;
    height: %[15]gpx;
    text-align: center;
    font-size: 10pt;
    color: #999;
    line-height: %[15]gpx;
}

.bt1, .bt2 {
    font-weight: bold;
    color: %[16]s;
    height: %[17]gpx;
    line-height: %[17]gpx;
    text-align: left !important;
    text-align-last: left !important;
}

.zw1, .zw2, .zw3 {
    font-weight: normal;
    height: %[3]gpx;
    line-height: %[3]gpx;
    text-align: justify;
    text-align-last: justify;
    word-spacing: 0.1em;
    letter-spacing: 0.02em;
}

.zw1 { text-indent: %[18]gpx; }

.zw2 { text-indent: 0; }

.zw3 {
    text-indent: 0;
    text-align: left !important;
    text-align-last: left !important;
    word-spacing: normal;
    letter-spacing: normal;
}

.debug-info {
    position: fixed;
    top: 10px;
    right: 10px;
    background: rgba(0,0,0,0.9);
    color: white;
    padding: 15px;
    border-radius: 8px;
    font-size: 11px;
    z-index: 1000;
    max-width: 300px;
}

@media print {
    body { background: white; padding: 0; }
    .page { margin: 0; box-shadow: none; page-break-after: always; }
    .text-area { border: none; }
    .debug-info { display: none; }
}
`,
		cfg.FontFamily,         // 1
		cfg.FontSizePt,         // 2
		cfg.LineHeight,         // 3
		cfg.PageWidth,          // 4
		cfg.PageHeight,         // 5
		cfg.MarginLeft,         // 6
		cfg.MarginTop,          // 7
		cfg.TextAreaWidth,      // 8
		cfg.TextAreaHeight,     // 9
		border,                 // 10
		cfg.MarginTop-40,       // 11
		cfg.MarginRight,        // 12
		cfg.HeaderHeight,       // 13
		cfg.MarginBottom-40,    // 14
		cfg.FooterHeight,       // 15
		cfg.TitleColor,         // 16
		headingHeight,          // 17
		cfg.ParagraphIndent,    // 18
	)
}
