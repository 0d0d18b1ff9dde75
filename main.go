package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"

	"github.com/wwh5441/handwriteA4/binding"
	"github.com/wwh5441/handwriteA4/layout"
	"github.com/wwh5441/handwriteA4/markdown"
	canvasrenderer "github.com/wwh5441/handwriteA4/renderer/canvas"
	htmlrenderer "github.com/wwh5441/handwriteA4/renderer/html"
)

// 总装线入口：Markdown → 数据绑定 → 铺排分页 → HTML/PDF/PNG。

type cliOptions struct {
	input      string
	htmlOut    string
	pdfOut     string
	pngOut     string
	fontPath   string
	debugPath  string
	dataJSON   string
	title      string
	headerText string
	debugPanel bool
}

func main() {
	var opts cliOptions
	flag.StringVar(&opts.input, "in", "report.md", "Markdown 输入路径")
	flag.StringVar(&opts.htmlOut, "out", "output/report.html", "HTML 输出路径")
	flag.StringVar(&opts.pdfOut, "pdf", "", "PDF 输出路径（需要 -font）")
	flag.StringVar(&opts.pngOut, "png", "", "首页 PNG 输出路径（需要 -font）")
	flag.StringVar(&opts.fontPath, "font", "", "TTF/OTF 字体路径，供 PDF/PNG 渲染使用")
	flag.StringVar(&opts.debugPath, "debug", "", "铺排调试 JSON 输出路径")
	flag.StringVar(&opts.dataJSON, "data", "", "绑定到正文占位符的 JSON 数据")
	flag.StringVar(&opts.title, "title", "A4自动分页文档", "文档标题")
	flag.StringVar(&opts.headerText, "header", "", "页眉文字")
	flag.BoolVar(&opts.debugPanel, "debug-panel", false, "在 HTML 中显示调试信息面板")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("总装线失败: %v", err)
	}
}

// run 串联解析、绑定、铺排与渲染。
func run(opts cliOptions) error {
	file, err := os.Open(opts.input)
	if err != nil {
		return fmt.Errorf("无法打开 Markdown 文件 %s: %w", opts.input, err)
	}
	defer file.Close()

	blocks, err := markdown.Parse(file)
	if err != nil {
		return err
	}
	log.WithField("blocks", len(blocks)).Info("Markdown 解析完成")

	if opts.dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(opts.dataJSON), &data); err != nil {
			return fmt.Errorf("解析 data JSON 失败: %w", err)
		}
		blocks = binding.Apply(blocks, data)
	}

	cfg := layout.DefaultConfig()
	result, err := layout.Compose(blocks, cfg)
	if err != nil {
		return fmt.Errorf("铺排失败: %w", err)
	}
	totalLines := 0
	for _, page := range result.Pages {
		totalLines += page.LineCount
	}
	log.WithFields(log.Fields{"pages": len(result.Pages), "lines": totalLines}).Info("铺排分页完成")

	if opts.debugPath != "" {
		if err := writeOutput(opts.debugPath, nil); err != nil {
			return err
		}
		if err := layout.WriteDebugJSON(result, opts.debugPath); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}

	if opts.htmlOut != "" {
		html := htmlrenderer.New(cfg, htmlrenderer.Options{
			Title:         opts.title,
			HeaderText:    opts.headerText,
			ShowDebugInfo: opts.debugPanel,
		})
		data, err := html.Render(result)
		if err != nil {
			return err
		}
		if err := writeOutput(opts.htmlOut, data); err != nil {
			return err
		}
		log.WithField("path", opts.htmlOut).Info("已生成 HTML")
	}

	if opts.pdfOut != "" || opts.pngOut != "" {
		if opts.fontPath == "" {
			return fmt.Errorf("PDF/PNG 输出需要通过 -font 提供字体")
		}
		cr := canvasrenderer.NewRenderer(cfg, canvasrenderer.Options{
			FontPath:   opts.fontPath,
			Title:      opts.title,
			HeaderText: opts.headerText,
		})
		if opts.pdfOut != "" {
			data, err := cr.Render(result)
			if err != nil {
				return err
			}
			if err := writeOutput(opts.pdfOut, data); err != nil {
				return err
			}
			log.WithField("path", opts.pdfOut).Info("已生成 PDF")
		}
		if opts.pngOut != "" {
			data, err := cr.RenderPagePNG(result, 0)
			if err != nil {
				return err
			}
			if err := writeOutput(opts.pngOut, data); err != nil {
				return err
			}
			log.WithField("path", opts.pngOut).Info("已生成首页 PNG")
		}
	}
	return nil
}

// writeOutput 确保目录存在后写文件；data 为 nil 时只建目录。
func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("创建输出目录失败: %w", err)
		}
	}
	if data == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", path, err)
	}
	return nil
}
