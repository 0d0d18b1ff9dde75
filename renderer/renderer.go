package renderer

import "github.com/wwh5441/handwriteA4/layout"

// Renderer 将铺排结果输出为最终文件，例如 HTML、PDF 或图像。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
