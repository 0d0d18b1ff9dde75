package layout

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 把铺排结果落盘为缩进 JSON，便于核对行槽与分页结果。
func WriteDebugJSON(res *Result, path string) error {
	if res == nil || path == "" {
		return nil
	}
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
