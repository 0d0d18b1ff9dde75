package layout

import "fmt"

// Compose 是包的主入口：校验配置后做一次单向遍历，按输入顺序铺排
// 全部内容块并完成分页。过程是纯函数式的：同样的 (blocks, cfg)
// 必然产出逐字节相同的结果，不同输入上的并发调用互不干扰。
func Compose(blocks []ContentBlock, cfg *Config) (*Result, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	composer := NewLineComposer(cfg)
	assembler := NewPageAssembler(cfg)
	for i, block := range blocks {
		records, err := composer.ComposeBlock(block)
		if err != nil {
			return nil, fmt.Errorf("第 %d 个内容块铺排失败: %w", i+1, err)
		}
		for _, rec := range records {
			assembler.Place(rec)
		}
	}
	return &Result{Pages: assembler.Finish()}, nil
}
