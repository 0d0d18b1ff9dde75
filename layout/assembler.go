package layout

import (
	"fmt"
	"strconv"
)

// 分页器：把铺排出的行记录流装入容量受限的页面。
// 容量按行槽计：正文行占 1 槽，标题行占 2 槽且绝不跨页拆分。

type PageAssembler struct {
	cfg       *Config
	pages     []Page
	current   []LineRecord
	pageNo    int
	slotsUsed int
}

func NewPageAssembler(cfg *Config) *PageAssembler {
	return &PageAssembler{cfg: cfg, pageNo: 1}
}

// Place 把一行放入当前页；剩余行槽不足以整体容纳时先封页再开新页。
// 行的页内槽号与行号标签在此回填。
func (pa *PageAssembler) Place(rec LineRecord) {
	weight := rec.SlotWeight
	if weight <= 0 {
		weight = 1
	}
	if pa.slotsUsed+weight > pa.cfg.CapacityFor(pa.pageNo) && len(pa.current) > 0 {
		pa.closePage()
	}
	rec.LineNo = pa.slotsUsed + 1
	if weight == headingSlotWeight {
		rec.LineLabel = fmt.Sprintf("%d+%d", rec.LineNo, rec.LineNo+1)
	} else {
		rec.LineLabel = strconv.Itoa(rec.LineNo)
	}
	pa.current = append(pa.current, rec)
	pa.slotsUsed += weight
}

// Finish 封存最后一页（即使未填满）并返回全部页面。
// 没有任何行时返回零页，不产出空页。
func (pa *PageAssembler) Finish() []Page {
	if len(pa.current) > 0 {
		pa.closePage()
	}
	return pa.pages
}

func (pa *PageAssembler) closePage() {
	capacity := pa.cfg.CapacityFor(pa.pageNo)
	pa.pages = append(pa.pages, Page{
		Lines:      pa.current,
		PageNumber: pa.pageNo,
		LineCount:  len(pa.current),
		Remaining:  capacity - pa.slotsUsed,
	})
	pa.current = nil
	pa.slotsUsed = 0
	pa.pageNo++
}
