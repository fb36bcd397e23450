// internal/report/paginate.go
package report

// Page is one realized page of blocks after pagination.
type Page struct {
	Blocks []Block
}

// Paginate lays blocks onto pages against a fixed vertical budget, moving a
// running cursor down each page. A block never straddles a page boundary:
// when its height exceeds the remaining space the block opens a fresh page.
// A block taller than the whole budget still gets a page of its own. When a
// table breaks across pages its header row is re-emitted so no page opens
// with orphaned data rows.
func Paginate(blocks []Block, budget float64) []Page {
	pages := []Page{}
	var current Page
	used := 0.0
	var openTable *TableHead

	flush := func() {
		if len(current.Blocks) > 0 {
			pages = append(pages, current)
			current = Page{}
			used = 0
		}
	}

	for _, b := range blocks {
		switch blk := b.(type) {
		case PageBreak:
			flush()
			continue
		case TableHead:
			head := blk
			openTable = &head
		case TableRow, Spacer:
		default:
			openTable = nil
		}

		h := b.Height()
		if used+h > budget && len(current.Blocks) > 0 {
			flush()
			if _, isRow := b.(TableRow); isRow && openTable != nil {
				current.Blocks = append(current.Blocks, *openTable)
				used += openTable.Height()
			}
		}
		current.Blocks = append(current.Blocks, b)
		used += h
	}
	flush()

	if len(pages) == 0 {
		pages = append(pages, Page{})
	}
	return pages
}
