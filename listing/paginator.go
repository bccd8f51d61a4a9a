package listing

import "propdesk/domain"

const DefaultPageSize = 5

// TotalPages is ceil(n/size), never less than one.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

func clampPage(index, pages int) int {
	if index < 1 {
		return 1
	}
	if index > pages {
		return pages
	}
	return index
}

// GetPage returns the 1-based page index of items. Indexes outside
// [1, TotalPages] are clamped to the nearest valid page.
func GetPage[T any](items []T, size, index int) []T {
	if size <= 0 {
		size = DefaultPageSize
	}
	index = clampPage(index, TotalPages(len(items), size))

	start := (index - 1) * size
	if start >= len(items) {
		return items[:0]
	}
	end := min(start+size, len(items))
	return items[start:end]
}

// Paginator walks a list page by page. Replacing the items or changing the
// page size always moves back to the first page.
type Paginator[T any] struct {
	items   []T
	size    int
	current int
}

func NewPaginator[T any](items []T, size int) *Paginator[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return &Paginator[T]{items: items, size: size, current: 1}
}

func (p *Paginator[T]) SetItems(items []T) {
	p.items = items
	p.current = 1
}

func (p *Paginator[T]) SetPageSize(size int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	p.size = size
	p.current = 1
}

func (p *Paginator[T]) TotalPages() int { return TotalPages(len(p.items), p.size) }

func (p *Paginator[T]) Current() int { return p.current }

func (p *Paginator[T]) PageSize() int { return p.size }

func (p *Paginator[T]) GoTo(index int) {
	p.current = clampPage(index, p.TotalPages())
}

func (p *Paginator[T]) Next()  { p.GoTo(p.current + 1) }
func (p *Paginator[T]) Prev()  { p.GoTo(p.current - 1) }
func (p *Paginator[T]) First() { p.current = 1 }
func (p *Paginator[T]) Last()  { p.current = p.TotalPages() }

func (p *Paginator[T]) Page() []T {
	return GetPage(p.items, p.size, p.current)
}

func (p *Paginator[T]) Meta() domain.PageMeta {
	pages := p.TotalPages()
	return domain.PageMeta{
		Page:       p.current,
		PageSize:   p.size,
		Total:      len(p.items),
		TotalPages: pages,
		HasNext:    p.current < pages,
		HasPrev:    p.current > 1,
	}
}
