package client

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"sync"
)

// Page is the standardized result of a paginated endpoint wrapper. The
// backend is inconsistent about returning totals, so HasMore is
// synthesized from len(data) == pageSize whenever totalPages is absent.
type Page[T any] struct {
	Data     []T  `json:"data"`
	Page     int  `json:"page"`
	PageSize int  `json:"pageSize"`
	HasMore  bool `json:"hasMore"`
}

// pagedBody is the wire shape: a data array plus, per endpoint, an
// optional total-pages field.
type pagedBody[T any] struct {
	Data       []T `json:"data"`
	TotalPages int `json:"totalPages,omitempty"`
}

func newPage[T any](body pagedBody[T], pageNo, pageSize int) Page[T] {
	hasMore := len(body.Data) == pageSize && pageSize > 0
	if body.TotalPages > 0 {
		hasMore = pageNo < body.TotalPages
	}
	return Page[T]{
		Data:     body.Data,
		Page:     pageNo,
		PageSize: pageSize,
		HasMore:  hasMore,
	}
}

func emptyPage[T any](pageNo, pageSize int) Page[T] {
	return Page[T]{Data: []T{}, Page: pageNo, PageSize: pageSize}
}

// GetPage fetches one page from a GET list endpoint using the pageNo /
// pageSize query convention. A 404 means "empty result" on list
// endpoints, not an error; every other non-2xx propagates.
func GetPage[T any](ctx context.Context, c *Client, path string, pageNo, pageSize int, extra url.Values) (Page[T], error) {
	query := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			query.Add(k, v)
		}
	}
	query.Set("pageNo", strconv.Itoa(pageNo))
	query.Set("pageSize", strconv.Itoa(pageSize))

	var body pagedBody[T]
	if err := c.Get(ctx, path, query, &body); err != nil {
		if IsNotFound(err) {
			return emptyPage[T](pageNo, pageSize), nil
		}
		return Page[T]{}, err
	}
	return newPage(body, pageNo, pageSize), nil
}

// PostPage fetches one page from a POST list endpoint whose filter body
// carries the page coordinates itself (donor search and similar). Same
// 404-as-empty contract as GetPage.
func PostPage[T any](ctx context.Context, c *Client, path string, filter any, pageNo, pageSize int) (Page[T], error) {
	var body pagedBody[T]
	if err := c.PostJSON(ctx, path, filter, &body); err != nil {
		if IsNotFound(err) {
			return emptyPage[T](pageNo, pageSize), nil
		}
		return Page[T]{}, err
	}
	return newPage(body, pageNo, pageSize), nil
}

// Accumulator collects pages keyed by their requested page number, so a
// fast page-2 response landing before a slow page-1 response still yields
// page-ordered items. Screens that append on arrival order instead get
// shuffled lists; keying on the page number is the guard.
type Accumulator[T any] struct {
	mu    sync.Mutex
	pages map[int]Page[T]
}

func NewAccumulator[T any]() *Accumulator[T] {
	return &Accumulator[T]{pages: make(map[int]Page[T])}
}

// Add records a resolved page, replacing any earlier result for the same
// page number (a refresh of page 1 overwrites stale data).
func (a *Accumulator[T]) Add(p Page[T]) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.pages[p.Page] = p
}

// Items returns all accumulated items in ascending page order regardless
// of arrival order.
func (a *Accumulator[T]) Items() []T {
	a.mu.Lock()
	defer a.mu.Unlock()

	numbers := make([]int, 0, len(a.pages))
	for n := range a.pages {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var items []T
	for _, n := range numbers {
		items = append(items, a.pages[n].Data...)
	}
	return items
}

// EndReached reports whether the highest accumulated page said there is
// nothing further to fetch.
func (a *Accumulator[T]) EndReached() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	last := 0
	for n := range a.pages {
		if n > last {
			last = n
		}
	}
	if last == 0 {
		return false
	}
	return !a.pages[last].HasMore
}
