package list

import (
	"context"
	"sync"

	"github.com/hrboard/notice-console/internal/api"
	"github.com/hrboard/notice-console/internal/dto"
	"github.com/hrboard/notice-console/internal/model"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// API is the slice of the client the controller needs.
type API interface {
	ListNotices(ctx context.Context, query dto.NoticeQuery) ([]model.Notice, *api.Pagination, error)
}

// Controller drives the notice list: filters, pagination, the current page
// of notices, and the selection set for bulk actions. Every filter change
// resets the page to 1 and refreshes; page navigation is clamped to the
// known page range.
type Controller struct {
	logger *zap.Logger
	api    API
	clock  clockwork.Clock

	mu            sync.Mutex
	targetFilter  string
	statusFilter  string
	searchFilter  string
	dateFilter    string
	page          int
	totalPages    int
	notices       []model.Notice
	selected      map[string]struct{}
	lastErr       error
	refreshSeq    uint64
	closed        bool
}

func New(logger *zap.Logger, api API, clock clockwork.Clock) *Controller {
	return &Controller{
		logger:     logger,
		api:        api,
		clock:      clock,
		page:       1,
		totalPages: 1,
		selected:   make(map[string]struct{}),
	}
}

// Close marks the controller as discarded. A response arriving after Close
// is never applied.
func (c *Controller) Close() {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

// Refresh queries the backend with the current filters and page, replacing
// the page contents and page count. The selection set is derived from the
// page, so it is cleared on every replacement. If another refresh starts
// before this one finishes, the earlier response is dropped.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.refreshSeq++
	seq := c.refreshSeq
	query := dto.NoticeQuery{
		Page:          c.page,
		Limit:         dto.DefaultPageSize,
		Target:        c.targetFilter,
		Status:        c.statusFilter,
		PublishedDate: c.dateFilter,
		Search:        c.searchFilter,
	}
	c.mu.Unlock()

	notices, pagination, err := c.api.ListNotices(ctx, query)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || seq != c.refreshSeq {
		return nil
	}
	if err != nil {
		c.logger.Sugar().Errorf("failed to fetch notices: %s", err.Error())
		c.lastErr = err
		return err
	}

	c.notices = notices
	c.totalPages = 1
	if pagination != nil && pagination.TotalPages > 0 {
		c.totalPages = pagination.TotalPages
	}
	c.selected = make(map[string]struct{})
	c.lastErr = nil
	return nil
}

// SetTargetFilter filters by recipient kind: dto.FilterTargetIndividual,
// dto.FilterTargetDepartment, or empty for all.
func (c *Controller) SetTargetFilter(ctx context.Context, target string) error {
	c.mu.Lock()
	c.targetFilter = target
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetStatusFilter filters by status: dto.FilterStatusPublished,
// dto.FilterStatusUnpublished, dto.FilterStatusDraft, or empty for all.
func (c *Controller) SetStatusFilter(ctx context.Context, status string) error {
	c.mu.Lock()
	c.statusFilter = status
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller) SetSearchFilter(ctx context.Context, search string) error {
	c.mu.Lock()
	c.searchFilter = search
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller) SetDateFilter(ctx context.Context, date string) error {
	c.mu.Lock()
	c.dateFilter = date
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetFilters replaces every filter at once without refreshing, for callers
// that set initial filters before the first fetch. Resets to page 1.
func (c *Controller) SetFilters(target, status, search, date string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.targetFilter = target
	c.statusFilter = status
	c.searchFilter = search
	c.dateFilter = date
	c.page = 1
}

// ResetFilters clears every filter, returns to the first page and refreshes.
func (c *Controller) ResetFilters(ctx context.Context) error {
	c.mu.Lock()
	c.targetFilter = ""
	c.statusFilter = ""
	c.searchFilter = ""
	c.dateFilter = ""
	c.page = 1
	c.mu.Unlock()
	return c.Refresh(ctx)
}

// SetPage navigates to the given page, clamped to [1, totalPages]. Asking
// for the page already shown is a no-op.
func (c *Controller) SetPage(ctx context.Context, page int) error {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	if page > c.totalPages {
		page = c.totalPages
	}
	if page == c.page {
		c.mu.Unlock()
		return nil
	}
	c.page = page
	c.mu.Unlock()
	return c.Refresh(ctx)
}

func (c *Controller) NextPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.page + 1
	c.mu.Unlock()
	return c.SetPage(ctx, page)
}

func (c *Controller) PrevPage(ctx context.Context) error {
	c.mu.Lock()
	page := c.page - 1
	c.mu.Unlock()
	return c.SetPage(ctx, page)
}

// SelectAll sets the selection to exactly the current page's notice IDs.
func (c *Controller) SelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[string]struct{}, len(c.notices))
	for i := range c.notices {
		c.selected[c.notices[i].ID] = struct{}{}
	}
}

// ToggleSelect adds the notice to the selection, or removes it if already
// selected.
func (c *Controller) ToggleSelect(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.selected[id]; ok {
		delete(c.selected, id)
		return
	}
	c.selected[id] = struct{}{}
}

func (c *Controller) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = make(map[string]struct{})
}

func (c *Controller) IsSelected(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.selected[id]
	return ok
}

func (c *Controller) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.selected)
}

// ActiveCount counts the current page's active notices: published with no
// date or a date that is today or earlier. The count is scoped to the page,
// not the whole filtered result set.
func (c *Controller) ActiveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.clock.Now()
	count := 0
	for i := range c.notices {
		if c.notices[i].ActiveOn(now) {
			count++
		}
	}
	return count
}

// DraftCount counts the current page's drafts.
func (c *Controller) DraftCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for i := range c.notices {
		if c.notices[i].Status == model.StatusDraft {
			count++
		}
	}
	return count
}

func (c *Controller) Notices() []model.Notice {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]model.Notice(nil), c.notices...)
}

func (c *Controller) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

func (c *Controller) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.totalPages
}

// LastError is the most recent fetch failure, cleared by the next success.
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}
