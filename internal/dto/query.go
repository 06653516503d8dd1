package dto

import (
	"net/url"
	"strconv"
)

const DefaultPageSize = 10

// Target filter values accepted from the UI.
const (
	FilterTargetIndividual = "individual"
	FilterTargetDepartment = "department"
)

// Status filter values accepted from the UI.
const (
	FilterStatusPublished   = "publish"
	FilterStatusUnpublished = "unpublished"
	FilterStatusDraft       = "draft"
)

// NoticeQuery holds list filters in the shape the UI collects them.
type NoticeQuery struct {
	Page          int
	Limit         int
	Target        string
	Status        string
	PublishedDate string
	Search        string
}

// Values maps the filters onto backend query parameters. The published and
// unpublished status filters both query status=1 and are told apart by the
// publishStatus parameter.
func (q NoticeQuery) Values() url.Values {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = DefaultPageSize
	}

	values := url.Values{}
	values.Set("page", strconv.Itoa(page))
	values.Set("limit", strconv.Itoa(limit))

	switch q.Target {
	case FilterTargetIndividual:
		values.Set("target", "0")
	case FilterTargetDepartment:
		values.Set("target", "1")
	}

	switch q.Status {
	case FilterStatusPublished:
		values.Set("status", "1")
		values.Set("publishStatus", "published")
	case FilterStatusUnpublished:
		values.Set("status", "1")
		values.Set("publishStatus", "unpublished")
	case FilterStatusDraft:
		values.Set("status", "0")
	}

	if q.PublishedDate != "" {
		values.Set("published_date", q.PublishedDate)
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}

	return values
}
