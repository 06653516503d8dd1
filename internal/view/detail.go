package view

import (
	"time"

	"github.com/hrboard/notice-console/internal/model"
)

// Detail is the read-only projection of one notice, ready for display.
type Detail struct {
	ID            string
	Title         string
	Status        string
	Types         []string
	Target        string
	PublishedDate string
	Body          string
	Attachments   []string
}

// Project flattens a fetched notice into display fields. Attachment
// references are turned into download URLs by prefixing the static-file
// origin from configuration.
func Project(n *model.Notice, fileBaseURL string, now time.Time) Detail {
	d := Detail{
		ID:            n.ID,
		Title:         n.Title,
		Status:        n.EffectiveStatus(now),
		Types:         append([]string(nil), n.Types...),
		Target:        n.TargetLabel(),
		PublishedDate: longDate(n),
		Body:          n.Body,
	}
	for _, ref := range n.Attachments {
		d.Attachments = append(d.Attachments, fileBaseURL+ref)
	}
	return d
}

func longDate(n *model.Notice) string {
	d, ok := n.PublishedOn()
	if !ok {
		return "Not set"
	}
	return d.Format("January 2, 2006")
}

// Row is one line of the notice list table.
type Row struct {
	ID          string
	Title       string
	Types       string
	Target      string
	PublishedOn string
	Status      string
}

// Rows projects a page of notices into table lines.
func Rows(notices []model.Notice, now time.Time) []Row {
	rows := make([]Row, 0, len(notices))
	for i := range notices {
		n := &notices[i]
		rows = append(rows, Row{
			ID:          n.ID,
			Title:       n.Title,
			Types:       model.FormatTypes(n.Types),
			Target:      n.TargetLabel(),
			PublishedOn: shortDate(n),
			Status:      n.EffectiveStatus(now),
		})
	}
	return rows
}

func shortDate(n *model.Notice) string {
	d, ok := n.PublishedOn()
	if !ok {
		return "-"
	}
	return d.Format("01/02/2006")
}
