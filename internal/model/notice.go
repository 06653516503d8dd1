package model

import (
	"fmt"
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Notice statuses as stored by the backend.
const (
	StatusDraft     = 0
	StatusPublished = 1
)

// Notice targets as stored by the backend.
const (
	TargetIndividual = 0
	TargetDepartment = 1
)

// Display statuses derived from status + published date.
const (
	DisplayDraft       = "Draft"
	DisplayPublished   = "Published"
	DisplayUnpublished = "Unpublished"
)

// NoticeTypes is the fixed set of tags a notice can carry.
var NoticeTypes = []string{
	"Warning / Disciplinary",
	"Performance Improvement",
	"Appreciation / Recognition",
	"Attendance / Leave Issue",
	"Payroll / Compensation",
	"Contract / Role Update",
	"Advisory / Personal Reminder",
}

func IsNoticeType(tag string) bool {
	for _, t := range NoticeTypes {
		if t == tag {
			return true
		}
	}
	return false
}

type Notice struct {
	ID            string       `json:"_id"`
	Title         string       `json:"title"`
	Types         []string     `json:"type"`
	Body          string       `json:"notice_body"`
	Target        int          `json:"target"`
	Employee      *EmployeeRef `json:"employee_id,omitempty"`
	Department    *Department  `json:"department_id,omitempty"`
	Status        int          `json:"status"`
	PublishedDate string       `json:"published_date,omitempty"`
	Attachments   []string     `json:"attachments"`
}

// EmployeeRef is the employee document the backend embeds into a notice.
// Its department_id stays an unexpanded ID, unlike the employee directory.
type EmployeeRef struct {
	ID           string `json:"_id"`
	Name         string `json:"name"`
	EmployeeCode string `json:"employee_code"`
	DepartmentID string `json:"department_id"`
}

// PublishedOn parses the published date at calendar-day granularity.
// The backend may send either a bare date or a full timestamp.
func (n *Notice) PublishedOn() (time.Time, bool) {
	s := n.PublishedDate
	if len(s) > len(DateLayout) {
		s = s[:len(DateLayout)]
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// EffectiveStatus derives the display status: drafts are always "Draft";
// a published notice dated strictly after today shows as "Unpublished".
func (n *Notice) EffectiveStatus(now time.Time) string {
	if n.Status == StatusDraft {
		return DisplayDraft
	}
	if d, ok := n.PublishedOn(); ok && d.Format(DateLayout) > now.Format(DateLayout) {
		return DisplayUnpublished
	}
	return DisplayPublished
}

// ActiveOn reports whether the notice counts as active: published with no
// date, or published with a date that is today or earlier.
func (n *Notice) ActiveOn(now time.Time) bool {
	if n.Status != StatusPublished {
		return false
	}
	d, ok := n.PublishedOn()
	return !ok || d.Format(DateLayout) <= now.Format(DateLayout)
}

// TargetLabel formats the recipient for display, falling back to the plain
// target kind when the reference wasn't expanded by the backend.
func (n *Notice) TargetLabel() string {
	if n.Target == TargetIndividual {
		if n.Employee != nil {
			return fmt.Sprintf("%s (%s)", n.Employee.Name, n.Employee.EmployeeCode)
		}
		return "Individual"
	}
	if n.Department != nil {
		return n.Department.Name
	}
	return "Department"
}

// FormatTypes joins type tags for table cells, truncating long lists.
func FormatTypes(types []string) string {
	if len(types) == 0 {
		return "-"
	}
	full := strings.Join(types, ", ")
	if len(full) > 30 {
		return full[:30] + "..."
	}
	return full
}
