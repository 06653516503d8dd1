package dto

// NoticePayload is the create/update body. Exactly one of EmployeeID and
// DepartmentID is set, matching the Target discriminator.
type NoticePayload struct {
	Title         string   `json:"title"`
	Types         []string `json:"type"`
	Body          string   `json:"notice_body"`
	Target        int      `json:"target"`
	EmployeeID    string   `json:"employee_id,omitempty"`
	DepartmentID  string   `json:"department_id,omitempty"`
	Status        int      `json:"status"`
	Attachments   []string `json:"attachments"`
	PublishedDate string   `json:"published_date,omitempty"`
}
