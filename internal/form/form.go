package form

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hrboard/notice-console/internal/api"
	"github.com/hrboard/notice-console/internal/dto"
	"github.com/hrboard/notice-console/internal/model"
	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Target is the recipient variant chosen on the form. The zero value means
// no choice has been made yet.
type Target int

const (
	TargetUnset Target = iota
	TargetIndividual
	TargetDepartment
)

// API is the slice of the client the form needs.
type API interface {
	UploadFiles(ctx context.Context, files []api.File) ([]string, error)
	CreateNotice(ctx context.Context, payload dto.NoticePayload) (*model.Notice, error)
	UpdateNotice(ctx context.Context, id string, payload dto.NoticePayload) (*model.Notice, error)
	ListDepartments(ctx context.Context) ([]model.Department, error)
	ListEmployees(ctx context.Context, departmentID string) ([]model.Employee, error)
}

// Attachment is a file staged on the form but not uploaded yet.
type Attachment struct {
	LocalID string
	Name    string
	Content io.Reader
}

// FileInput is a file handed to the form, whether picked or dropped.
type FileInput struct {
	Name    string
	Content io.Reader
}

// Form carries the shared state of the create and edit notice flows. A form
// with a notice ID updates that notice on submit; otherwise it creates one.
type Form struct {
	logger *zap.Logger
	api    API
	clock  clockwork.Clock

	noticeID string

	target               Target
	departmentID         string
	employeeID           string
	employeeName         string
	employeeDepartmentID string
	title                string
	types                []string
	publishedDate        string
	body                 string
	attachments          []Attachment
	existingAttachments  []string

	departments []model.Department
	employees   []model.Employee

	mu         sync.Mutex
	submitting bool
}

func New(logger *zap.Logger, api API, clock clockwork.Clock) *Form {
	return &Form{
		logger: logger,
		api:    api,
		clock:  clock,
	}
}

// LoadReferenceData fetches the department and employee directories the
// target selectors are filled from.
func (f *Form) LoadReferenceData(ctx context.Context) error {
	departments, err := f.api.ListDepartments(ctx)
	if err != nil {
		f.logger.Sugar().Errorf("failed to fetch departments: %s", err.Error())
		return err
	}
	employees, err := f.api.ListEmployees(ctx, "")
	if err != nil {
		f.logger.Sugar().Errorf("failed to fetch employees: %s", err.Error())
		return err
	}
	f.departments = departments
	f.employees = employees
	return nil
}

// PopulateFrom loads a fetched notice into the form for editing. Stored
// attachment references become existing attachments, preserved on submit
// unless explicitly removed.
func (f *Form) PopulateFrom(n *model.Notice) {
	f.noticeID = n.ID
	if n.Target == model.TargetIndividual {
		f.target = TargetIndividual
	} else {
		f.target = TargetDepartment
	}
	if n.Department != nil {
		f.departmentID = n.Department.ID
	}
	if n.Employee != nil {
		f.employeeID = n.Employee.ID
		f.employeeName = n.Employee.Name
		f.employeeDepartmentID = n.Employee.DepartmentID
	}
	f.title = n.Title
	f.types = append([]string(nil), n.Types...)
	if d, ok := n.PublishedOn(); ok {
		f.publishedDate = d.Format(model.DateLayout)
	}
	f.body = n.Body
	f.attachments = nil
	f.existingAttachments = append([]string(nil), n.Attachments...)
}

// SetTarget switches the recipient variant. The other variant's selection is
// kept around but ignored at submission.
func (f *Form) SetTarget(target Target) {
	f.target = target
}

func (f *Form) SetTitle(title string) { f.title = title }

func (f *Form) SetBody(body string) { f.body = body }

func (f *Form) SetPublishedDate(d string) { f.publishedDate = d }

func (f *Form) SetDepartment(id string) { f.departmentID = id }

// SelectEmployee records the chosen employee and recomputes the derived
// display fields from the loaded directory.
func (f *Form) SelectEmployee(id string) {
	f.employeeID = id
	if id == "" {
		f.employeeName = ""
		f.employeeDepartmentID = ""
		return
	}
	for i := range f.employees {
		if f.employees[i].ID == id {
			f.employeeName = f.employees[i].Name
			f.employeeDepartmentID = f.employees[i].DepartmentID()
			return
		}
	}
}

// ToggleType adds the tag to the selection, or removes it if already there.
func (f *Form) ToggleType(tag string) {
	for i, t := range f.types {
		if t == tag {
			f.types = append(f.types[:i], f.types[i+1:]...)
			return
		}
	}
	f.types = append(f.types, tag)
}

// AddAttachments stages files for upload, each under a fresh local ID.
func (f *Form) AddAttachments(files ...FileInput) {
	for _, file := range files {
		f.attachments = append(f.attachments, Attachment{
			LocalID: uuid.NewString(),
			Name:    file.Name,
			Content: file.Content,
		})
	}
}

// RemoveAttachment drops a staged file by its local ID. Unknown IDs are
// ignored.
func (f *Form) RemoveAttachment(localID string) {
	for i, a := range f.attachments {
		if a.LocalID == localID {
			f.attachments = append(f.attachments[:i], f.attachments[i+1:]...)
			return
		}
	}
}

// RemoveExistingAttachment drops a stored reference carried over from the
// loaded notice. Unknown references are ignored.
func (f *Form) RemoveExistingAttachment(ref string) {
	for i, r := range f.existingAttachments {
		if r == ref {
			f.existingAttachments = append(f.existingAttachments[:i], f.existingAttachments[i+1:]...)
			return
		}
	}
}

// Validate checks the form and returns the first failing rule, in a fixed
// order: title, types, body, target, then the target's selection.
func (f *Form) Validate() error {
	if strings.TrimSpace(f.title) == "" {
		return &ValidationError{Field: "title", Reason: "Notice title is required"}
	}
	if len(f.types) == 0 {
		return &ValidationError{Field: "type", Reason: "Please select at least one notice type"}
	}
	if strings.TrimSpace(f.body) == "" {
		return &ValidationError{Field: "notice_body", Reason: "Notice body is required"}
	}
	if f.target == TargetUnset {
		return &ValidationError{Field: "target", Reason: "Please select target (Individual or Department)"}
	}
	if f.target == TargetIndividual && f.employeeID == "" {
		return &ValidationError{Field: "employee_id", Reason: "Please select an employee"}
	}
	if f.target == TargetDepartment && f.departmentID == "" {
		return &ValidationError{Field: "department_id", Reason: "Please select a department"}
	}
	return nil
}

// Submit validates, uploads any staged attachments as one batch, then
// creates or updates the notice. Form state survives a failure so the user
// can retry without re-entering anything. References returned by a
// successful upload are promoted to existing attachments immediately: if the
// save step fails, a retry re-runs only the save.
func (f *Form) Submit(ctx context.Context, status int) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInFlight
	}
	f.submitting = true
	f.mu.Unlock()
	defer func() {
		f.mu.Lock()
		f.submitting = false
		f.mu.Unlock()
	}()

	if err := f.Validate(); err != nil {
		return err
	}

	if len(f.attachments) > 0 {
		files := make([]api.File, 0, len(f.attachments))
		for _, a := range f.attachments {
			files = append(files, api.File{Name: a.Name, Reader: a.Content})
		}
		refs, err := f.api.UploadFiles(ctx, files)
		if err != nil {
			f.logger.Sugar().Errorf("failed to upload attachments: %s", err.Error())
			return err
		}
		f.existingAttachments = append(f.existingAttachments, refs...)
		f.attachments = nil
	}

	payload := f.buildPayload(status)

	var err error
	if f.noticeID != "" {
		_, err = f.api.UpdateNotice(ctx, f.noticeID, payload)
	} else {
		_, err = f.api.CreateNotice(ctx, payload)
	}
	if err != nil {
		f.logger.Sugar().Errorf("failed to save notice: %s", err.Error())
		return err
	}
	return nil
}

func (f *Form) buildPayload(status int) dto.NoticePayload {
	payload := dto.NoticePayload{
		Title:       f.title,
		Types:       append([]string(nil), f.types...),
		Body:        f.body,
		Status:      status,
		Attachments: append([]string{}, f.existingAttachments...),
	}

	if f.target == TargetIndividual {
		payload.Target = model.TargetIndividual
		payload.EmployeeID = f.employeeID
	} else {
		payload.Target = model.TargetDepartment
		payload.DepartmentID = f.departmentID
	}

	if f.publishedDate != "" {
		payload.PublishedDate = f.publishedDate
	} else if status == model.StatusPublished {
		// Publishing without a date means publishing today.
		payload.PublishedDate = f.clock.Now().Format(model.DateLayout)
	}

	return payload
}

func (f *Form) NoticeID() string { return f.noticeID }

func (f *Form) Target() Target { return f.target }

func (f *Form) Title() string { return f.title }

func (f *Form) Body() string { return f.body }

func (f *Form) PublishedDate() string { return f.publishedDate }

func (f *Form) DepartmentID() string { return f.departmentID }

func (f *Form) EmployeeID() string { return f.employeeID }

func (f *Form) EmployeeName() string { return f.employeeName }

func (f *Form) EmployeeDepartmentID() string { return f.employeeDepartmentID }

func (f *Form) Types() []string {
	return append([]string(nil), f.types...)
}

func (f *Form) Attachments() []Attachment {
	return append([]Attachment(nil), f.attachments...)
}

func (f *Form) ExistingAttachments() []string {
	return append([]string(nil), f.existingAttachments...)
}

func (f *Form) Departments() []model.Department {
	return append([]model.Department(nil), f.departments...)
}

func (f *Form) Employees() []model.Employee {
	return append([]model.Employee(nil), f.employees...)
}
