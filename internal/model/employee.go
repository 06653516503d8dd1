package model

// Employee is a directory entry. The backend expands department_id into the
// full department document on this endpoint.
type Employee struct {
	ID           string      `json:"_id"`
	EmployeeCode string      `json:"employee_code"`
	Name         string      `json:"name"`
	Department   *Department `json:"department_id,omitempty"`
}

func (e *Employee) DepartmentID() string {
	if e.Department == nil {
		return ""
	}
	return e.Department.ID
}
