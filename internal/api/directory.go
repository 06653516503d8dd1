package api

import (
	"context"
	"net/http"

	"github.com/hrboard/notice-console/internal/model"
)

func (c *Client) ListDepartments(ctx context.Context) ([]model.Department, error) {
	var departments []model.Department
	if _, err := c.call(ctx, c.http.R(), http.MethodGet, "/departments", &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

func (c *Client) GetDepartment(ctx context.Context, id string) (*model.Department, error) {
	var department model.Department
	req := c.http.R().SetPathParam("id", id)
	if _, err := c.call(ctx, req, http.MethodGet, "/departments/{id}", &department); err != nil {
		return nil, err
	}
	return &department, nil
}

// ListEmployees returns the employee directory, optionally narrowed to one
// department.
func (c *Client) ListEmployees(ctx context.Context, departmentID string) ([]model.Employee, error) {
	req := c.http.R()
	if departmentID != "" {
		req.SetQueryParam("department_id", departmentID)
	}
	var employees []model.Employee
	if _, err := c.call(ctx, req, http.MethodGet, "/employees", &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (c *Client) GetEmployee(ctx context.Context, id string) (*model.Employee, error) {
	var employee model.Employee
	req := c.http.R().SetPathParam("id", id)
	if _, err := c.call(ctx, req, http.MethodGet, "/employees/{id}", &employee); err != nil {
		return nil, err
	}
	return &employee, nil
}
