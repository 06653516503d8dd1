package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hrboard/notice-console/internal/dto"
	"github.com/hrboard/notice-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/api", 5*time.Second)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestListNoticesUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notices", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "1", r.URL.Query().Get("status"))
		assert.Equal(t, "published", r.URL.Query().Get("publishStatus"))

		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "n1", "title": "Holiday schedule", "status": 1},
			},
			"pagination": map[string]any{"totalPages": 3},
		})
	})

	notices, pagination, err := client.ListNotices(context.Background(), dto.NoticeQuery{Status: dto.FilterStatusPublished})
	require.NoError(t, err)
	require.Len(t, notices, 1)
	assert.Equal(t, "n1", notices[0].ID)
	assert.Equal(t, "Holiday schedule", notices[0].Title)
	require.NotNil(t, pagination)
	assert.Equal(t, 3, pagination.TotalPages)
}

func TestGetNoticeByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notices/n42", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "n42", "title": "Policy update"},
		})
	})

	notice, err := client.GetNotice(context.Background(), "n42")
	require.NoError(t, err)
	assert.Equal(t, "n42", notice.ID)
	assert.Equal(t, "Policy update", notice.Title)
}

func TestEnvelopeFailureBecomesRequestError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": false,
			"message": "notice not found",
		})
	})

	_, err := client.GetNotice(context.Background(), "missing")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "notice not found", reqErr.Message)
}

func TestServerErrorUsesEnvelopeMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "title is required",
		})
	})

	_, err := client.CreateNotice(context.Background(), dto.NoticePayload{})
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "title is required", reqErr.Message)
}

func TestServerErrorWithoutMessageFallsBack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("boom"))
	})

	_, err := client.GetNotice(context.Background(), "n1")
	var reqErr *RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, "something went wrong", reqErr.Message)
}

func TestUnreachableBackendBecomesTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(url+"/api", time.Second)
	_, err := client.GetNotice(context.Background(), "n1")
	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.NotEmpty(t, transportErr.Message)
}

func TestCreateNoticeSendsPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notices", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "Holiday", payload["title"])
		assert.Equal(t, "Office closed", payload["notice_body"])
		assert.Equal(t, float64(1), payload["target"])
		assert.Equal(t, "D1", payload["department_id"])
		assert.NotContains(t, payload, "employee_id")

		writeJSON(t, w, http.StatusCreated, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "created"},
		})
	})

	notice, err := client.CreateNotice(context.Background(), dto.NoticePayload{
		Title:        "Holiday",
		Types:        []string{"Contract / Role Update"},
		Body:         "Office closed",
		Target:       model.TargetDepartment,
		DepartmentID: "D1",
		Status:       model.StatusPublished,
		Attachments:  []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, "created", notice.ID)
}

func TestUpdateNoticeUsesPut(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notices/n7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "n7"},
		})
	})

	_, err := client.UpdateNotice(context.Background(), "n7", dto.NoticePayload{Title: "Updated"})
	require.NoError(t, err)
}

func TestDeleteNotice(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notices/n7", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{"success": true})
	})

	require.NoError(t, client.DeleteNotice(context.Background(), "n7"))
}

func TestUploadFilesMultipartBatch(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/notices/upload", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		files := r.MultipartForm.File["files"]
		require.Len(t, files, 2)
		assert.Equal(t, "a.pdf", files[0].Filename)
		assert.Equal(t, "b.png", files[1].Filename)

		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []string{"/uploads/a.pdf", "/uploads/b.png"},
		})
	})

	refs, err := client.UploadFiles(context.Background(), []File{
		{Name: "a.pdf", Reader: strings.NewReader("pdf-bytes")},
		{Name: "b.png", Reader: strings.NewReader("png-bytes")},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"/uploads/a.pdf", "/uploads/b.png"}, refs)
}

func TestListEmployeesDepartmentFilter(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees", r.URL.Path)
		assert.Equal(t, "D1", r.URL.Query().Get("department_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "e1", "employee_code": "EMP-001", "name": "Avery Lee",
					"department_id": map[string]any{"_id": "D1", "name": "Engineering"}},
			},
		})
	})

	employees, err := client.ListEmployees(context.Background(), "D1")
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.Equal(t, "Avery Lee", employees[0].Name)
	assert.Equal(t, "D1", employees[0].DepartmentID())
}

func TestGetDepartmentByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/departments/D2", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "D2", "name": "Sales"},
		})
	})

	department, err := client.GetDepartment(context.Background(), "D2")
	require.NoError(t, err)
	assert.Equal(t, "Sales", department.Name)
}

func TestGetEmployeeByID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/employees/e1", r.URL.Path)
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data":    map[string]any{"_id": "e1", "employee_code": "EMP-001", "name": "Avery Lee"},
		})
	})

	employee, err := client.GetEmployee(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "EMP-001", employee.EmployeeCode)
}

func TestListDepartments(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/departments", r.URL.Path)
		assert.False(t, r.URL.Query().Has("department_id"))
		writeJSON(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "D1", "name": "Engineering"},
				{"_id": "D2", "name": "Sales"},
			},
		})
	})

	departments, err := client.ListDepartments(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 2)
	assert.Equal(t, "Sales", departments[1].Name)
}
