package api

import (
	"context"
	"io"
	"net/http"

	"github.com/hrboard/notice-console/internal/dto"
	"github.com/hrboard/notice-console/internal/model"
)

// File is one attachment to upload: a display name and its content.
type File struct {
	Name   string
	Reader io.Reader
}

func (c *Client) ListNotices(ctx context.Context, query dto.NoticeQuery) ([]model.Notice, *Pagination, error) {
	var notices []model.Notice
	req := c.http.R().SetQueryParamsFromValues(query.Values())
	pagination, err := c.call(ctx, req, http.MethodGet, "/notices", &notices)
	if err != nil {
		return nil, nil, err
	}
	return notices, pagination, nil
}

func (c *Client) GetNotice(ctx context.Context, id string) (*model.Notice, error) {
	var notice model.Notice
	req := c.http.R().SetPathParam("id", id)
	if _, err := c.call(ctx, req, http.MethodGet, "/notices/{id}", &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (c *Client) CreateNotice(ctx context.Context, payload dto.NoticePayload) (*model.Notice, error) {
	var notice model.Notice
	req := c.http.R().SetBody(payload)
	if _, err := c.call(ctx, req, http.MethodPost, "/notices", &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (c *Client) UpdateNotice(ctx context.Context, id string, payload dto.NoticePayload) (*model.Notice, error) {
	var notice model.Notice
	req := c.http.R().SetPathParam("id", id).SetBody(payload)
	if _, err := c.call(ctx, req, http.MethodPut, "/notices/{id}", &notice); err != nil {
		return nil, err
	}
	return &notice, nil
}

func (c *Client) DeleteNotice(ctx context.Context, id string) error {
	req := c.http.R().SetPathParam("id", id)
	_, err := c.call(ctx, req, http.MethodDelete, "/notices/{id}", nil)
	return err
}

// UploadFiles sends all files as a single multipart batch and returns the
// storage references the backend assigned, in upload order.
func (c *Client) UploadFiles(ctx context.Context, files []File) ([]string, error) {
	req := c.http.R()
	for _, f := range files {
		req.SetFileReader("files", f.Name, f.Reader)
	}
	var refs []string
	if _, err := c.call(ctx, req, http.MethodPost, "/notices/upload", &refs); err != nil {
		return nil, err
	}
	return refs, nil
}
