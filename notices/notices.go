// Package notices wraps the /notice endpoints. Notices carry an attached
// PDF, so create and update are multipart.
package notices

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type Notice struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	PDFURL      string `json:"pdfUrl,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Create(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PostMultipart(ctx, "/notice/create", form, &status)
	return status, err
}

func (s *Service) Update(ctx context.Context, id string, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PutMultipart(ctx, "/notice/update/"+url.PathEscape(id), form, &status)
	return status, err
}

func (s *Service) Delete(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.Delete(ctx, "/notice/delete/"+url.PathEscape(id), &status)
	return status, err
}

func (s *Service) All(ctx context.Context, pageNo, pageSize int) (client.Page[Notice], error) {
	return client.GetPage[Notice](ctx, s.api, "/notice/getall", pageNo, pageSize, nil)
}
