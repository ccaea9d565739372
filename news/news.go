// Package news wraps the /news endpoints (plain JSON bodies, no
// attachments).
package news

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type Article struct {
	ID        string `json:"id,omitempty"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content,omitempty"`
	ImageURL  string `json:"imageUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Create(ctx context.Context, a Article) (client.Status, error) {
	var status client.Status
	err := s.api.PostJSON(ctx, "/news/create", a, &status)
	return status, err
}

func (s *Service) All(ctx context.Context, pageNo, pageSize int) (client.Page[Article], error) {
	return client.GetPage[Article](ctx, s.api, "/news/getall", pageNo, pageSize, nil)
}

// Update sends the whole article; the backend identifies it by the ID in
// the body.
func (s *Service) Update(ctx context.Context, a Article) (client.Status, error) {
	var status client.Status
	err := s.api.PutJSON(ctx, "/news/update", a, &status)
	return status, err
}

func (s *Service) Delete(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.Delete(ctx, "/news/delete/"+url.PathEscape(id), &status)
	return status, err
}
