// Package contacts wraps the contact/complaint intake endpoints.
package contacts

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

// ContactType values accepted by the backend.
const (
	TypeContact   = "contact"
	TypeComplaint = "complaint"
)

type Contact struct {
	ID           string `json:"id,omitempty"`
	Name         string `json:"name,omitempty"`
	MobileNumber string `json:"mobileNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Message      string `json:"message,omitempty"`
	ContactType  string `json:"contactType,omitempty"`
	IsRead       bool   `json:"isRead,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// Send submits a contact message or complaint. Unauthenticated callers
// may use it; the request simply goes out without a bearer header.
func (s *Service) Send(ctx context.Context, c Contact) (client.Status, error) {
	var status client.Status
	err := s.api.PostJSON(ctx, "/contact/create", c, &status)
	return status, err
}

// All lists intake of one type for the admin inbox.
func (s *Service) All(ctx context.Context, contactType string, pageNo, pageSize int) (client.Page[Contact], error) {
	extra := url.Values{}
	extra.Set("contactType", contactType)
	return client.GetPage[Contact](ctx, s.api, "/contact/getall", pageNo, pageSize, extra)
}

// MarkRead flags a message as handled.
func (s *Service) MarkRead(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.PostJSON(ctx, "/contact/read", map[string]string{"id": id}, &status)
	return status, err
}
