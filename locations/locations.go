// Package locations wraps the administrative-area lookup used by the
// registration forms (district -> upazila -> union cascade).
package locations

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type Location struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	Level    string `json:"level,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// ByParent lists the areas directly under parentID. A parent with no
// children yields an empty slice.
func (s *Service) ByParent(ctx context.Context, parentID string) ([]Location, error) {
	var body struct {
		Data []Location `json:"data"`
	}
	err := s.api.Get(ctx, "/location/GetByParentId/"+url.PathEscape(parentID), nil, &body)
	if err != nil {
		if client.IsNotFound(err) {
			return []Location{}, nil
		}
		return nil, err
	}
	return body.Data, nil
}
