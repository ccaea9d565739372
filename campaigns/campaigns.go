// Package campaigns wraps the /campaign endpoints. Campaign lifecycle
// rules (validation, status transitions) are server-side; this is the
// calling surface only.
package campaigns

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type Campaign struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	BannerURL   string `json:"bannerUrl,omitempty"`
	Status      string `json:"status,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// Create submits a new campaign; the form carries the banner image.
func (s *Service) Create(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PostMultipart(ctx, "/campaign/create", form, &status)
	return status, err
}

func (s *Service) All(ctx context.Context, pageNo, pageSize int) (client.Page[Campaign], error) {
	return client.GetPage[Campaign](ctx, s.api, "/campaign/getall", pageNo, pageSize, nil)
}

// ByID fetches one campaign. A 404 surfaces as an error here
// (client.IsNotFound distinguishes it); only list endpoints map 404 to
// an empty result.
func (s *Service) ByID(ctx context.Context, id string) (*Campaign, error) {
	var c Campaign
	if err := s.api.Get(ctx, "/campaign/get/"+url.PathEscape(id), nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Update(ctx context.Context, id string, c Campaign) (client.Status, error) {
	var status client.Status
	err := s.api.PutJSON(ctx, "/campaign/update/"+url.PathEscape(id), c, &status)
	return status, err
}

func (s *Service) Delete(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.Delete(ctx, "/campaign/delete/"+url.PathEscape(id), &status)
	return status, err
}

// RunningAndUpcoming lists campaigns shown on the public home screen.
func (s *Service) RunningAndUpcoming(ctx context.Context, pageNo, pageSize int) (client.Page[Campaign], error) {
	return client.GetPage[Campaign](ctx, s.api, "/campaign/getRunningAndUpcomingCampaign", pageNo, pageSize, nil)
}

// VolunteerPermitted lists the campaigns the calling volunteer may work.
func (s *Service) VolunteerPermitted(ctx context.Context, pageNo, pageSize int) (client.Page[Campaign], error) {
	return client.GetPage[Campaign](ctx, s.api, "/campaign/getVolunteerPermittedCampaigns", pageNo, pageSize, nil)
}
