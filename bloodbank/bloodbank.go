// Package bloodbank wraps the stock and dashboard endpoints.
package bloodbank

import (
	"context"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

// Dashboard is the home-screen summary.
type Dashboard struct {
	TotalDonors     int            `json:"totalDonors,omitempty"`
	TotalVolunteers int            `json:"totalVolunteers,omitempty"`
	TotalCampaigns  int            `json:"totalCampaigns,omitempty"`
	TotalDonations  int            `json:"totalDonations,omitempty"`
	BloodGroups     map[string]int `json:"bloodGroups,omitempty"`
}

// Stock is one blood-group inventory line.
type Stock struct {
	BloodGroup string `json:"bloodGroup,omitempty"`
	Units      int    `json:"units,omitempty"`
	Location   string `json:"location,omitempty"`
}

// Filter narrows a stock query.
type Filter struct {
	PageNo     int    `json:"pageNo"`
	PageSize   int    `json:"pageSize"`
	BloodGroup string `json:"bloodGroup,omitempty"`
	Upazila    string `json:"upazila,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

func (s *Service) Dashboard(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	if err := s.api.Get(ctx, "/bloodbank/getdashboarddata", nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *Service) Stocks(ctx context.Context, filter Filter) (client.Page[Stock], error) {
	return client.PostPage[Stock](ctx, s.api, "/bloodbank/getbloodbankdata", filter, filter.PageNo, filter.PageSize)
}
