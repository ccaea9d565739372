// Package media wraps the /media endpoints for campaign photo and video
// publishing.
package media

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

type Media struct {
	ID         string `json:"id,omitempty"`
	CampaignID string `json:"campaignId,omitempty"`
	URL        string `json:"url,omitempty"`
	MediaType  string `json:"mediaType,omitempty"`
	Caption    string `json:"caption,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
}

// Filter narrows the gallery search; page coordinates travel in the body.
type Filter struct {
	PageNo     int    `json:"pageNo"`
	PageSize   int    `json:"pageSize"`
	CampaignID string `json:"campaignId,omitempty"`
	MediaType  string `json:"mediaType,omitempty"`
}

type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// UploadCampaignMedia attaches photos or videos to a campaign (multipart).
func (s *Service) UploadCampaignMedia(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PostMultipart(ctx, "/media/uploadcampaignmedia", form, &status)
	return status, err
}

// All searches the gallery.
func (s *Service) All(ctx context.Context, filter Filter) (client.Page[Media], error) {
	return client.PostPage[Media](ctx, s.api, "/media/getallmedia", filter, filter.PageNo, filter.PageSize)
}

// ForCampaign lists everything attached to one campaign; a campaign with
// no media is an empty slice, not an error.
func (s *Service) ForCampaign(ctx context.Context, campaignID string) ([]Media, error) {
	query := url.Values{}
	query.Set("campaignId", campaignID)

	var body struct {
		Data []Media `json:"data"`
	}
	if err := s.api.Get(ctx, "/media/getcampaignmedia", query, &body); err != nil {
		if client.IsNotFound(err) {
			return []Media{}, nil
		}
		return nil, err
	}
	return body.Data, nil
}

// Delete removes one media item from a campaign. The backend identifies
// the target in the DELETE body.
func (s *Service) Delete(ctx context.Context, mediaID, campaignID string) (client.Status, error) {
	var status client.Status
	body := map[string]string{"mediaId": mediaID, "campaignId": campaignID}
	err := s.api.DeleteJSON(ctx, "/media/deletecampaignmedia", body, &status)
	return status, err
}
