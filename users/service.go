package users

import (
	"context"
	"net/url"

	"github.com/hemoglobin-nil/hemoglobin-go/client"
)

// Service wraps the /user endpoints: registration, profile reads and the
// donor/volunteer/admin listing and approval operations. Approval rules
// themselves live server-side; these calls only submit the request.
type Service struct {
	api *client.Client
}

func NewService(api *client.Client) *Service {
	return &Service{api: api}
}

// Register submits a general registration form. The form carries a
// profile photo, hence multipart.
func (s *Service) Register(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PostMultipart(ctx, "/user/registration", form, &status)
	return status, err
}

// RegisterDonor submits the donor-specific registration form (multipart).
func (s *Service) RegisterDonor(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PostMultipart(ctx, "/user/donorRegistration", form, &status)
	return status, err
}

// Update replaces the caller's own profile (multipart, may include a new
// photo).
func (s *Service) Update(ctx context.Context, form *client.Form) (client.Status, error) {
	var status client.Status
	err := s.api.PutMultipart(ctx, "/user/update", form, &status)
	return status, err
}

// ByID fetches a single profile.
func (s *Service) ByID(ctx context.Context, id string) (*User, error) {
	var u User
	if err := s.api.Get(ctx, "/user/getbyid/"+url.PathEscape(id), nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// AllDonors searches the donor roll with the given filter.
func (s *Service) AllDonors(ctx context.Context, filter DonorFilter) (client.Page[User], error) {
	return client.PostPage[User](ctx, s.api, "/donor/getall", filter, filter.PageNo, filter.PageSize)
}

// ApprovedDonors lists donors whose registration an admin has accepted.
func (s *Service) ApprovedDonors(ctx context.Context, filter DonorFilter) (client.Page[User], error) {
	filter.IsApproved = true
	return client.PostPage[User](ctx, s.api, "/user/getApprovedDonor", filter, filter.PageNo, filter.PageSize)
}

// UnapprovedDonors lists donors still pending approval.
func (s *Service) UnapprovedDonors(ctx context.Context, filter DonorFilter) (client.Page[User], error) {
	filter.IsApproved = false
	return client.PostPage[User](ctx, s.api, "/user/getUnapprovedDonor", filter, filter.PageNo, filter.PageSize)
}

// PermittedDonors lists the donors a volunteer is allowed to see.
func (s *Service) PermittedDonors(ctx context.Context, pageNo, pageSize int) (client.Page[User], error) {
	return client.GetPage[User](ctx, s.api, "/user/getPermittedDonors", pageNo, pageSize, nil)
}

// ApprovedVolunteers lists accepted volunteers.
func (s *Service) ApprovedVolunteers(ctx context.Context, pageNo, pageSize int) (client.Page[User], error) {
	return client.GetPage[User](ctx, s.api, "/user/getApprovedVolunteer", pageNo, pageSize, nil)
}

// UnapprovedVolunteers lists volunteer applications pending review.
func (s *Service) UnapprovedVolunteers(ctx context.Context, pageNo, pageSize int) (client.Page[User], error) {
	return client.GetPage[User](ctx, s.api, "/user/getUnapprovedVolunteer", pageNo, pageSize, nil)
}

// ApproveVolunteer accepts a pending volunteer application.
func (s *Service) ApproveVolunteer(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.PostJSON(ctx, "/user/approveVolunteer", map[string]string{"id": id}, &status)
	return status, err
}

// DisapproveVolunteer rejects (or revokes) a volunteer.
func (s *Service) DisapproveVolunteer(ctx context.Context, id string) (client.Status, error) {
	var status client.Status
	err := s.api.PostJSON(ctx, "/user/disapprovevolunteer", map[string]string{"id": id}, &status)
	return status, err
}

// AllAdmins lists admin accounts.
func (s *Service) AllAdmins(ctx context.Context, pageNo, pageSize int) (client.Page[User], error) {
	return client.GetPage[User](ctx, s.api, "/user/getAllAdmin", pageNo, pageSize, nil)
}

// OfficialLeaders returns the small, unpaginated leadership roster.
func (s *Service) OfficialLeaders(ctx context.Context) ([]User, error) {
	var body struct {
		Data []User `json:"data"`
	}
	if err := s.api.Get(ctx, "/user/getOfficialLeaders", nil, &body); err != nil {
		if client.IsNotFound(err) {
			return []User{}, nil
		}
		return nil, err
	}
	return body.Data, nil
}

// ScoutLeaders lists scout leaders.
func (s *Service) ScoutLeaders(ctx context.Context, pageNo, pageSize int) (client.Page[User], error) {
	return client.GetPage[User](ctx, s.api, "/user/getScoutLeaders", pageNo, pageSize, nil)
}
