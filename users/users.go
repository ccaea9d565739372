package users

// UserType values as issued by the backend inside the token payload and on
// user records. Shown/hidden UI is gated on these, but authorization is
// always enforced server-side.
type UserType string

const (
	TypeAdmin     UserType = "Admin"
	TypeVolunteer UserType = "Volunteer"
	TypeDonor     UserType = "Donor"
	TypeUser      UserType = "User"
)

// User is the profile snapshot returned by the backend. The session store
// caches the last-fetched copy for offline display; none of these fields
// are required to be populated for role decisions.
type User struct {
	ID                 string   `json:"id,omitempty"`
	FullName           string   `json:"fullName,omitempty"`
	MobileNumber       string   `json:"mobileNumber,omitempty"`
	Email              string   `json:"email,omitempty"`
	DateOfBirth        string   `json:"dateOfBirth,omitempty"`
	Gender             string   `json:"gender,omitempty"`
	BloodGroup         string   `json:"bloodGroup,omitempty"`
	Upazila            string   `json:"upazila,omitempty"`
	Union              string   `json:"union,omitempty"`
	Address            string   `json:"address,omitempty"`
	PhotoURL           string   `json:"photoUrl,omitempty"`
	UserType           UserType `json:"userType,omitempty"`
	IsApproved         bool     `json:"isApproved,omitempty"`
	LastDonation       string   `json:"lastDonation,omitempty"`
	PhysicalComplexity string   `json:"physicalComplexity,omitempty"`
}

// DonorFilter narrows donor list queries. Zero-valued fields are omitted
// from the request body so the backend applies no constraint for them.
type DonorFilter struct {
	PageNo     int    `json:"pageNo"`
	PageSize   int    `json:"pageSize"`
	BloodGroup string `json:"bloodGroup,omitempty"`
	Upazila    string `json:"upazila,omitempty"`
	Union      string `json:"union,omitempty"`
	Gender     string `json:"gender,omitempty"`
	StartAge   *int   `json:"startAge,omitempty"`
	EndAge     *int   `json:"endAge,omitempty"`
	IsApproved bool   `json:"isApproved"`
	UserType   string `json:"userType,omitempty"`
}
