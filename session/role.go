package session

import (
	jwtlib "github.com/golang-jwt/jwt/v5"

	"github.com/hemoglobin-nil/hemoglobin-go/internal/utils"
	"github.com/hemoglobin-nil/hemoglobin-go/users"
)

// Role is the user identity projected from the token payload. It is
// recomputed from the current token every time it is needed; nothing is
// cached.
//
// The payload is decoded without verifying the signature. That is a UI
// convenience only, never a security control: the backend rejects
// requests whose token it does not accept, whatever the client inferred.
type Role struct {
	UserType users.UserType `json:"userType"`
	ID       string         `json:"id"`
}

func (r Role) IsAdmin() bool     { return r.UserType == users.TypeAdmin }
func (r Role) IsVolunteer() bool { return r.UserType == users.TypeVolunteer }
func (r Role) IsDonor() bool     { return r.UserType == users.TypeDonor }

// DecodeRole reads the UserType and UserId claims from the middle segment
// of a three-segment token. It fails closed: any malformation (absent
// token, wrong segment count, bad base64, non-JSON payload, missing
// claims) yields (Role{}, false) and never an error or panic.
func DecodeRole(token string) (Role, bool) {
	if token == "" {
		return Role{}, false
	}

	parsed, _, err := jwtlib.NewParser().ParseUnverified(token, jwtlib.MapClaims{})
	if err != nil {
		return Role{}, false
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok {
		return Role{}, false
	}

	userType, _ := claims["UserType"].(string)
	if userType == "" {
		return Role{}, false
	}

	// UserId arrives as a string or a number depending on the backend
	// version; both are accepted.
	id := utils.ToString(claims["UserId"])
	if id == "" {
		return Role{}, false
	}

	return Role{UserType: users.UserType(userType), ID: id}, true
}
