package entity

import "time"

type UserRole string

const (
	RoleAdministrator UserRole = "Administrator"
	RoleBlogger       UserRole = "Blogger"
)

func (r UserRole) Valid() bool {
	return r == RoleAdministrator || r == RoleBlogger
}

type User struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Biography   string    `json:"biography"`
	URLFacebook string    `json:"url_facebook"`
	URLLinkedIn string    `json:"url_linkedin"`
	URLTwitter  string    `json:"url_twitter"`
	Password    string    `json:"-"`
	Role        UserRole  `json:"role"`
	LockedOut   bool      `json:"locked_out"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Profile is the public view of a user.
type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Biography   string `json:"biography"`
	URLFacebook string `json:"url_facebook"`
	URLLinkedIn string `json:"url_linkedin"`
	URLTwitter  string `json:"url_twitter"`
}

func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Biography:   u.Biography,
		URLFacebook: u.URLFacebook,
		URLLinkedIn: u.URLLinkedIn,
		URLTwitter:  u.URLTwitter,
	}
}
