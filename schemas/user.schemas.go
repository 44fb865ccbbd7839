package schemas

// User struct is the shared identity record keyed by a stable id
type User struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Picture        string `json:"picture"`
	Bio            string `json:"bio"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

// PersonalInfoSchema struct is a partial profile update; nil fields are untouched
type PersonalInfoSchema struct {
	Name    *string `json:"name,omitempty" validate:"omitempty,max=50"`
	Bio     *string `json:"bio,omitempty" validate:"omitempty,max=300"`
	Picture *string `json:"picture,omitempty"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone   *string `json:"phone,omitempty"`
}

// FollowResponse struct
type FollowResponse struct {
	UserID         string `json:"userId" validate:"required"`
	IsFollowing    bool   `json:"isFollowing"`
	FollowersCount int    `json:"followersCount"`
}

// UsersPage struct is one page of user records
type UsersPage struct {
	Page
	Users []User `json:"users"`
}
