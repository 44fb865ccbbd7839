package services

import (
	"context"

	"linkup_client/client"
	"linkup_client/errors"
	"linkup_client/schemas"
)

// AuthService maps the auth endpoints
type AuthService struct {
	c *client.Client
}

// NewAuthService builds the auth service
func NewAuthService(c *client.Client) *AuthService {
	return &AuthService{c: c}
}

// Signup registers a new account and returns the session payload
func (s *AuthService) Signup(ctx context.Context, req schemas.SignupSchema) (*schemas.AuthResponse, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.AuthResponse
	if err := s.c.Post(ctx, "/auth/signup", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to sign up")
	}
	return &out, nil
}

// Login exchanges credentials for a session payload
func (s *AuthService) Login(ctx context.Context, req schemas.LoginSchema) (*schemas.AuthResponse, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.AuthResponse
	if err := s.c.Post(ctx, "/auth/login", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to log in")
	}
	return &out, nil
}

// GoogleLogin exchanges a Google ID token for a session payload
func (s *AuthService) GoogleLogin(ctx context.Context, req schemas.GoogleLoginSchema) (*schemas.AuthResponse, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.AuthResponse
	if err := s.c.Post(ctx, "/auth/google", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to log in with Google")
	}
	return &out, nil
}

// Logout invalidates the session on the server
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.c.Post(ctx, "/auth/logout", nil, nil); err != nil {
		return errors.WithFallback(err, "Failed to log out")
	}
	return nil
}

// CurrentUser fetches the authenticated user record
func (s *AuthService) CurrentUser(ctx context.Context) (*schemas.User, error) {
	var out schemas.User
	if err := s.c.Get(ctx, "/users/me", &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load profile")
	}
	return &out, nil
}

// UserByID fetches another user record
func (s *AuthService) UserByID(ctx context.Context, userID string) (*schemas.User, error) {
	var out schemas.User
	if err := s.c.Get(ctx, "/users/"+userID, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load user")
	}
	return &out, nil
}

// UpdatePersonalInfo patches the authenticated user's profile fields
func (s *AuthService) UpdatePersonalInfo(ctx context.Context, req schemas.PersonalInfoSchema) (*schemas.User, error) {
	if err := validateSchema(req); err != nil {
		return nil, err
	}
	var out schemas.User
	if err := s.c.Patch(ctx, "/users/me/personal-info", req, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update profile")
	}
	return &out, nil
}

// ForgotPassword starts the email reset flow
func (s *AuthService) ForgotPassword(ctx context.Context, req schemas.ForgotPasswordSchema) error {
	if err := validateSchema(req); err != nil {
		return err
	}
	if err := s.c.Post(ctx, "/auth/forgot-password", req, nil); err != nil {
		return errors.WithFallback(err, "Failed to request password reset")
	}
	return nil
}

// RequestOTP sends a one-time code to a phone number
func (s *AuthService) RequestOTP(ctx context.Context, req schemas.RequestOTPSchema) error {
	if err := validateSchema(req); err != nil {
		return err
	}
	if err := s.c.Post(ctx, "/auth/otp/request", req, nil); err != nil {
		return errors.WithFallback(err, "Failed to send verification code")
	}
	return nil
}

// VerifyOTP verifies a one-time code
func (s *AuthService) VerifyOTP(ctx context.Context, req schemas.VerifyOTPSchema) error {
	if err := validateSchema(req); err != nil {
		return err
	}
	if err := s.c.Post(ctx, "/auth/otp/verify", req, nil); err != nil {
		return errors.WithFallback(err, "Failed to verify code")
	}
	return nil
}

// ResetPassword completes the reset flow with a new password
func (s *AuthService) ResetPassword(ctx context.Context, req schemas.ResetPasswordSchema) error {
	if err := validateSchema(req); err != nil {
		return err
	}
	if err := s.c.Post(ctx, "/auth/reset-password", req, nil); err != nil {
		return errors.WithFallback(err, "Failed to reset password")
	}
	return nil
}

// FollowToggle follows or unfollows a user and returns the server state
func (s *AuthService) FollowToggle(ctx context.Context, userID string) (*schemas.FollowResponse, error) {
	var out schemas.FollowResponse
	if err := s.c.Post(ctx, "/users/"+userID+"/follow", nil, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to update follow")
	}
	return &out, nil
}

// Followers fetches one page of a user's followers
func (s *AuthService) Followers(ctx context.Context, userID string, page int, limit int) (*schemas.UsersPage, error) {
	var out schemas.UsersPage
	path := client.WithQuery("/users/"+userID+"/followers", pageQuery(page, limit))
	if err := s.c.Get(ctx, path, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load followers")
	}
	return &out, nil
}

// Following fetches one page of the users a user follows
func (s *AuthService) Following(ctx context.Context, userID string, page int, limit int) (*schemas.UsersPage, error) {
	var out schemas.UsersPage
	path := client.WithQuery("/users/"+userID+"/following", pageQuery(page, limit))
	if err := s.c.Get(ctx, path, &out); err != nil {
		return nil, errors.WithFallback(err, "Failed to load following")
	}
	return &out, nil
}
