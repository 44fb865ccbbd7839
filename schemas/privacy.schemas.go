package schemas

// Privacy option values
const (
	VisibilityEveryone  = "everyone"
	VisibilityFollowers = "followers"
	VisibilityNobody    = "nobody"
)

// PrivacySettings struct is the singleton-per-user settings object
type PrivacySettings struct {
	ProfileVisibility string   `json:"profileVisibility" validate:"omitempty,oneof=everyone followers nobody"`
	WhoCanMessage     string   `json:"whoCanMessage" validate:"omitempty,oneof=everyone followers nobody"`
	LocationSharing   string   `json:"locationSharing" validate:"omitempty,oneof=everyone followers nobody"`
	OnlineStatus      bool     `json:"onlineStatus"`
	BlockedUsers      []string `json:"blockedUsers"`
}

// UpdatePrivacySchema struct is a partial patch; nil fields are untouched
type UpdatePrivacySchema struct {
	ProfileVisibility *string   `json:"profileVisibility,omitempty" validate:"omitempty,oneof=everyone followers nobody"`
	WhoCanMessage     *string   `json:"whoCanMessage,omitempty" validate:"omitempty,oneof=everyone followers nobody"`
	LocationSharing   *string   `json:"locationSharing,omitempty" validate:"omitempty,oneof=everyone followers nobody"`
	OnlineStatus      *bool     `json:"onlineStatus,omitempty"`
	BlockedUsers      *[]string `json:"blockedUsers,omitempty"`
}

// Merge applies the non-nil patch fields onto a copy of the settings
func (p UpdatePrivacySchema) Merge(settings PrivacySettings) PrivacySettings {
	if p.ProfileVisibility != nil {
		settings.ProfileVisibility = *p.ProfileVisibility
	}
	if p.WhoCanMessage != nil {
		settings.WhoCanMessage = *p.WhoCanMessage
	}
	if p.LocationSharing != nil {
		settings.LocationSharing = *p.LocationSharing
	}
	if p.OnlineStatus != nil {
		settings.OnlineStatus = *p.OnlineStatus
	}
	if p.BlockedUsers != nil {
		settings.BlockedUsers = append([]string(nil), (*p.BlockedUsers)...)
	}
	return settings
}
