package auth

import (
	"context"
	"presence-lab/domain"
)

// DefaultAvatarSource hands out the same descriptor to every user.
// Real descriptors come from the profile service, which validates them.
type DefaultAvatarSource struct {
	Descriptor string
}

func (s DefaultAvatarSource) AvatarFor(_ context.Context, _ domain.UserID) (string, error) {
	if s.Descriptor == "" {
		return domain.DefaultAvatar, nil
	}
	return s.Descriptor, nil
}
