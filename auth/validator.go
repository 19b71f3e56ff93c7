package auth

import (
	"fmt"
	"presence-lab/domain"
	"presence-lab/errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

func ValidateIdentity(identity domain.Identity) error {
	if identity.UserID == uuid.Nil || strings.TrimSpace(identity.Nickname) == "" {
		return errors.ErrInvalidIdentity
	}
	if err := validate.Struct(identity); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidIdentity, err)
	}
	return nil
}

func ValidateRoom(room domain.Room) error {
	if room.ID == uuid.Nil || strings.TrimSpace(room.Name) == "" {
		return errors.ErrInvalidRoom
	}
	if err := validate.Struct(room); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrInvalidRoom, err)
	}
	return nil
}
