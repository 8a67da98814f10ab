package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hoa-be-svc/internal/models"
	"hoa-be-svc/internal/repository"
	"hoa-be-svc/pkg/logger"
)

// UserUpdate carries the updatable user fields; nil fields are left unchanged
type UserUpdate struct {
	Name       *string
	Email      *string
	ContactNo  *string
	HouseID    *uint
	ClearHouse bool
}

// UserService interface defines user service methods
type UserService interface {
	List(page, perPage int) ([]models.User, int64, error)
	Get(id uint) (*models.User, error)
	Update(callerID, id uint, update UserUpdate) (*models.User, error)
	Delete(callerID, id uint) error
}

// userService implements UserService interface
type userService struct {
	userRepo  repository.UserRepository
	houseRepo repository.HouseRepository
	logger    *logger.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, houseRepo repository.HouseRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepo:  userRepo,
		houseRepo: houseRepo,
		logger:    logger,
	}
}

func (s *userService) List(page, perPage int) ([]models.User, int64, error) {
	return s.userRepo.List((page-1)*perPage, perPage)
}

func (s *userService) Get(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewNotFoundError("user")
		}
		return nil, err
	}
	return user, nil
}

// Update applies the given changes to the caller's own account
func (s *userService) Update(callerID, id uint, update UserUpdate) (*models.User, error) {
	if callerID != id {
		return nil, NewForbiddenError("You may only update your own account.")
	}

	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.ContactNo != nil {
		user.ContactNo = *update.ContactNo
	}
	if update.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*update.Email))
		if email != user.Email {
			if _, err := s.userRepo.GetByEmail(email); err == nil {
				return nil, NewConflictError("email", "A user with this email already exists.")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, err
			}
		}
		user.Email = email
		user.Username = email
	}
	if update.ClearHouse {
		user.HouseID = nil
	} else if update.HouseID != nil {
		if _, err := s.houseRepo.GetByID(*update.HouseID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError("house", "House does not exist.")
			}
			return nil, err
		}
		user.HouseID = update.HouseID
	}

	if err := s.userRepo.Update(user); err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to update user")
		return nil, err
	}

	s.logger.WithField("user_id", id).Info("User updated successfully")
	return user, nil
}

// Delete removes the caller's own account and, through the schema's cascade
// rules, every record that belongs to it
func (s *userService) Delete(callerID, id uint) error {
	if callerID != id {
		return NewForbiddenError("You may only delete your own account.")
	}

	if _, err := s.Get(id); err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		s.logger.WithError(err).WithField("user_id", id).Error("Failed to delete user")
		return err
	}

	s.logger.WithField("user_id", id).Info("User deleted successfully")
	return nil
}
