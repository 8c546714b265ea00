package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/validator"
	"github.com/campushub/backend/internal/ports/secondary"
)

type UserService struct {
	userRepo    secondary.UserRepository
	profileRepo secondary.ProfileRepository
}

func NewUserService(userRepo secondary.UserRepository, profileRepo secondary.ProfileRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *UserService) Register(ctx context.Context, email, password, username, fullName string) (*entity.User, error) {
	if !validator.Email(email) {
		return nil, fmt.Errorf("%w: invalid email", errorz.ErrValidation)
	}
	if !validator.Password(password) {
		return nil, fmt.Errorf("%w: password must be 8-72 characters", errorz.ErrValidation)
	}
	if !validator.Username(username) {
		return nil, fmt.Errorf("%w: username must be 3-30 letters, digits or underscores", errorz.ErrValidation)
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errorz.ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	profile := &entity.Profile{
		Username: username,
		FullName: fullName,
	}

	if err = s.userRepo.CreateWithProfile(ctx, user, profile); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.ErrUsernameTaken
		}
		return nil, err
	}

	return user, nil
}

func (s *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.PasswordHash == "" {
		// OAuth-only account.
		return nil, errorz.ErrInvalidCredentials
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorz.ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetOrCreateFromGitHub(ctx context.Context, githubID, email, login, name, avatarURL string) (*entity.User, error) {
	user, err := s.userRepo.GetByGitHubID(ctx, githubID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// GitHub may withhold the account email; synthesize a stable one so the
	// unique constraint holds.
	if email == "" {
		email = fmt.Sprintf("%s@users.noreply.github.com", login)
	}

	// An existing local account with the same email wins over provisioning a
	// duplicate.
	if existing, errByEmail := s.userRepo.GetByEmail(ctx, email); errByEmail == nil {
		return existing, nil
	} else if !errors.Is(errByEmail, gorm.ErrRecordNotFound) {
		return nil, errByEmail
	}

	user = &entity.User{
		Email:    email,
		GitHubID: githubID,
	}
	profile := &entity.Profile{
		Username:     login,
		FullName:     name,
		AvatarURL:    avatarURL,
		GitHubHandle: login,
	}

	err = s.userRepo.CreateWithProfile(ctx, user, profile)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Username collision with a local account: retry with a suffix
		// derived from the GitHub ID.
		profile.Username = fmt.Sprintf("%s_%s", login, githubID)
		err = s.userRepo.CreateWithProfile(ctx, user, profile)
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *UserService) MyProfile(ctx context.Context, userID string) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *UserService) UpdateMyProfile(ctx context.Context, userID string, upd dto.ProfileUpdate) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}

	if upd.FullName != nil {
		profile.FullName = strings.TrimSpace(*upd.FullName)
	}
	if upd.Bio != nil {
		profile.Bio = *upd.Bio
	}
	if upd.AvatarURL != nil {
		if !validator.Link(*upd.AvatarURL) {
			return nil, fmt.Errorf("%w: invalid avatar url", errorz.ErrValidation)
		}
		profile.AvatarURL = *upd.AvatarURL
	}
	if upd.GitHubHandle != nil {
		profile.GitHubHandle = *upd.GitHubHandle
	}
	if upd.TechStack != nil {
		profile.TechStack = *upd.TechStack
	}

	return s.profileRepo.Update(ctx, profile)
}

func (s *UserService) Search(ctx context.Context, query string) ([]dto.ProfileSummary, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []dto.ProfileSummary{}, nil
	}
	return s.profileRepo.Search(ctx, query, 5)
}

func (s *UserService) IsSuperAdmin(ctx context.Context, userID string) (bool, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return profile.IsSuperAdmin, nil
}
