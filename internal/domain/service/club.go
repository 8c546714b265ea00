package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campushub/backend/internal/domain/common/errorz"
	"github.com/campushub/backend/internal/domain/dto"
	"github.com/campushub/backend/internal/domain/entity"
	"github.com/campushub/backend/internal/domain/utils/validator"
	"github.com/campushub/backend/internal/ports/secondary"
)

type ClubService struct {
	clubRepo         secondary.ClubRepository
	memberRepo       secondary.ClubMemberRepository
	announcementRepo secondary.AnnouncementRepository
	profileRepo      secondary.ProfileRepository
	storage          secondary.ObjectStorage
}

func NewClubService(
	clubRepo secondary.ClubRepository,
	memberRepo secondary.ClubMemberRepository,
	announcementRepo secondary.AnnouncementRepository,
	profileRepo secondary.ProfileRepository,
	storage secondary.ObjectStorage,
) *ClubService {
	return &ClubService{
		clubRepo:         clubRepo,
		memberRepo:       memberRepo,
		announcementRepo: announcementRepo,
		profileRepo:      profileRepo,
		storage:          storage,
	}
}

func (s *ClubService) List(ctx context.Context) ([]entity.Club, error) {
	return s.clubRepo.GetAll(ctx)
}

func (s *ClubService) Get(ctx context.Context, id string) (*entity.Club, error) {
	club, err := s.clubRepo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return club, nil
}

func (s *ClubService) Create(ctx context.Context, actorID string, club *entity.Club) (*entity.Club, error) {
	if err := s.requireSuperAdmin(ctx, actorID); err != nil {
		return nil, err
	}
	if !validator.ClubName(club.Name) {
		return nil, fmt.Errorf("%w: club name must be 3-60 characters", errorz.ErrValidation)
	}
	if !validator.ClubDescription(club.Description) {
		return nil, fmt.Errorf("%w: description too long", errorz.ErrValidation)
	}

	created, err := s.clubRepo.Create(ctx, club)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errorz.ErrClubNameTaken
		}
		return nil, err
	}
	return created, nil
}

func (s *ClubService) Delete(ctx context.Context, actorID, clubID string) error {
	if err := s.requireSuperAdmin(ctx, actorID); err != nil {
		return err
	}
	return s.clubRepo.Delete(ctx, clubID)
}

func (s *ClubService) SetBanner(ctx context.Context, actorID, clubID string, reader io.Reader, size int64, contentType string) (string, error) {
	if err := s.RequireRole(ctx, clubID, actorID, entity.ClubRoleAdmin, entity.ClubRoleModerator); err != nil {
		return "", err
	}

	club, err := s.Get(ctx, clubID)
	if err != nil {
		return "", err
	}

	ext := ".png"
	if contentType == "image/jpeg" {
		ext = ".jpg"
	}
	objectName := path.Join("banners", clubID, uuid.NewString()+ext)

	url, err := s.storage.Upload(ctx, objectName, reader, size, contentType)
	if err != nil {
		return "", err
	}

	club.BannerURL = url
	if _, err = s.clubRepo.Update(ctx, club); err != nil {
		return "", err
	}
	return url, nil
}

func (s *ClubService) Apply(ctx context.Context, clubID, userID string) error {
	if _, err := s.Get(ctx, clubID); err != nil {
		return err
	}

	_, err := s.memberRepo.Create(ctx, &entity.ClubMember{
		ClubID: clubID,
		UserID: userID,
		Status: entity.MembershipPending,
		Role:   entity.ClubRoleMember,
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return errorz.ErrAlreadyApplied
	}
	return err
}

func (s *ClubService) ProcessApplication(ctx context.Context, actorID, membershipID, action string) error {
	member, err := s.memberRepo.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrNotFound
		}
		return err
	}

	if err = s.RequireRole(ctx, member.ClubID, actorID, entity.ClubRoleAdmin, entity.ClubRoleModerator); err != nil {
		return err
	}

	switch action {
	case "approve":
		return s.memberRepo.UpdateStatus(ctx, membershipID, entity.MembershipActive)
	case "reject":
		return s.memberRepo.Delete(ctx, membershipID)
	default:
		return fmt.Errorf("%w: unknown action %q", errorz.ErrValidation, action)
	}
}

// AssignRole appoints a leader: the membership is upserted as active with the
// given role, so appointment works for applicants and outsiders alike.
func (s *ClubService) AssignRole(ctx context.Context, actorID, clubID, userID string, role entity.ClubRole) error {
	if err := s.RequireRole(ctx, clubID, actorID, entity.ClubRoleAdmin); err != nil {
		return err
	}
	if role != entity.ClubRoleAdmin && role != entity.ClubRoleModerator && role != entity.ClubRoleMember {
		return fmt.Errorf("%w: unknown role %q", errorz.ErrValidation, role)
	}

	return s.memberRepo.Upsert(ctx, &entity.ClubMember{
		ClubID: clubID,
		UserID: userID,
		Status: entity.MembershipActive,
		Role:   role,
	})
}

func (s *ClubService) RemoveLeader(ctx context.Context, actorID, membershipID string) error {
	member, err := s.memberRepo.GetByID(ctx, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrNotFound
		}
		return err
	}

	if err = s.RequireRole(ctx, member.ClubID, actorID, entity.ClubRoleAdmin); err != nil {
		return err
	}

	return s.memberRepo.Delete(ctx, membershipID)
}

func (s *ClubService) MyMembership(ctx context.Context, clubID, userID string) (*entity.ClubMember, error) {
	member, err := s.memberRepo.Get(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorz.ErrNotFound
		}
		return nil, err
	}
	return member, nil
}

func (s *ClubService) MyMemberships(ctx context.Context, userID string) ([]dto.MembershipSummary, error) {
	return s.memberRepo.GetByUserID(ctx, userID)
}

func (s *ClubService) Applicants(ctx context.Context, actorID, clubID string) ([]dto.ClubMemberInfo, error) {
	if err := s.RequireRole(ctx, clubID, actorID, entity.ClubRoleAdmin, entity.ClubRoleModerator); err != nil {
		return nil, err
	}
	return s.memberRepo.GetApplicants(ctx, clubID)
}

func (s *ClubService) Members(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	return s.memberRepo.GetActiveMembers(ctx, clubID)
}

func (s *ClubService) Leaders(ctx context.Context, clubID string) ([]dto.ClubMemberInfo, error) {
	return s.memberRepo.GetLeaders(ctx, clubID)
}

func (s *ClubService) PostAnnouncement(ctx context.Context, actorID, clubID, title, content string) error {
	if err := s.RequireRole(ctx, clubID, actorID, entity.ClubRoleAdmin, entity.ClubRoleModerator); err != nil {
		return err
	}
	if !validator.AnnouncementTitle(title) {
		return fmt.Errorf("%w: announcement title must be 1-120 characters", errorz.ErrValidation)
	}

	_, err := s.announcementRepo.Create(ctx, &entity.ClubAnnouncement{
		ClubID:   clubID,
		AuthorID: actorID,
		Title:    title,
		Content:  content,
	})
	return err
}

// Announcements are visible to active members only.
func (s *ClubService) Announcements(ctx context.Context, userID, clubID string) ([]dto.Announcement, error) {
	if err := s.RequireRole(ctx, clubID, userID,
		entity.ClubRoleAdmin, entity.ClubRoleModerator, entity.ClubRoleMember); err != nil {
		return nil, err
	}
	return s.announcementRepo.GetByClubID(ctx, clubID)
}

func (s *ClubService) RequireRole(ctx context.Context, clubID, userID string, roles ...entity.ClubRole) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err == nil && profile.IsSuperAdmin {
		return nil
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	member, err := s.memberRepo.Get(ctx, clubID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrForbidden
		}
		return err
	}
	if member.Status != entity.MembershipActive {
		return errorz.ErrForbidden
	}

	for _, role := range roles {
		if member.Role == role {
			return nil
		}
	}
	return errorz.ErrForbidden
}

func (s *ClubService) requireSuperAdmin(ctx context.Context, userID string) error {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errorz.ErrForbidden
		}
		return err
	}
	if !profile.IsSuperAdmin {
		return errorz.ErrForbidden
	}
	return nil
}
