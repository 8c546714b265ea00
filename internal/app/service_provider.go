package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/gomail.v2"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/campushub/backend/internal/adapters/config"
	"github.com/campushub/backend/internal/adapters/primary/httpapi"
	"github.com/campushub/backend/internal/adapters/secondary/github"
	"github.com/campushub/backend/internal/adapters/secondary/postgres"
	"github.com/campushub/backend/internal/adapters/secondary/redis"
	"github.com/campushub/backend/internal/adapters/secondary/smtp"
	"github.com/campushub/backend/internal/adapters/secondary/storage"
	"github.com/campushub/backend/internal/domain/service"
	"github.com/campushub/backend/internal/ports/primary"
	"github.com/campushub/backend/internal/ports/secondary"
	"github.com/campushub/backend/pkg/logger"
)

type serviceProvider struct {
	// Configuration
	cfg *config.Config

	// Infrastructure
	db          *gorm.DB
	redisClient *redis.Client
	smtpDialer  *gomail.Dialer
	smtpClient  secondary.SMTPClient
	minioClient *storage.MinioClient
	repoFetcher secondary.RepoMetadataFetcher

	// Storage layer
	userRepo         secondary.UserRepository
	profileRepo      secondary.ProfileRepository
	clubRepo         secondary.ClubRepository
	clubMemberRepo   secondary.ClubMemberRepository
	announcementRepo secondary.AnnouncementRepository
	eventRepo        secondary.EventRepository
	registrationRepo secondary.RegistrationRepository
	teamRepo         secondary.TeamRepository
	teamInviteRepo   secondary.TeamInvitationRepository
	notificationRepo secondary.NotificationRepository
	resourceRepo     secondary.ResourceRepository
	projectRepo      secondary.ProjectRepository
	pollRepo         secondary.PollRepository

	// Service layer
	userService         primary.UserService
	clubService         primary.ClubService
	eventService        primary.EventService
	teamService         primary.TeamService
	notificationService primary.NotificationService
	leaderboardService  primary.LeaderboardService
	resourceService     primary.ResourceService
	projectService      primary.ProjectService
	pollService         primary.PollService

	// Handlers
	authHandler         *httpapi.AuthHandler
	profileHandler      *httpapi.ProfileHandler
	clubHandler         *httpapi.ClubHandler
	eventHandler        *httpapi.EventHandler
	teamHandler         *httpapi.TeamHandler
	notificationHandler *httpapi.NotificationHandler
	contentHandler      *httpapi.ContentHandler
	binaryHandler       *httpapi.BinaryHandler
}

func newServiceProvider() *serviceProvider {
	cfg, err := config.NewConfig()
	if err != nil {
		panic(fmt.Errorf("failed to create config: %w", err))
	}

	return &serviceProvider{
		cfg: cfg,
	}
}

// Infrastructure dependencies

func (s *serviceProvider) DB() *gorm.DB {
	if s.db == nil {
		var gormConfig *gorm.Config
		if s.cfg.Logger.Debug {
			newLogger := gormLogger.New(
				log.New(os.Stdout, "\r\n", log.LstdFlags),
				gormLogger.Config{
					SlowThreshold: time.Second,
					LogLevel:      gormLogger.Info,
					Colorful:      true,
				},
			)
			gormConfig = &gorm.Config{
				TranslateError: true,
				Logger:         newLogger,
			}
		} else {
			gormConfig = &gorm.Config{
				TranslateError: true,
			}
		}

		dsn := s.cfg.PG.DSN()

		database, err := gorm.Open(postgresDriver.Open(dsn), gormConfig)
		if err != nil {
			panic(fmt.Errorf("failed to connect to the database: %w", err))
		}
		logger.Log.Info("Successfully connected to the database")

		sqlDB, err := database.DB()
		if err != nil {
			panic(fmt.Errorf("failed to get underlying sql.DB: %w", err))
		}

		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(1 * time.Minute)

		errMigrate := database.AutoMigrate(postgres.Migrations...)
		if errMigrate != nil {
			panic(fmt.Errorf("failed to migrate database: %w", errMigrate))
		}

		s.db = database
	}

	return s.db
}

func (s *serviceProvider) RedisClient() *redis.Client {
	if s.redisClient == nil {
		r, err := redis.New(redis.Options{
			Host:           s.cfg.Redis.Host,
			Port:           s.cfg.Redis.Port,
			Password:       s.cfg.Redis.Password,
			StateTTL:       s.cfg.App.OAuthStateTTL,
			LeaderboardTTL: s.cfg.App.LeaderboardTTL,
		})
		if err != nil {
			panic(fmt.Errorf("failed to connect to redis: %w", err))
		}

		s.redisClient = r
	}

	return s.redisClient
}

func (s *serviceProvider) SMTPDialer() *gomail.Dialer {
	if s.smtpDialer == nil {
		s.smtpDialer = gomail.NewDialer(
			s.cfg.SMTP.Host,
			s.cfg.SMTP.Port,
			s.cfg.SMTP.Login,
			s.cfg.SMTP.Password,
		)
	}

	return s.smtpDialer
}

// SMTPClient returns nil when email delivery is disabled; services treat a
// nil client as "skip sending".
func (s *serviceProvider) SMTPClient() secondary.SMTPClient {
	if s.smtpClient == nil && s.cfg.SMTP.Enabled {
		s.smtpClient = smtp.NewClient(s.SMTPDialer(), s.cfg.SMTP.From)
	}

	return s.smtpClient
}

func (s *serviceProvider) MinioClient() *storage.MinioClient {
	if s.minioClient == nil {
		m, err := storage.NewMinioClient(storage.MinioOptions{
			Endpoint:       s.cfg.Minio.Endpoint,
			AccessKey:      s.cfg.Minio.AccessKey,
			SecretKey:      s.cfg.Minio.SecretKey,
			Bucket:         s.cfg.Minio.Bucket,
			UseSSL:         s.cfg.Minio.UseSSL,
			PublicEndpoint: s.cfg.Minio.PublicEndpoint,
		})
		if err != nil {
			panic(fmt.Errorf("failed to create minio client: %w", err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if errBucket := m.EnsureBucket(ctx); errBucket != nil {
			panic(fmt.Errorf("failed to ensure minio bucket: %w", errBucket))
		}

		s.minioClient = m
	}

	return s.minioClient
}

func (s *serviceProvider) RepoFetcher() secondary.RepoMetadataFetcher {
	if s.repoFetcher == nil {
		s.repoFetcher = github.NewRepoFetcher()
	}

	return s.repoFetcher
}

// Storage layer

func (s *serviceProvider) UserRepo() secondary.UserRepository {
	if s.userRepo == nil {
		s.userRepo = postgres.NewUserRepository(s.DB())
	}

	return s.userRepo
}

func (s *serviceProvider) ProfileRepo() secondary.ProfileRepository {
	if s.profileRepo == nil {
		s.profileRepo = postgres.NewProfileRepository(s.DB())
	}

	return s.profileRepo
}

func (s *serviceProvider) ClubRepo() secondary.ClubRepository {
	if s.clubRepo == nil {
		s.clubRepo = postgres.NewClubRepository(s.DB())
	}

	return s.clubRepo
}

func (s *serviceProvider) ClubMemberRepo() secondary.ClubMemberRepository {
	if s.clubMemberRepo == nil {
		s.clubMemberRepo = postgres.NewClubMemberRepository(s.DB())
	}

	return s.clubMemberRepo
}

func (s *serviceProvider) AnnouncementRepo() secondary.AnnouncementRepository {
	if s.announcementRepo == nil {
		s.announcementRepo = postgres.NewAnnouncementRepository(s.DB())
	}

	return s.announcementRepo
}

func (s *serviceProvider) EventRepo() secondary.EventRepository {
	if s.eventRepo == nil {
		s.eventRepo = postgres.NewEventRepository(s.DB())
	}

	return s.eventRepo
}

func (s *serviceProvider) RegistrationRepo() secondary.RegistrationRepository {
	if s.registrationRepo == nil {
		s.registrationRepo = postgres.NewRegistrationRepository(s.DB())
	}

	return s.registrationRepo
}

func (s *serviceProvider) TeamRepo() secondary.TeamRepository {
	if s.teamRepo == nil {
		s.teamRepo = postgres.NewTeamRepository(s.DB())
	}

	return s.teamRepo
}

func (s *serviceProvider) TeamInviteRepo() secondary.TeamInvitationRepository {
	if s.teamInviteRepo == nil {
		s.teamInviteRepo = postgres.NewTeamInvitationRepository(s.DB())
	}

	return s.teamInviteRepo
}

func (s *serviceProvider) NotificationRepo() secondary.NotificationRepository {
	if s.notificationRepo == nil {
		s.notificationRepo = postgres.NewNotificationRepository(s.DB())
	}

	return s.notificationRepo
}

func (s *serviceProvider) ResourceRepo() secondary.ResourceRepository {
	if s.resourceRepo == nil {
		s.resourceRepo = postgres.NewResourceRepository(s.DB())
	}

	return s.resourceRepo
}

func (s *serviceProvider) ProjectRepo() secondary.ProjectRepository {
	if s.projectRepo == nil {
		s.projectRepo = postgres.NewProjectRepository(s.DB())
	}

	return s.projectRepo
}

func (s *serviceProvider) PollRepo() secondary.PollRepository {
	if s.pollRepo == nil {
		s.pollRepo = postgres.NewPollRepository(s.DB())
	}

	return s.pollRepo
}

// Service layer

func (s *serviceProvider) UserService() primary.UserService {
	if s.userService == nil {
		s.userService = service.NewUserService(
			s.UserRepo(),
			s.ProfileRepo(),
		)
	}

	return s.userService
}

func (s *serviceProvider) ClubService() primary.ClubService {
	if s.clubService == nil {
		s.clubService = service.NewClubService(
			s.ClubRepo(),
			s.ClubMemberRepo(),
			s.AnnouncementRepo(),
			s.ProfileRepo(),
			s.MinioClient(),
		)
	}

	return s.clubService
}

func (s *serviceProvider) EventService() primary.EventService {
	if s.eventService == nil {
		s.eventService = service.NewEventService(
			logger.Named("event"),
			s.EventRepo(),
			s.RegistrationRepo(),
			s.ClubService(),
			s.UserService(),
			s.cfg.App.AttendanceXP,
			s.cfg.App.FrontendURL,
		)
	}

	return s.eventService
}

func (s *serviceProvider) TeamService() primary.TeamService {
	if s.teamService == nil {
		s.teamService = service.NewTeamService(
			s.TeamRepo(),
			s.TeamInviteRepo(),
			s.NotificationRepo(),
			s.ProfileRepo(),
			s.NotificationService(),
		)
	}

	return s.teamService
}

func (s *serviceProvider) NotificationService() primary.NotificationService {
	if s.notificationService == nil {
		s.notificationService = service.NewNotificationService(
			logger.Named("notify"),
			s.NotificationRepo(),
			s.RegistrationRepo(),
			s.UserRepo(),
			s.SMTPClient(),
			s.cfg.App.ReminderInterval,
			s.cfg.App.ReminderWindow,
		)
	}

	return s.notificationService
}

func (s *serviceProvider) LeaderboardService() primary.LeaderboardService {
	if s.leaderboardService == nil {
		s.leaderboardService = service.NewLeaderboardService(
			logger.Named("leaderboard"),
			s.ProfileRepo(),
			s.TeamRepo(),
			s.RedisClient().Leaderboards,
			s.cfg.App.LeaderboardSize,
		)
	}

	return s.leaderboardService
}

func (s *serviceProvider) ResourceService() primary.ResourceService {
	if s.resourceService == nil {
		s.resourceService = service.NewResourceService(s.ResourceRepo())
	}

	return s.resourceService
}

func (s *serviceProvider) ProjectService() primary.ProjectService {
	if s.projectService == nil {
		s.projectService = service.NewProjectService(
			s.ProjectRepo(),
			s.RepoFetcher(),
		)
	}

	return s.projectService
}

func (s *serviceProvider) PollService() primary.PollService {
	if s.pollService == nil {
		s.pollService = service.NewPollService(s.PollRepo())
	}

	return s.pollService
}

// Handlers

func (s *serviceProvider) AuthHandler() *httpapi.AuthHandler {
	if s.authHandler == nil {
		s.authHandler = httpapi.NewAuthHandler(
			s.UserService(),
			s.RedisClient().States,
			httpapi.AuthOptions{
				JWTSecret:    s.cfg.JWT.Secret,
				TokenTTL:     s.cfg.JWT.TTL,
				ClientID:     s.cfg.GitHub.ClientID,
				ClientSecret: s.cfg.GitHub.ClientSecret,
				RedirectURL:  s.cfg.GitHub.RedirectURL,
				FrontendURL:  s.cfg.App.FrontendURL,
			},
		)
	}

	return s.authHandler
}

func (s *serviceProvider) ProfileHandler() *httpapi.ProfileHandler {
	if s.profileHandler == nil {
		s.profileHandler = httpapi.NewProfileHandler(s.UserService())
	}

	return s.profileHandler
}

func (s *serviceProvider) ClubHandler() *httpapi.ClubHandler {
	if s.clubHandler == nil {
		s.clubHandler = httpapi.NewClubHandler(s.ClubService())
	}

	return s.clubHandler
}

func (s *serviceProvider) EventHandler() *httpapi.EventHandler {
	if s.eventHandler == nil {
		s.eventHandler = httpapi.NewEventHandler(s.EventService())
	}

	return s.eventHandler
}

func (s *serviceProvider) TeamHandler() *httpapi.TeamHandler {
	if s.teamHandler == nil {
		s.teamHandler = httpapi.NewTeamHandler(s.TeamService())
	}

	return s.teamHandler
}

func (s *serviceProvider) NotificationHandler() *httpapi.NotificationHandler {
	if s.notificationHandler == nil {
		s.notificationHandler = httpapi.NewNotificationHandler(s.NotificationService())
	}

	return s.notificationHandler
}

func (s *serviceProvider) ContentHandler() *httpapi.ContentHandler {
	if s.contentHandler == nil {
		s.contentHandler = httpapi.NewContentHandler(
			s.LeaderboardService(),
			s.ResourceService(),
			s.ProjectService(),
			s.PollService(),
		)
	}

	return s.contentHandler
}

func (s *serviceProvider) BinaryHandler() *httpapi.BinaryHandler {
	if s.binaryHandler == nil {
		s.binaryHandler = httpapi.NewBinaryHandler(
			s.EventService(),
			s.ClubService(),
		)
	}

	return s.binaryHandler
}

// Cfg returns the config
func (s *serviceProvider) Cfg() *config.Config {
	return s.cfg
}
