package postgres

import "github.com/campushub/backend/internal/domain/entity"

// Migrations lists every entity passed to gorm's AutoMigrate on startup.
var Migrations = []interface{}{
	&entity.User{},
	&entity.Profile{},
	&entity.Club{},
	&entity.ClubMember{},
	&entity.ClubAnnouncement{},
	&entity.Event{},
	&entity.RegistrationFieldType{},
	&entity.EventRegistrationField{},
	&entity.EventRegistration{},
	&entity.EventRSVP{},
	&entity.Team{},
	&entity.TeamMember{},
	&entity.TeamInvitation{},
	&entity.Notification{},
	&entity.Resource{},
	&entity.Project{},
	&entity.ProjectLike{},
	&entity.Poll{},
	&entity.PollVote{},
}
