package entities

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TeamField string

const (
	TeamID              TeamField = "_id"
	TeamEvent           TeamField = "event"
	TeamOwner           TeamField = "owner"
	TeamMembers         TeamField = "members"
	TeamCode            TeamField = "code"
	TeamRoles           TeamField = "team_roles"
	TeamCandidates      TeamField = "candidates"
	TeamName            TeamField = "name"
	TeamTagline         TeamField = "tagline"
	TeamDescription     TeamField = "description"
	TeamChallenge       TeamField = "challenge"
	TeamIdeaTitle       TeamField = "idea_title"
	TeamIdeaDescription TeamField = "idea_description"
	TeamEmail           TeamField = "email"
	TeamTelegram        TeamField = "telegram"
	TeamDiscord         TeamField = "discord"
	TeamSlack           TeamField = "slack"
)

// TeamRole is a single role a team is recruiting for
type TeamRole struct {
	Role string `json:"role" bson:"role" validate:"required"`
}

// TeamCandidate is a pending application to join a team
type TeamCandidate struct {
	UserID     string    `json:"userId" bson:"user_id" validate:"required"`
	Roles      []string  `json:"roles" bson:"roles,omitempty"`
	Motivation string    `json:"motivation" bson:"motivation,omitempty"`
	AppliedAt  time.Time `json:"appliedAt" bson:"applied_at"`
}

// Team is the struct to store teams.
// Owner is never present in Members and Code is immutable after creation.
type Team struct {
	ID         primitive.ObjectID `json:"_id" bson:"_id"`
	Event      string             `json:"event" bson:"event" validate:"required"`
	Owner      string             `json:"owner" bson:"owner" validate:"required"`
	Members    []string           `json:"members" bson:"members"`
	Code       string             `json:"code" bson:"code" validate:"required"`
	Roles      []TeamRole         `json:"teamRoles" bson:"team_roles"`
	Candidates []TeamCandidate    `json:"candidates" bson:"candidates"`

	Name            string `json:"name" bson:"name"`
	Tagline         string `json:"tagline" bson:"tagline"`
	Description     string `json:"description" bson:"description"`
	Challenge       string `json:"challenge" bson:"challenge"`
	IdeaTitle       string `json:"ideaTitle" bson:"idea_title"`
	IdeaDescription string `json:"ideaDescription" bson:"idea_description"`
	Email           string `json:"email" bson:"email"`
	Telegram        string `json:"telegram" bson:"telegram"`
	Discord         string `json:"discord" bson:"discord"`
	Slack           string `json:"slack" bson:"slack"`
}

// HasMember returns whether the user is on the team, as the owner or a member
func (t *Team) HasMember(userID string) bool {
	if t.Owner == userID {
		return true
	}
	for _, member := range t.Members {
		if member == userID {
			return true
		}
	}
	return false
}

// HasCandidate returns whether the user has a pending application to the team
func (t *Team) HasCandidate(userID string) bool {
	for _, candidate := range t.Candidates {
		if candidate.UserID == userID {
			return true
		}
	}
	return false
}

// Size returns the number of people on the team including the owner
func (t *Team) Size() int {
	return 1 + len(t.Members)
}

// RoleLabels returns the labels of the roles the team is recruiting for
func (t *Team) RoleLabels() []string {
	labels := make([]string, 0, len(t.Roles))
	for _, role := range t.Roles {
		labels = append(labels, role.Role)
	}
	return labels
}
