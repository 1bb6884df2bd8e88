package models

import "time"

// Candidate is one row of an uploaded candidate list
type Candidate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Slot is a single interview interval assigned to one candidate
type Slot struct {
	Candidate Candidate `json:"candidate"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

// Schedule is the ordered sequence of slots, one per input candidate
type Schedule []Slot

// ScheduleRecord is a computed schedule kept around so the caller can
// fetch it again for rendering or export
type ScheduleRecord struct {
	ID        string    `json:"schedule_id"`
	Slots     Schedule  `json:"slots"`
	CreatedAt time.Time `json:"created_at"`
}

// Project represents an entry in the remote project registry
type Project struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewProject is the payload for creating a project
type NewProject struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	RequiredSkill string `json:"required_skill"`
}

// Member is a team member returned by the assignment service.
// Skills stays the comma-separated wire string the service returns.
type Member struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	Role             string `json:"role"`
	Skills           string `json:"skills"`
	ProficiencyLevel int    `json:"proficiency_level"`
}

// TeamAssignment is the assignment breakdown for one project
type TeamAssignment struct {
	FrontendDeveloper *Member  `json:"frontend_developer"`
	BackendDeveloper  *Member  `json:"backend_developer"`
	AIMLEngineers     []Member `json:"aiml_engineers"`
}

// RankedCandidate is one candidate evaluation from the resume ranking
// service. Output is free text with an embedded "X.Y/10" rating.
type RankedCandidate struct {
	Name   string `json:"Name"`
	Email  string `json:"Email"`
	Output string `json:"output"`
}

// RankingResult is the resume ranking service response
type RankingResult struct {
	JobRole     string            `json:"job_role"`
	JobSkills   string            `json:"job_skills"`
	Description string            `json:"description"`
	Candidates  []RankedCandidate `json:"candidates"`
}
