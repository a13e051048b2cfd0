package domain

import "encoding/json"

// Skills lists the SkyBlock skills in display order.
var Skills = []string{
	"mining",
	"farming",
	"combat",
	"foraging",
	"fishing",
	"enchanting",
	"alchemy",
	"taming",
	"carpentry",
	"runecrafting",
	"social",
}

// ExperiencePerLevel is the SkyBlock experience needed for each level.
const ExperiencePerLevel = 100

// LevelForExperience converts SkyBlock experience to a level.
func LevelForExperience(exp int64) int {
	if exp < 0 {
		return 0
	}
	return int(exp / ExperiencePerLevel)
}

// RawProfile is one undecoded element of the upstream profiles array.
type RawProfile map[string]any

// ProfilesEnvelope is a successful profile listing before extraction.
type ProfilesEnvelope struct {
	Profiles []RawProfile
	Body     json.RawMessage
}

// ProfileSummary is the read-only view of one profile shown to the user.
type ProfileSummary struct {
	ProfileID string `json:"profile_id,omitempty" yaml:"profile_id,omitempty"`
	Name      string `json:"name" yaml:"name"`
	Selected  bool   `json:"selected" yaml:"selected"`
	GameMode  string `json:"game_mode,omitempty" yaml:"game_mode,omitempty"`
	// Level and Experience are nil when the member has no leveling data.
	Level      *int     `json:"level,omitempty" yaml:"level,omitempty"`
	Experience *int64   `json:"experience,omitempty" yaml:"experience,omitempty"`
	Purse      float64  `json:"purse" yaml:"purse"`
	// Bank is nil when the profile has no bank account.
	Bank   *float64         `json:"bank,omitempty" yaml:"bank,omitempty"`
	Skills map[string]int64 `json:"skills,omitempty" yaml:"skills,omitempty"`
}

// ProfileSet is every profile returned for one player.
type ProfileSet struct {
	UUID     string           `json:"uuid" yaml:"uuid"`
	Profiles []ProfileSummary `json:"profiles" yaml:"profiles"`
	// SelectedIndex is -1 when upstream flagged no profile.
	SelectedIndex int             `json:"-" yaml:"-"`
	SelectedID    string          `json:"selected_id,omitempty" yaml:"selected_id,omitempty"`
	Raw           json.RawMessage `json:"-" yaml:"-"`
}

// Selected returns the profile flagged active upstream.
func (s *ProfileSet) Selected() (*ProfileSummary, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.Profiles) {
		return nil, false
	}
	return &s.Profiles[s.SelectedIndex], true
}
