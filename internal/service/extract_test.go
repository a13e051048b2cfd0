package service

import (
	"encoding/json"
	"testing"

	"github.com/skyblockcheck/checker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawProfile(t *testing.T, s string) domain.RawProfile {
	t.Helper()
	var p domain.RawProfile
	require.NoError(t, json.Unmarshal([]byte(s), &p))
	return p
}

func TestExtractSummary_V2Layout(t *testing.T) {
	p := rawProfile(t, `{
		"profile_id": "abc",
		"cute_name": "Mango",
		"game_mode": "ironman",
		"banking": {"balance": 1500000.456},
		"members": {
			"069a79f444e94726a5befca90e38aaf5": {
				"leveling": {"experience": 12345.9},
				"currencies": {"coin_purse": 9876.54},
				"player_data": {"experience": {"SKILL_MINING": 1000.4, "SKILL_COMBAT": 250.6}}
			}
		}
	}`)

	s := ExtractSummary(p, notchUUID)

	assert.Equal(t, "abc", s.ProfileID)
	assert.Equal(t, "Mango", s.Name)
	assert.Equal(t, "ironman", s.GameMode)
	require.NotNil(t, s.Experience)
	assert.Equal(t, int64(12345), *s.Experience)
	require.NotNil(t, s.Level)
	assert.Equal(t, 123, *s.Level)
	assert.InDelta(t, 9876.54, s.Purse, 1e-9)
	require.NotNil(t, s.Bank)
	assert.InDelta(t, 1500000.456, *s.Bank, 1e-9)
	assert.Equal(t, map[string]int64{"mining": 1000, "combat": 251}, s.Skills)
}

func TestExtractSummary_LegacyLayout(t *testing.T) {
	p := rawProfile(t, `{
		"cute_name": "Apple",
		"members": {
			"069a79f444e94726a5befca90e38aaf5": {
				"coin_purse": 42.5,
				"experience_skill_farming": 77,
				"experience_skill_taming": 3
			}
		}
	}`)

	s := ExtractSummary(p, notchUUID)

	assert.InDelta(t, 42.5, s.Purse, 1e-9)
	assert.Equal(t, map[string]int64{"farming": 77, "taming": 3}, s.Skills)
	assert.Nil(t, s.Level)
	assert.Nil(t, s.Experience)
}

func TestExtractSummary_NoBank(t *testing.T) {
	p := rawProfile(t, `{"cute_name":"Apple","members":{"069a79f444e94726a5befca90e38aaf5":{"currencies":{"coin_purse":1}}}}`)

	s := ExtractSummary(p, notchUUID)
	assert.Nil(t, s.Bank)
	assert.InDelta(t, 1.0, s.Purse, 1e-9)
}

func TestExtractSummary_MissingEverything(t *testing.T) {
	s := ExtractSummary(domain.RawProfile{}, notchUUID)

	assert.Equal(t, "Unknown", s.Name)
	assert.Empty(t, s.GameMode)
	assert.Nil(t, s.Level)
	assert.Nil(t, s.Bank)
	assert.Zero(t, s.Purse)
	assert.Nil(t, s.Skills)
}

func TestExtractSummary_WrongTypesIgnored(t *testing.T) {
	p := rawProfile(t, `{
		"cute_name": 7,
		"banking": "none",
		"members": {
			"069a79f444e94726a5befca90e38aaf5": {
				"leveling": {"experience": "lots"},
				"currencies": [],
				"experience_skill_mining": null
			}
		}
	}`)

	s := ExtractSummary(p, notchUUID)
	assert.Equal(t, "Unknown", s.Name)
	assert.Nil(t, s.Bank)
	assert.Nil(t, s.Level)
	assert.Zero(t, s.Purse)
	assert.Nil(t, s.Skills)
}

func TestExtractSummary_DashedMemberKey(t *testing.T) {
	p := rawProfile(t, `{"members":{"069a79f4-44e9-4726-a5be-fca90e38aaf5":{"coin_purse":5}}}`)

	s := ExtractSummary(p, notchUUID)
	assert.InDelta(t, 5.0, s.Purse, 1e-9)
}

func TestExtractSummary_OtherMemberIgnored(t *testing.T) {
	p := rawProfile(t, `{"members":{"ffffffffffffffffffffffffffffffff":{"coin_purse":5}}}`)

	s := ExtractSummary(p, notchUUID)
	assert.Zero(t, s.Purse)
}
