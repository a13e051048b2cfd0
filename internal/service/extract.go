package service

import (
	"math"
	"strings"

	"github.com/skyblockcheck/checker/internal/domain"
)

// ExtractSummary builds the display view of one raw profile for the member
// memberUUID. Missing or mistyped fields become zero or absent.
func ExtractSummary(raw domain.RawProfile, memberUUID string) domain.ProfileSummary {
	summary := domain.ProfileSummary{
		ProfileID: stringAt(raw, "profile_id"),
		Name:      stringAt(raw, "cute_name"),
		GameMode:  stringAt(raw, "game_mode"),
	}
	if summary.Name == "" {
		summary.Name = "Unknown"
	}

	if balance, ok := numberAt(raw, "banking", "balance"); ok {
		summary.Bank = &balance
	}

	member := memberOf(raw, memberUUID)

	if exp, ok := numberAt(member, "leveling", "experience"); ok {
		e := int64(math.Floor(exp))
		level := domain.LevelForExperience(e)
		summary.Experience = &e
		summary.Level = &level
	}

	if purse, ok := numberAt(member, "currencies", "coin_purse"); ok {
		summary.Purse = purse
	} else if purse, ok := numberAt(member, "coin_purse"); ok {
		summary.Purse = purse
	}

	for _, skill := range domain.Skills {
		exp, ok := numberAt(member, "player_data", "experience", "SKILL_"+strings.ToUpper(skill))
		if !ok {
			exp, ok = numberAt(member, "experience_skill_"+skill)
		}
		if !ok {
			continue
		}
		if summary.Skills == nil {
			summary.Skills = make(map[string]int64)
		}
		summary.Skills[skill] = int64(math.Round(exp))
	}

	return summary
}

// memberOf returns members[uuid], matching keys with or without dashes.
func memberOf(raw domain.RawProfile, memberUUID string) map[string]any {
	members, ok := raw["members"].(map[string]any)
	if !ok {
		return nil
	}
	if m, ok := members[memberUUID].(map[string]any); ok {
		return m
	}
	want := domain.NormalizeUUID(memberUUID)
	for k, v := range members {
		if domain.NormalizeUUID(k) == want {
			m, _ := v.(map[string]any)
			return m
		}
	}
	return nil
}

func valueAt(m map[string]any, keys ...string) (any, bool) {
	var cur any = m
	for _, k := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil, false
		}
		if cur, ok = obj[k]; !ok {
			return nil, false
		}
	}
	return cur, true
}

func numberAt(m map[string]any, keys ...string) (float64, bool) {
	v, ok := valueAt(m, keys...)
	if !ok {
		return 0, false
	}
	f, ok := v.(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func stringAt(m map[string]any, keys ...string) string {
	v, _ := valueAt(m, keys...)
	s, _ := v.(string)
	return s
}
