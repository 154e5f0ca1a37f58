package service

import "math"

// The level curve: level = floor(sqrt(xp/100)) + 1, so level 1 spans
// 0-99 XP, level 2 spans 100-399, level 3 spans 400-899, and so on.

func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Sqrt(float64(xp)/100)) + 1
}

// XPThresholdForLevel returns the XP floor at which the given level
// begins. Pass level-1 for the current level's floor and level for the
// next level's.
func XPThresholdForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return level * level * 100
}

// LevelProgress returns the percentage of the way from the current
// level's floor to the next level's, clamped to [0, 100].
func LevelProgress(xp int) int {
	level := LevelForXP(xp)
	floor := XPThresholdForLevel(level - 1)
	ceil := XPThresholdForLevel(level)
	if ceil <= floor {
		return 0
	}
	pct := (xp - floor) * 100 / (ceil - floor)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
