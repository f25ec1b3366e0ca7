package player

import (
	"fmt"
	"strconv"
	"strings"
)

// AI strength, the value is the deepest level of its search tree
type Skill int

const (
	Novice Skill = iota + 1
	Medium
	Expert
	Master
)

func (s Skill) Depth() int {
	return int(s)
}

func (s Skill) Valid() bool {
	return s >= Novice && s <= Master
}

func (s Skill) String() string {
	switch s {
	case Novice:
		return "Novice"
	case Medium:
		return "Medium"
	case Expert:
		return "Expert"
	case Master:
		return "Master"
	default:
		return fmt.Sprintf("Skill(%d)", int(s))
	}
}

// Accepts a level number or its name, case insensitive
func ParseSkill(s string) (Skill, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if skill := Skill(n); skill.Valid() {
			return skill, nil
		}
		return 0, fmt.Errorf("skill %d out of range [%d, %d]", n, Novice, Master)
	}
	for skill := Novice; skill <= Master; skill++ {
		if strings.EqualFold(skill.String(), s) {
			return skill, nil
		}
	}
	return 0, fmt.Errorf("skill %q is unknown", s)
}
