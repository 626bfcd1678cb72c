package optimizer

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidGoalCatalog wraps every goal catalog validation failure
var ErrInvalidGoalCatalog = errors.New("invalid goal catalog")

// GoalInfo is the display metadata for one goal
type GoalInfo struct {
	ID          Goal   `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
	Icon        string `yaml:"icon" json:"icon"`
	Group       string `yaml:"-" json:"group"`
}

// GoalGroup is a named set of goals shown together
type GoalGroup struct {
	Name  string     `yaml:"name" json:"name"`
	Goals []GoalInfo `yaml:"goals" json:"goals"`
}

type goalFile struct {
	Version     string      `yaml:"version"`
	Description string      `yaml:"description"`
	Groups      []GoalGroup `yaml:"groups"`
}

// GoalCatalog is the immutable goal metadata table
type GoalCatalog struct {
	groups []GoalGroup
	byID   map[Goal]GoalInfo
}

// LoadGoalCatalog reads and validates a goal catalog YAML file
func LoadGoalCatalog(path string) (*GoalCatalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadGoalCatalog, err)
	}
	return ParseGoalCatalog(data)
}

// ParseGoalCatalog decodes goal catalog YAML. Every Goal must be described
// exactly once.
func ParseGoalCatalog(data []byte) (*GoalCatalog, error) {
	var file goalFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgDecodeGoalCatalog, err)
	}

	gc := &GoalCatalog{byID: make(map[Goal]GoalInfo, len(Goals))}
	for _, group := range file.Groups {
		g := GoalGroup{Name: group.Name, Goals: make([]GoalInfo, 0, len(group.Goals))}
		for _, info := range group.Goals {
			id, err := ParseGoal(string(info.ID))
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidGoalCatalog, err)
			}
			if _, dup := gc.byID[id]; dup {
				return nil, fmt.Errorf("%w: %s %q", ErrInvalidGoalCatalog, ErrMsgDuplicateGoal, id)
			}
			info.ID = id
			info.Group = group.Name
			gc.byID[id] = info
			g.Goals = append(g.Goals, info)
		}
		gc.groups = append(gc.groups, g)
	}

	for _, goal := range Goals {
		if _, ok := gc.byID[goal]; !ok {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidGoalCatalog, ErrMsgMissingGoal, goal)
		}
	}
	return gc, nil
}

// Get returns the metadata for goal
func (gc *GoalCatalog) Get(goal Goal) (GoalInfo, bool) {
	info, ok := gc.byID[goal]
	return info, ok
}

// All returns every goal's metadata in file order
func (gc *GoalCatalog) All() []GoalInfo {
	out := make([]GoalInfo, 0, len(gc.byID))
	for _, g := range gc.groups {
		out = append(out, g.Goals...)
	}
	return out
}

// Grouped returns the goals grouped by category, groups and goals in file order
func (gc *GoalCatalog) Grouped() []GoalGroup {
	out := make([]GoalGroup, len(gc.groups))
	for i, g := range gc.groups {
		out[i] = GoalGroup{Name: g.Name, Goals: append([]GoalInfo(nil), g.Goals...)}
	}
	return out
}
