package content

// BodyKind classifies a celestial body.
type BodyKind string

const (
	KindStar   BodyKind = "star"
	KindPlanet BodyKind = "planet"
	KindMoon   BodyKind = "moon"
	KindDwarf  BodyKind = "dwarf"
)

// Hazard tags a body with an arrival rule.
type Hazard string

const (
	HazardNone   Hazard = ""
	HazardLethal Hazard = "lethal"
	// HazardFuelTrap strands a ship that arrives low on fuel.
	HazardFuelTrap Hazard = "fuel-trap"
	// HazardDamage may damage the ship on arrival.
	HazardDamage Hazard = "probabilistic-damage"
)

// Body is a travelable entity: a planet, moon, dwarf planet or star.
type Body struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Emoji       string   `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	Kind        BodyKind `yaml:"kind" json:"kind"`
	Distance    float64  `yaml:"distance" json:"distance"`
	FuelCost    int      `yaml:"fuel_cost" json:"fuelCost"`
	CanTravelTo []string `yaml:"can_travel_to,omitempty" json:"canTravelTo,omitempty"`
	Satellite   bool     `yaml:"satellite,omitempty" json:"satellite,omitempty"`
	Hazard      Hazard   `yaml:"hazard,omitempty" json:"hazard,omitempty"`
	Warning     string   `yaml:"warning,omitempty" json:"warning,omitempty"`
	Description []string `yaml:"description,omitempty" json:"description,omitempty"`

	// Completes lists task ids completed by arriving here, in priority order.
	Completes   []string `yaml:"completes,omitempty" json:"completes,omitempty"`
	Suggestions []string `yaml:"suggestions,omitempty" json:"suggestions,omitempty"`
}

// IsPlanet reports whether the body counts toward "visit every planet" goals.
func (b *Body) IsPlanet() bool {
	return b.Kind == KindPlanet
}

// TaskType is the flavor of a mission task.
type TaskType string

const (
	TaskExploration TaskType = "exploration"
	TaskResearch    TaskType = "research"
	TaskSurvival    TaskType = "survival"
	TaskDiscovery   TaskType = "discovery"
)

// Reward is applied when a task completes.
type Reward struct {
	Fuel      int    `yaml:"fuel,omitempty" json:"fuel,omitempty"`
	Health    int    `yaml:"health,omitempty" json:"health,omitempty"`
	Points    int    `yaml:"points,omitempty" json:"points,omitempty"`
	Knowledge string `yaml:"knowledge,omitempty" json:"knowledge,omitempty"`
}

// RequirementKind names a free-form task requirement.
type RequirementKind string

const (
	RequireVisitDistinct RequirementKind = "visit-distinct"
	RequireVisitAll      RequirementKind = "visit-all"
)

// Requirement describes a task that completes from visit progress rather
// than from arriving at a single body.
type Requirement struct {
	Kind  RequirementKind `yaml:"kind" json:"kind"`
	Count int             `yaml:"count,omitempty" json:"count,omitempty"`
}

// Task is a mission objective.
type Task struct {
	ID          string       `yaml:"id" json:"id"`
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Type        TaskType     `yaml:"type" json:"type"`
	Target      string       `yaml:"target,omitempty" json:"target,omitempty"`
	Requirement *Requirement `yaml:"requirement,omitempty" json:"requirement,omitempty"`
	Hint        string       `yaml:"hint,omitempty" json:"hint,omitempty"`
	Reward      Reward       `yaml:"reward" json:"reward"`
	LevelOnly   bool         `yaml:"level_only,omitempty" json:"levelOnly,omitempty"` // excluded from free play
}

// Tool is an observation instrument.
type Tool struct {
	ID             string   `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Description    string   `yaml:"description,omitempty" json:"description,omitempty"`
	FuelCost       int      `yaml:"fuel_cost" json:"fuelCost"`
	RecommendedFor []string `yaml:"recommended_for,omitempty" json:"recommendedFor,omitempty"`
}

// IsRecommendedFor reports whether the tool is well suited to body.
func (t *Tool) IsRecommendedFor(body string) bool {
	for _, b := range t.RecommendedFor {
		if b == body {
			return true
		}
	}
	return false
}

// Observation is a canned result for a (tool, body) pair.
type Observation struct {
	Tool          string   `yaml:"tool" json:"tool"`
	Body          string   `yaml:"body" json:"body"`
	Data          []string `yaml:"data" json:"data"`
	CompletesTask string   `yaml:"completes_task,omitempty" json:"completesTask,omitempty"`
}

// Level is a curated mission with its own task list.
type Level struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Objectives  []string `yaml:"objectives,omitempty" json:"objectives,omitempty"`
	Tasks       []string `yaml:"tasks" json:"tasks"`
	Unlock      string   `yaml:"unlock,omitempty" json:"unlock,omitempty"`        // prior level id, empty = unlocked
	Start       string   `yaml:"start,omitempty" json:"start,omitempty"`          // start body, empty = the config's
	StartFuel   int      `yaml:"start_fuel,omitempty" json:"startFuel,omitempty"` // 0 = the config's
	Background  string   `yaml:"background,omitempty" json:"background,omitempty"`
	Tips        []string `yaml:"tips,omitempty" json:"tips,omitempty"`
	Warnings    []string `yaml:"warnings,omitempty" json:"warnings,omitempty"`
	Duration    string   `yaml:"duration,omitempty" json:"duration,omitempty"`
}

// ConditionKind names an achievement unlock rule.
type ConditionKind string

const (
	CondTasksCompleted  ConditionKind = "tasks-completed"
	CondVisitedDistinct ConditionKind = "visited-distinct"
	CondKnowledge       ConditionKind = "knowledge"
	CondSurviveVisit    ConditionKind = "survive-visit"
	CondVisitAll        ConditionKind = "visit-all"
	CondFuelAbove       ConditionKind = "fuel-above"
)

// Condition is evaluated against mission progress.
type Condition struct {
	Kind  ConditionKind `yaml:"kind" json:"kind"`
	Count int           `yaml:"count,omitempty" json:"count,omitempty"`
	Body  string        `yaml:"body,omitempty" json:"body,omitempty"`
}

// Achievement is unlocked once per mission when its condition holds.
type Achievement struct {
	ID          string    `yaml:"id" json:"id"`
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Icon        string    `yaml:"icon,omitempty" json:"icon,omitempty"`
	Type        string    `yaml:"type,omitempty" json:"type,omitempty"`
	Condition   Condition `yaml:"condition" json:"condition"`
	Points      int       `yaml:"points" json:"points"`
}

// Lesson is the educational page for a body, loaded from a markdown file
// with YAML frontmatter.
type Lesson struct {
	Title          string   `yaml:"title"`
	KeyFacts       []string `yaml:"key_facts,omitempty"`
	FunFacts       []string `yaml:"fun_facts,omitempty"`
	Composition    string   `yaml:"composition,omitempty"`
	Atmosphere     string   `yaml:"atmosphere,omitempty"`
	Moons          string   `yaml:"moons,omitempty"`
	Exploration    []string `yaml:"exploration,omitempty"`
	CompareToEarth string   `yaml:"compare_to_earth,omitempty"`
	DidYouKnow     []string `yaml:"did_you_know,omitempty"`
	MissionTips    []string `yaml:"mission_tips,omitempty"`

	// Parsed from markdown body
	Overview string `yaml:"-"`

	// Filesystem metadata (not serialized to YAML)
	Body     string `yaml:"-"` // body id, from the file name
	FilePath string `yaml:"-"`
}
