// internal/knowledge/knowledge.go
package knowledge

import (
	"errors"
	"fmt"
	"strings"

	"career-pivot/internal/models"
)

// Demand levels used by RoleProfile.DemandLevel.
const (
	DemandVeryHigh    = "very high"
	DemandHigh        = "high"
	DemandMedium      = "medium"
	DemandLow         = "low"
	DemandStable      = "stable"
	DemandGrowing     = "growing"
	DemandSelfCreated = "self-created"
)

type SalaryRange struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Median float64 `json:"median"`
}

type ExperienceBands struct {
	Entry  int `json:"entry"`
	Mid    int `json:"mid"`
	Senior int `json:"senior"`
	Lead   int `json:"lead"`
}

// RoleProfile is keyed by its normalized Name.
type RoleProfile struct {
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	SalaryRange       SalaryRange     `json:"salaryRange"`
	RequiredSkills    []string        `json:"skills"`
	GrowthRate        int             `json:"growthRate"`
	DemandLevel       string          `json:"demandLevel"`
	RemoteFlexibility string          `json:"remoteFlexibility"`
	TransitionsTo     []string        `json:"transitionsTo"`
	EducationRequired string          `json:"educationRequired"`
	ExperienceYears   ExperienceBands `json:"experienceYears"`
}

type SkillProfile struct {
	Name            string   `json:"name"`
	Category        string   `json:"category"`
	LearnTimeMonths int      `json:"learnTime"`
	Difficulty      string   `json:"difficulty"`
	Resources       []string `json:"resources"`
}

type TransitionPattern struct {
	From               string   `json:"from"`
	To                 string   `json:"to"`
	Difficulty         string   `json:"difficulty"`
	TimelineMonths     int      `json:"timelineMonths"`
	SalaryChange       string   `json:"salaryChange"`
	KeySkillsToAcquire []string `json:"keySkillsToAcquire"`
	BridgeRoles        []string `json:"bridgeRoles"`
	SuccessRate        int      `json:"successRate"`
	CommonChallenges   []string `json:"commonChallenges"`
	Tips               []string `json:"tips"`
}

// Key returns the "<from>-><to>" lookup key.
func (p TransitionPattern) Key() string {
	return PatternKey(p.From, p.To)
}

func PatternKey(from, to string) string {
	return from + "->" + to
}

type Industry struct {
	Key                 string   `json:"key"`
	Name                string   `json:"name"`
	GrowthRate          int      `json:"growthRate"`
	AvgSalaryMultiplier float64  `json:"avgSalaryMultiplier"`
	HotRoles            []string `json:"hotRoles"`
}

// SkillCatalog groups learning material for one skill by level.
type SkillCatalog struct {
	Skill        string          `json:"skill"`
	Beginner     []models.Course `json:"beginner,omitempty"`
	Intermediate []models.Course `json:"intermediate,omitempty"`
	Advanced     []models.Course `json:"advanced,omitempty"`
	Books        []models.Book   `json:"books,omitempty"`
	Tools        []models.Tool   `json:"tools,omitempty"`
	Practice     []models.Tool   `json:"practice,omitempty"`
}

// Data is the serialisable form of a knowledge base. Slice order is the
// declaration order that matching relies on.
type Data struct {
	Roles         []RoleProfile                          `json:"roles"`
	Skills        []SkillProfile                         `json:"skills"`
	Industries    []Industry                             `json:"industries"`
	Patterns      []TransitionPattern                    `json:"transitionPatterns"`
	Companies     map[string]map[string][]models.Company `json:"companies"`
	Courses       []SkillCatalog                         `json:"courses"`
	Guides        []models.Guide                         `json:"guides"`
	LearningPaths map[string]models.LearningPath         `json:"learningPaths"`
}

// KnowledgeBase is an immutable, indexed view over Data. Values returned by
// its accessors share backing arrays with the base and must not be modified.
type KnowledgeBase struct {
	roles      []RoleProfile
	roleIndex  map[string]int
	skills     map[string]SkillProfile
	industries []Industry
	patterns   map[string]TransitionPattern
	companies  map[string]map[string][]models.Company
	courses    map[string]SkillCatalog
	guides     []models.Guide
	paths      map[string]models.LearningPath
}

var ErrInvalidKnowledgeBase = errors.New("invalid knowledge base")

// New validates data and builds the lookup indexes.
func New(data Data) (*KnowledgeBase, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}

	kb := &KnowledgeBase{
		roles:      data.Roles,
		roleIndex:  make(map[string]int, len(data.Roles)),
		skills:     make(map[string]SkillProfile, len(data.Skills)),
		industries: data.Industries,
		patterns:   make(map[string]TransitionPattern, len(data.Patterns)),
		companies:  data.Companies,
		courses:    make(map[string]SkillCatalog, len(data.Courses)),
		guides:     data.Guides,
		paths:      data.LearningPaths,
	}
	for i, r := range data.Roles {
		kb.roleIndex[r.Name] = i
	}
	for _, s := range data.Skills {
		kb.skills[s.Name] = s
	}
	for _, p := range data.Patterns {
		kb.patterns[p.Key()] = p
	}
	for _, c := range data.Courses {
		kb.courses[c.Skill] = c
	}
	if kb.companies == nil {
		kb.companies = map[string]map[string][]models.Company{}
	}
	if kb.paths == nil {
		kb.paths = map[string]models.LearningPath{}
	}
	return kb, nil
}

// Validate checks the structural invariants of a knowledge base.
func Validate(data Data) error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(data.Roles) == 0 {
		add("no roles defined")
	}
	seen := make(map[string]bool, len(data.Roles))
	for _, r := range data.Roles {
		if !isKey(r.Name) {
			add("role %q: name must be lowercase and trimmed", r.Name)
		}
		if seen[r.Name] {
			add("role %q: duplicate", r.Name)
		}
		seen[r.Name] = true
		if len(r.RequiredSkills) == 0 {
			add("role %q: no required skills", r.Name)
		}
		sr := r.SalaryRange
		if sr.Min < 0 || sr.Min > sr.Median || sr.Median > sr.Max {
			add("role %q: salary range must satisfy 0 <= min <= median <= max", r.Name)
		}
	}

	skillSeen := make(map[string]bool, len(data.Skills))
	for _, s := range data.Skills {
		if !isKey(s.Name) {
			add("skill %q: name must be lowercase and trimmed", s.Name)
		}
		if skillSeen[s.Name] {
			add("skill %q: duplicate", s.Name)
		}
		skillSeen[s.Name] = true
		switch s.Difficulty {
		case "low", "medium", "high":
		default:
			add("skill %q: difficulty %q not one of low|medium|high", s.Name, s.Difficulty)
		}
		if s.LearnTimeMonths <= 0 {
			add("skill %q: learn time must be positive", s.Name)
		}
	}

	patternSeen := make(map[string]bool, len(data.Patterns))
	for _, p := range data.Patterns {
		if !isKey(p.From) || !isKey(p.To) {
			add("pattern %q: endpoints must be lowercase and trimmed", p.Key())
		}
		if patternSeen[p.Key()] {
			add("pattern %q: duplicate", p.Key())
		}
		patternSeen[p.Key()] = true
		if p.SuccessRate < 0 || p.SuccessRate > 100 {
			add("pattern %q: success rate %d out of range", p.Key(), p.SuccessRate)
		}
		if p.TimelineMonths <= 0 {
			add("pattern %q: timeline must be positive", p.Key())
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidKnowledgeBase, strings.Join(problems, "; "))
	}
	return nil
}

func isKey(s string) bool {
	return s != "" && s == strings.ToLower(strings.TrimSpace(s))
}

// ==========================
// Accessors
// ==========================

// Roles returns all roles in declaration order.
func (kb *KnowledgeBase) Roles() []RoleProfile {
	return kb.roles
}

func (kb *KnowledgeBase) Role(key string) (RoleProfile, bool) {
	i, ok := kb.roleIndex[key]
	if !ok {
		return RoleProfile{}, false
	}
	return kb.roles[i], true
}

func (kb *KnowledgeBase) Skill(name string) (SkillProfile, bool) {
	s, ok := kb.skills[name]
	return s, ok
}

func (kb *KnowledgeBase) Pattern(from, to string) (TransitionPattern, bool) {
	p, ok := kb.patterns[PatternKey(from, to)]
	return p, ok
}

// Industry resolves an industry by key or by a case-insensitive match on its
// display name or the key contained in name.
func (kb *KnowledgeBase) Industry(name string) (Industry, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "" {
		return Industry{}, false
	}
	for _, ind := range kb.industries {
		if ind.Key == n || strings.EqualFold(ind.Name, n) {
			return ind, true
		}
	}
	for _, ind := range kb.industries {
		if strings.Contains(n, ind.Key) || strings.Contains(strings.ToLower(ind.Name), n) {
			return ind, true
		}
	}
	return Industry{}, false
}

func (kb *KnowledgeBase) Industries() []Industry {
	return kb.industries
}

// Companies returns the role-category table for a city, nil if unknown.
func (kb *KnowledgeBase) Companies(city string) map[string][]models.Company {
	return kb.companies[city]
}

func (kb *KnowledgeBase) Catalog(skill string) (SkillCatalog, bool) {
	c, ok := kb.courses[strings.ToLower(strings.TrimSpace(skill))]
	return c, ok
}

func (kb *KnowledgeBase) Guides() []models.Guide {
	return kb.guides
}

func (kb *KnowledgeBase) LearningPath(role string) (models.LearningPath, bool) {
	p, ok := kb.paths[role]
	return p, ok
}

// Stats summarises table sizes for logging.
func (kb *KnowledgeBase) Stats() map[string]interface{} {
	return map[string]interface{}{
		"roles":         len(kb.roles),
		"skills":        len(kb.skills),
		"industries":    len(kb.industries),
		"patterns":      len(kb.patterns),
		"cities":        len(kb.companies),
		"catalogs":      len(kb.courses),
		"guides":        len(kb.guides),
		"learningPaths": len(kb.paths),
	}
}
