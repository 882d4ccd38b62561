// internal/engine/matcher/matcher.go
package matcher

import (
	"regexp"
	"strings"

	"career-pivot/internal/knowledge"
)

var (
	seniorityPrefix = regexp.MustCompile(`(?i)senior |junior |lead |principal |staff `)
	nonLetter       = regexp.MustCompile(`[^a-z\s]`)
)

// Normalize lowercases name, strips seniority words and anything that is not
// a letter or whitespace, and trims the result.
func Normalize(name string) string {
	n := strings.ToLower(name)
	n = seniorityPrefix.ReplaceAllString(n, "")
	n = nonLetter.ReplaceAllString(n, "")
	return strings.TrimSpace(n)
}

// Title upper-cases the first letter of every space separated word.
func Title(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Matcher resolves free-text role names against a knowledge base.
type Matcher struct {
	config *Config
	kb     *knowledge.KnowledgeBase
}

func New(config *Config, kb *knowledge.KnowledgeBase) *Matcher {
	if config == nil {
		config = LoadConfig()
	}
	return &Matcher{config: config, kb: kb}
}

// MatchRole tries an exact key, then substring containment in either
// direction, then the first role whose key contains any word of the name.
// Roles are scanned in declaration order so the result is stable.
func (m *Matcher) MatchRole(name string) (knowledge.RoleProfile, string, bool) {
	n := Normalize(name)
	if n == "" {
		return knowledge.RoleProfile{}, "", false
	}

	if r, ok := m.kb.Role(n); ok {
		return r, r.Name, true
	}

	roles := m.kb.Roles()
	for _, r := range roles {
		if strings.Contains(n, r.Name) || strings.Contains(r.Name, n) {
			return r, r.Name, true
		}
	}

	tokens := strings.Fields(n)
	for _, r := range roles {
		for _, tok := range tokens {
			if strings.Contains(r.Name, tok) {
				return r, r.Name, true
			}
		}
	}
	return knowledge.RoleProfile{}, "", false
}

// Lookup is MatchRole returning nil when nothing matched.
func (m *Matcher) Lookup(name string) *knowledge.RoleProfile {
	r, _, ok := m.MatchRole(name)
	if !ok {
		return nil
	}
	return &r
}

// SkillsSimilar reports whether both terms fall into a shared synonym cluster.
func (m *Matcher) SkillsSimilar(a, b string) bool {
	a, b = strings.ToLower(a), strings.ToLower(b)
	for _, c := range m.config.Synonyms {
		if c.contains(a) && c.contains(b) {
			return true
		}
	}
	return false
}

func (c SynonymCluster) contains(term string) bool {
	if strings.Contains(term, c.Head) {
		return true
	}
	for _, v := range c.Members {
		if strings.Contains(term, v) {
			return true
		}
	}
	return false
}

// HasSkill reports whether any of userSkills covers required, either by
// containment in either direction or by synonym.
func (m *Matcher) HasSkill(userSkills []string, required string) bool {
	req := strings.ToLower(required)
	for _, us := range userSkills {
		us = strings.ToLower(strings.TrimSpace(us))
		if us == "" {
			continue
		}
		if strings.Contains(us, req) || strings.Contains(req, us) || m.SkillsSimilar(us, req) {
			return true
		}
	}
	return false
}

// SkillOverlap is the share of exactly shared required skills relative to the
// larger of the two lists.
func (m *Matcher) SkillOverlap(a, b *knowledge.RoleProfile) float64 {
	if a == nil || b == nil || len(a.RequiredSkills) == 0 || len(b.RequiredSkills) == 0 {
		return m.config.UnknownOverlap
	}

	setA := toSet(a.RequiredSkills)
	setB := toSet(b.RequiredSkills)

	common := 0
	for s := range setA {
		if setB[s] {
			common++
		}
	}
	return float64(common) / float64(max(len(setA), len(setB)))
}

// SameCategory reports whether both roles are known and share a category.
func SameCategory(a, b *knowledge.RoleProfile) bool {
	if a == nil || b == nil || a.Category == "" {
		return false
	}
	return a.Category == b.Category
}

func toSet(items []string) map[string]bool {
	out := make(map[string]bool, len(items))
	for _, s := range items {
		out[s] = true
	}
	return out
}
