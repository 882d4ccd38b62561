// internal/knowledge/loader.go
package knowledge

import (
	"fmt"
	"os"
	"sync"

	"sigs.k8s.io/yaml"
)

var (
	defaultOnce sync.Once
	defaultKB   *KnowledgeBase
)

// DefaultData returns a fresh copy of the built-in tables.
func DefaultData() Data {
	return Data{
		Roles:         defaultRoles(),
		Skills:        defaultSkills(),
		Industries:    defaultIndustries(),
		Patterns:      defaultPatterns(),
		Companies:     defaultCompanies(),
		Courses:       defaultCourses(),
		Guides:        defaultGuides(),
		LearningPaths: defaultLearningPaths(),
	}
}

// Default returns the built-in knowledge base. It is built once and shared.
func Default() *KnowledgeBase {
	defaultOnce.Do(func() {
		kb, err := New(DefaultData())
		if err != nil {
			panic(fmt.Sprintf("built-in knowledge base is invalid: %v", err))
		}
		defaultKB = kb
	})
	return defaultKB
}

// Parse decodes a YAML or JSON document. Sections missing from the document
// fall back to the built-in tables.
func Parse(raw []byte) (*KnowledgeBase, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}

	def := DefaultData()
	if len(data.Roles) == 0 {
		data.Roles = def.Roles
	}
	if len(data.Skills) == 0 {
		data.Skills = def.Skills
	}
	if len(data.Industries) == 0 {
		data.Industries = def.Industries
	}
	if len(data.Patterns) == 0 {
		data.Patterns = def.Patterns
	}
	if len(data.Companies) == 0 {
		data.Companies = def.Companies
	}
	if len(data.Courses) == 0 {
		data.Courses = def.Courses
	}
	if len(data.Guides) == 0 {
		data.Guides = def.Guides
	}
	if len(data.LearningPaths) == 0 {
		data.LearningPaths = def.LearningPaths
	}
	return New(data)
}

// LoadFile reads a knowledge base from path. An empty path yields Default().
func LoadFile(path string) (*KnowledgeBase, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read knowledge base %s: %w", path, err)
	}
	return Parse(raw)
}

// Marshal renders data as YAML, the format LoadFile reads back.
func Marshal(data Data) ([]byte, error) {
	return yaml.Marshal(data)
}
