package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights is the scoring rubric weight table rendered into the prompt.
type Weights struct {
	EssentialSkills float64 `yaml:"essential_skills"`
	Experience      float64 `yaml:"experience"`
	Education       float64 `yaml:"education"`
	Additional      float64 `yaml:"additional"`
}

// Profile bundles the tunable screening inputs: skill vocabularies, scoring
// weights and the prompt template. Loaded from YAML when SCREENING_PROFILE is
// set; omitted fields fall back to the built-in defaults so a profile file
// may override just the vocabularies, for example.
type Profile struct {
	TechnicalSkills []string `yaml:"technical_skills"`
	SoftSkills      []string `yaml:"soft_skills"`
	ScoreWeights    Weights  `yaml:"score_weights"`
	PromptTemplate  string   `yaml:"prompt_template"`
}

// DefaultProfile returns the built-in screening profile.
func DefaultProfile() Profile {
	return Profile{
		TechnicalSkills: defaultTechnicalSkills(),
		SoftSkills:      defaultSoftSkills(),
		ScoreWeights: Weights{
			EssentialSkills: 0.40,
			Experience:      0.30,
			Education:       0.15,
			Additional:      0.15,
		},
		PromptTemplate: DefaultPromptTemplate,
	}
}

// LoadProfile reads a YAML profile from path and merges it over the defaults.
// An empty path returns the defaults unchanged.
func LoadProfile(path string) (Profile, error) {
	p := DefaultProfile()
	if path == "" {
		return p, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("op=config.LoadProfile: %w", err)
	}
	var overlay Profile
	if err := yaml.Unmarshal(b, &overlay); err != nil {
		return Profile{}, fmt.Errorf("op=config.LoadProfile: %w", err)
	}
	if len(overlay.TechnicalSkills) > 0 {
		p.TechnicalSkills = overlay.TechnicalSkills
	}
	if len(overlay.SoftSkills) > 0 {
		p.SoftSkills = overlay.SoftSkills
	}
	if overlay.ScoreWeights != (Weights{}) {
		p.ScoreWeights = overlay.ScoreWeights
	}
	if overlay.PromptTemplate != "" {
		p.PromptTemplate = overlay.PromptTemplate
	}
	return p, nil
}

func defaultTechnicalSkills() []string {
	return []string{
		"Python", "Java", "JavaScript", "C++", "SQL", "AWS", "Azure", "Docker",
		"Kubernetes", "React", "Angular", "Vue.js", "Node.js", "Express", "Django",
		"Flask", "Spring", "Git", "CI/CD", "Jenkins", "Testing", "Machine Learning",
		"AI", "Data Analysis", "Cloud", "DevOps", "Security", "Linux", "Windows",
		"Networking", "API", "REST", "GraphQL", "MongoDB", "PostgreSQL", "MySQL",
		"Oracle", "HTML", "CSS", "PHP", "Ruby", "Scala", "Hadoop", "Spark",
		"TensorFlow", "PyTorch", "NLP", "Computer Vision", "Agile", "Scrum",
	}
}

func defaultSoftSkills() []string {
	return []string{
		"Leadership", "Communication", "Problem Solving", "Team Work", "Time Management",
		"Project Management", "Critical Thinking", "Adaptability", "Creativity",
		"Analytical Skills", "Attention to Detail", "Organization", "Decision Making",
		"Interpersonal Skills", "Presentation Skills", "Negotiation", "Mentoring",
	}
}
