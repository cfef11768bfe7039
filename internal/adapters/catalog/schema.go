package catalog

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version" yaml:"version"`
	Exams   []examSchema `toml:"exams" yaml:"exams"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported catalog schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type examSchema struct {
	ID       string          `toml:"id" yaml:"id"`
	Name     string          `toml:"name" yaml:"name"`
	Subjects []subjectSchema `toml:"subjects" yaml:"subjects"`
}

type subjectSchema struct {
	ID     string        `toml:"id" yaml:"id"`
	Name   string        `toml:"name" yaml:"name"`
	Topics []topicSchema `toml:"topics" yaml:"topics"`
}

type topicSchema struct {
	ID   string `toml:"id" yaml:"id"`
	Name string `toml:"name" yaml:"name"`
}
