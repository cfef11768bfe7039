// Package catalog loads the read-only syllabus catalog from TOML or YAML.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bnema/prep/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.toml
var defaultCatalog []byte

// Default returns the catalog shipped with the binary.
func Default() (domain.Catalog, error) {
	catalog, err := decode(defaultCatalog, formatTOML)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("decode embedded catalog: %w", err)
	}

	return catalog, nil
}

// Load reads the catalog at path, or the embedded one when path is empty.
func Load(path string) (domain.Catalog, error) {
	if strings.TrimSpace(path) == "" {
		return Default()
	}

	f, err := formatFor(path)
	if err != nil {
		return domain.Catalog{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("read catalog file: %w", err)
	}

	catalog, err := decode(data, f)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("load catalog %s: %w", path, err)
	}

	return catalog, nil
}

type format string

const (
	formatTOML format = "toml"
	formatYAML format = "yaml"
)

func formatFor(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return formatTOML, nil
	case ".yaml", ".yml":
		return formatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog file extension %q", filepath.Ext(path))
	}
}

// decode parses and validates catalog data.
func decode(data []byte, f format) (domain.Catalog, error) {
	var file fileSchema
	switch f {
	case formatTOML:
		if err := toml.Unmarshal(data, &file); err != nil {
			return domain.Catalog{}, fmt.Errorf("decode toml catalog: %w", err)
		}
	case formatYAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return domain.Catalog{}, fmt.Errorf("decode yaml catalog: %w", err)
		}
	default:
		return domain.Catalog{}, fmt.Errorf("unsupported catalog format %q", f)
	}

	if err := file.validateVersion(); err != nil {
		return domain.Catalog{}, err
	}
	file.applyDefaults()

	if err := validate(file); err != nil {
		return domain.Catalog{}, err
	}

	return fromSchema(file), nil
}

func validate(file fileSchema) error {
	exams := make(map[string]struct{}, len(file.Exams))
	for i, exam := range file.Exams {
		if strings.TrimSpace(exam.ID) == "" {
			return fmt.Errorf("exam #%d: id is required", i+1)
		}
		if _, ok := exams[exam.ID]; ok {
			return fmt.Errorf("duplicate exam id %q", exam.ID)
		}
		exams[exam.ID] = struct{}{}

		subjects := make(map[string]struct{}, len(exam.Subjects))
		for j, subject := range exam.Subjects {
			if strings.TrimSpace(subject.ID) == "" {
				return fmt.Errorf("exam %q subject #%d: id is required", exam.ID, j+1)
			}
			if _, ok := subjects[subject.ID]; ok {
				return fmt.Errorf("exam %q: duplicate subject id %q", exam.ID, subject.ID)
			}
			subjects[subject.ID] = struct{}{}

			topics := make(map[string]struct{}, len(subject.Topics))
			for k, topic := range subject.Topics {
				if strings.TrimSpace(topic.ID) == "" {
					return fmt.Errorf("exam %q subject %q topic #%d: id is required", exam.ID, subject.ID, k+1)
				}
				if _, ok := topics[topic.ID]; ok {
					return fmt.Errorf("exam %q subject %q: duplicate topic id %q", exam.ID, subject.ID, topic.ID)
				}
				topics[topic.ID] = struct{}{}
			}
		}
	}

	return nil
}

func fromSchema(file fileSchema) domain.Catalog {
	exams := make([]domain.Exam, 0, len(file.Exams))
	for _, exam := range file.Exams {
		subjects := make([]domain.Subject, 0, len(exam.Subjects))
		for _, subject := range exam.Subjects {
			topics := make([]domain.Topic, 0, len(subject.Topics))
			for _, topic := range subject.Topics {
				topics = append(topics, domain.Topic{ID: domain.TopicID(topic.ID), Name: nameOr(topic.Name, topic.ID)})
			}
			subjects = append(subjects, domain.Subject{
				ID:     domain.SubjectID(subject.ID),
				Name:   nameOr(subject.Name, subject.ID),
				Topics: topics,
			})
		}
		exams = append(exams, domain.Exam{
			ID:       domain.ExamID(exam.ID),
			Name:     nameOr(exam.Name, exam.ID),
			Subjects: subjects,
		})
	}

	return domain.Catalog{Exams: exams}
}

func nameOr(name, id string) string {
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		return trimmed
	}

	return id
}
