// ABOUTME: Export and import functionality for arista data.
// ABOUTME: Supports JSON, YAML, and Markdown export formats over any Store.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ExportVersion is the format version written to every export.
const ExportVersion = "1.0"

// ExportData represents the full export format for arista data.
type ExportData struct {
	Version    string            `json:"version" yaml:"version"`
	ExportedAt time.Time         `json:"exported_at" yaml:"exported_at"`
	Tool       string            `json:"tool" yaml:"tool"`
	User       *UserRecord       `json:"user,omitempty" yaml:"user,omitempty"`
	Exercises  []*ExerciseRecord `json:"exercises" yaml:"exercises"`
	Sleeps     []*SleepRecord    `json:"sleeps" yaml:"sleeps"`
}

// Export retrieves all data from store.
func Export(store Store) (*ExportData, error) {
	user, err := store.FirstUser()
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("get user: %w", err)
	}

	exercises, err := store.ListExercises()
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	sleeps, err := store.ListSleeps()
	if err != nil {
		return nil, fmt.Errorf("list sleeps: %w", err)
	}

	return &ExportData{
		Version:    ExportVersion,
		ExportedAt: time.Now(),
		Tool:       "arista",
		User:       user,
		Exercises:  exercises,
		Sleeps:     sleeps,
	}, nil
}

// Import writes data into store. The user goes first so the exercise
// and sleep references resolve. A store that already holds a user is
// refused with ErrConflict, since only one user may exist.
func Import(store Store, data *ExportData) error {
	if data.User != nil {
		existing, err := store.FirstUser()
		switch {
		case err == nil:
			return fmt.Errorf("import user: store already has user %s: %w", existing.ID, ErrConflict)
		case !errors.Is(err, ErrNotFound):
			return fmt.Errorf("check existing user: %w", err)
		}
		if err := store.CreateUser(data.User); err != nil {
			return fmt.Errorf("import user: %w", err)
		}
	}

	for _, e := range data.Exercises {
		if err := store.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}

	for _, s := range data.Sleeps {
		if err := store.CreateSleep(s); err != nil {
			return fmt.Errorf("import sleep: %w", err)
		}
	}

	return nil
}

// ImportJSON imports data from JSON bytes.
func ImportJSON(store Store, raw []byte) error {
	var data ExportData
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return Import(store, &data)
}

// ExportJSON renders data as indented JSON.
func ExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// ExportYAML renders data as YAML with exercises grouped by category
// and ids shortened for reading.
func ExportYAML(data *ExportData) ([]byte, error) {
	yamlData := struct {
		Version    string                    `yaml:"version"`
		ExportedAt string                    `yaml:"exported_at"`
		Tool       string                    `yaml:"tool"`
		User       *yamlUser                 `yaml:"user,omitempty"`
		Exercises  map[string][]yamlExercise `yaml:"exercises"`
		Sleeps     []yamlSleep               `yaml:"sleeps"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Exercises:  make(map[string][]yamlExercise),
		Sleeps:     make([]yamlSleep, 0, len(data.Sleeps)),
	}

	if data.User != nil {
		yamlData.User = &yamlUser{
			ID:        shortID(data.User.ID),
			FirstName: data.User.FirstName,
			LastName:  data.User.LastName,
		}
	}

	for _, e := range data.Exercises {
		yamlData.Exercises[e.Category] = append(yamlData.Exercises[e.Category], yamlExercise{
			ID:              shortID(e.ID),
			StartDate:       e.StartDate.Format(time.RFC3339),
			DurationMinutes: e.DurationMinutes,
			Intensity:       e.Intensity,
		})
	}

	for _, s := range data.Sleeps {
		yamlData.Sleeps = append(yamlData.Sleeps, yamlSleep{
			ID:              shortID(s.ID),
			StartDate:       s.StartDate.Format(time.RFC3339),
			DurationMinutes: s.DurationMinutes,
			Quality:         s.Quality,
		})
	}

	return yaml.Marshal(yamlData)
}

type yamlUser struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"first_name"`
	LastName  string `yaml:"last_name"`
}

type yamlExercise struct {
	ID              string `yaml:"id"`
	StartDate       string `yaml:"start_date"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Intensity       int    `yaml:"intensity"`
}

type yamlSleep struct {
	ID              string `yaml:"id"`
	StartDate       string `yaml:"start_date"`
	DurationMinutes int    `yaml:"duration_minutes"`
	Quality         int    `yaml:"quality"`
}

// ExportMarkdown renders data as Markdown tables, one per record type.
// When since is set, only records starting at or after it are included.
func ExportMarkdown(data *ExportData, since *time.Time) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Arista Export - %s\n\n", data.ExportedAt.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", data.ExportedAt.Format(time.RFC3339)))

	if data.User != nil {
		sb.WriteString(fmt.Sprintf("User: %s %s\n\n", data.User.FirstName, data.User.LastName))
	}

	sb.WriteString("## Exercises\n\n")
	sb.WriteString("| Date | Category | Duration | Intensity |\n")
	sb.WriteString("|------|----------|----------|-----------|\n")
	for _, e := range data.Exercises {
		if !includeSince(e.StartDate, since) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d min | %d/10 |\n",
			e.StartDate.Format("2006-01-02 15:04"),
			e.Category, e.DurationMinutes, e.Intensity))
	}
	sb.WriteString("\n")

	sb.WriteString("## Sleep\n\n")
	sb.WriteString("| Date | Duration | Quality |\n")
	sb.WriteString("|------|----------|---------|\n")
	for _, s := range data.Sleeps {
		if !includeSince(s.StartDate, since) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %d min | %d/10 |\n",
			s.StartDate.Format("2006-01-02 15:04"),
			s.DurationMinutes, s.Quality))
	}

	return sb.String()
}

func includeSince(t time.Time, since *time.Time) bool {
	return since == nil || !t.Before(*since)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
