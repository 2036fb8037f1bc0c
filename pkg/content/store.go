package content

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults
var defaults embed.FS

// Table file names, shared by the embedded defaults and the override dir.
const (
	BodiesFile       = "bodies.yaml"
	TasksFile        = "tasks.yaml"
	ToolsFile        = "tools.yaml"
	ObservationsFile = "observations.yaml"
	LevelsFile       = "levels.yaml"
	AchievementsFile = "achievements.yaml"
	lessonsDir       = "lessons"
)

var tableFiles = []string{
	BodiesFile, TasksFile, ToolsFile, ObservationsFile, LevelsFile, AchievementsFile,
}

// Store loads catalog content. Files in Root override the embedded
// defaults of the same name.
type Store struct {
	Root string // e.g., ~/.local/share/cosmic
}

// NewStore creates a Store rooted at the given directory.
// It creates the directory structure if it doesn't exist.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(filepath.Join(root, lessonsDir), 0755); err != nil {
		return nil, fmt.Errorf("creating content directory: %w", err)
	}
	return &Store{Root: root}, nil
}

// LessonsDir returns the path to the lesson override directory.
func (s *Store) LessonsDir() string {
	return filepath.Join(s.Root, lessonsDir)
}

// readTable returns the override file if present, else the embedded default.
func (s *Store) readTable(name string) ([]byte, string, error) {
	if s.Root != "" {
		p := filepath.Join(s.Root, name)
		data, err := os.ReadFile(p)
		if err == nil {
			return data, p, nil
		}
		if !os.IsNotExist(err) {
			return nil, p, fmt.Errorf("reading %s: %w", p, err)
		}
	}
	data, err := defaults.ReadFile(path.Join("defaults", name))
	if err != nil {
		return nil, name, fmt.Errorf("reading default %s: %w", name, err)
	}
	return data, "default " + name, nil
}

func (s *Store) decode(name string, v interface{}) error {
	data, src, err := s.readTable(name)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", src, err)
	}
	return nil
}

// Load reads every table and lesson and validates the result.
func (s *Store) Load() (*Catalog, error) {
	var c Catalog
	if err := s.decode(BodiesFile, &c.Bodies); err != nil {
		return nil, err
	}
	if err := s.decode(TasksFile, &c.Tasks); err != nil {
		return nil, err
	}
	if err := s.decode(ToolsFile, &c.Tools); err != nil {
		return nil, err
	}
	if err := s.decode(ObservationsFile, &c.Observations); err != nil {
		return nil, err
	}
	if err := s.decode(LevelsFile, &c.Levels); err != nil {
		return nil, err
	}
	if err := s.decode(AchievementsFile, &c.Achievements); err != nil {
		return nil, err
	}

	lessons, err := s.loadLessons()
	if err != nil {
		return nil, err
	}
	c.Lessons = lessons

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	return &c, nil
}

// LoadDefault loads the embedded catalog with no overrides.
func LoadDefault() (*Catalog, error) {
	return (&Store{}).Load()
}

// defaultLessons parses the embedded lessons, keyed by body id.
func defaultLessons() (map[string]*Lesson, error) {
	lessons := make(map[string]*Lesson)

	entries, err := fs.ReadDir(defaults, path.Join("defaults", lessonsDir))
	if err != nil {
		return nil, fmt.Errorf("reading default lessons: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		data, err := defaults.ReadFile(path.Join("defaults", lessonsDir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading default lesson %s: %w", e.Name(), err)
		}
		l, err := ParseLesson(string(data))
		if err != nil {
			return nil, fmt.Errorf("parsing default lesson %s: %w", e.Name(), err)
		}
		l.Body = strings.TrimSuffix(e.Name(), ".md")
		lessons[l.Body] = l
	}
	return lessons, nil
}

func (s *Store) loadLessons() (map[string]*Lesson, error) {
	lessons, err := defaultLessons()
	if err != nil {
		return nil, err
	}
	if s.Root == "" {
		return lessons, nil
	}
	entries, err := os.ReadDir(s.LessonsDir())
	if err != nil {
		if os.IsNotExist(err) {
			return lessons, nil
		}
		return nil, fmt.Errorf("reading lessons directory: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		l, err := s.LoadLesson(strings.TrimSuffix(e.Name(), ".md"))
		if err != nil {
			continue // skip broken lessons
		}
		lessons[l.Body] = l
	}
	return lessons, nil
}

// LoadLesson reads a single lesson from the override directory.
func (s *Store) LoadLesson(body string) (*Lesson, error) {
	filePath := filepath.Join(s.LessonsDir(), body+".md")
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading lesson %s: %w", body, err)
	}

	lesson, err := ParseLesson(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing lesson %s: %w", body, err)
	}

	lesson.Body = body
	lesson.FilePath = filePath
	return lesson, nil
}

// SaveLesson writes a lesson to the override directory.
func (s *Store) SaveLesson(l *Lesson) error {
	if err := os.MkdirAll(s.LessonsDir(), 0755); err != nil {
		return fmt.Errorf("creating lessons directory: %w", err)
	}

	content, err := SerializeLesson(l)
	if err != nil {
		return fmt.Errorf("serializing lesson: %w", err)
	}

	filePath := filepath.Join(s.LessonsDir(), l.Body+".md")
	l.FilePath = filePath
	return os.WriteFile(filePath, []byte(content), 0644)
}

// Export copies the embedded defaults into Root so they can be edited.
// Lessons are written through SaveLesson. Existing files are left
// untouched. It returns the paths written.
func (s *Store) Export() ([]string, error) {
	var written []string
	write := func(rel string, data []byte) error {
		dst := filepath.Join(s.Root, rel)
		if _, err := os.Stat(dst); err == nil {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(dst), err)
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		written = append(written, dst)
		return nil
	}

	for _, name := range tableFiles {
		data, err := defaults.ReadFile(path.Join("defaults", name))
		if err != nil {
			return written, fmt.Errorf("reading default %s: %w", name, err)
		}
		if err := write(name, data); err != nil {
			return written, err
		}
	}

	lessons, err := defaultLessons()
	if err != nil {
		return written, err
	}
	bodies := make([]string, 0, len(lessons))
	for body := range lessons {
		bodies = append(bodies, body)
	}
	sort.Strings(bodies)
	for _, body := range bodies {
		dst := filepath.Join(s.LessonsDir(), body+".md")
		if _, err := os.Stat(dst); err == nil {
			continue
		}
		if err := s.SaveLesson(lessons[body]); err != nil {
			return written, fmt.Errorf("writing lesson %s: %w", body, err)
		}
		written = append(written, dst)
	}
	return written, nil
}

// SearchLessons searches every loaded lesson for matching text.
// Results are ordered by body id.
func SearchLessons(c *Catalog, query string) []*Lesson {
	query = strings.ToLower(query)
	var matches []*Lesson
	for _, l := range c.Lessons {
		if strings.Contains(strings.ToLower(l.Markdown()), query) {
			matches = append(matches, l)
		}
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].Body < matches[j].Body })
	return matches
}
