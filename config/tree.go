package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	json "github.com/goccy/go-json"
	"github.com/kastheco/navrail/nav"
	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyKey          = errors.New("link key is empty")
	ErrDuplicateKey      = errors.New("duplicate link key")
	ErrUnsupportedFormat = errors.New("unsupported tree format")
)

// Tree file formats, named by extension.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// TreeSpec is the on-disk navigation tree.
type TreeSpec struct {
	Groups []GroupSpec `toml:"groups" yaml:"groups" json:"groups"`
}

// GroupSpec is one group of a tree file. Type is "ToggleGroup" for the group
// supplying the collapse control, empty otherwise.
type GroupSpec struct {
	Type  string     `toml:"type,omitempty" yaml:"type,omitempty" json:"type,omitempty"`
	Name  string     `toml:"name,omitempty" yaml:"name,omitempty" json:"name,omitempty"`
	Links []LinkSpec `toml:"links" yaml:"links" json:"links"`
}

// LinkSpec is one link of a tree file.
type LinkSpec struct {
	Key           string     `toml:"key" yaml:"key" json:"key"`
	Name          string     `toml:"name" yaml:"name" json:"name"`
	URL           string     `toml:"url,omitempty" yaml:"url,omitempty" json:"url,omitempty"`
	Title         string     `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	AlternateText string     `toml:"alternate_text,omitempty" yaml:"alternate_text,omitempty" json:"alternate_text,omitempty"`
	Icon          string     `toml:"icon,omitempty" yaml:"icon,omitempty" json:"icon,omitempty"`
	Target        string     `toml:"target,omitempty" yaml:"target,omitempty" json:"target,omitempty"`
	Hidden        bool       `toml:"hidden,omitempty" yaml:"hidden,omitempty" json:"hidden,omitempty"`
	ShowMore      bool       `toml:"show_more,omitempty" yaml:"show_more,omitempty" json:"show_more,omitempty"`
	Expanded      bool       `toml:"expanded,omitempty" yaml:"expanded,omitempty" json:"expanded,omitempty"`
	Children      []LinkSpec `toml:"children,omitempty" yaml:"children,omitempty" json:"children,omitempty"`
}

// FormatOf maps a file extension to a tree format.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// LoadTree reads, validates and converts the tree file at path.
func LoadTree(path string) ([]nav.Group, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tree file: %w", err)
	}
	spec, err := ParseTree(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec.NavGroups(), nil
}

// ParseTree decodes and validates a tree in the given format.
func ParseTree(data []byte, format string) (*TreeSpec, error) {
	var spec TreeSpec
	var err error
	switch format {
	case FormatTOML:
		err = toml.Unmarshal(data, &spec)
	case FormatYAML:
		err = yaml.Unmarshal(data, &spec)
	case FormatJSON:
		err = json.Unmarshal(data, &spec)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("parse %s tree: %w", format, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Validate checks that every link has a key and no key repeats.
func (s *TreeSpec) Validate() error {
	seen := make(map[string]string)
	var walk func(path string, links []LinkSpec) error
	walk = func(path string, links []LinkSpec) error {
		for i, l := range links {
			where := fmt.Sprintf("%s.links[%d]", path, i)
			if strings.TrimSpace(l.Key) == "" {
				return fmt.Errorf("%s: %w", where, ErrEmptyKey)
			}
			if prev, ok := seen[l.Key]; ok {
				return fmt.Errorf("%s: %w %q (first at %s)", where, ErrDuplicateKey, l.Key, prev)
			}
			seen[l.Key] = where
			if err := walk(where, l.Children); err != nil {
				return err
			}
		}
		return nil
	}
	for i, g := range s.Groups {
		if err := walk(fmt.Sprintf("groups[%d]", i), g.Links); err != nil {
			return err
		}
	}
	return nil
}

// NavGroups converts the spec to the navigation model.
func (s *TreeSpec) NavGroups() []nav.Group {
	out := make([]nav.Group, 0, len(s.Groups))
	for _, g := range s.Groups {
		out = append(out, nav.Group{
			GroupType: nav.GroupType(g.Type),
			Name:      g.Name,
			Links:     toLinks(g.Links),
		})
	}
	return out
}

func toLinks(specs []LinkSpec) []nav.Link {
	if len(specs) == 0 {
		return nil
	}
	out := make([]nav.Link, 0, len(specs))
	for _, l := range specs {
		out = append(out, nav.Link{
			Key:            l.Key,
			URL:            l.URL,
			Title:          l.Title,
			Name:           l.Name,
			AlternateText:  l.AlternateText,
			Icon:           l.Icon,
			Target:         l.Target,
			Children:       toLinks(l.Children),
			IsHidden:       l.Hidden,
			IsShowMoreLink: l.ShowMore,
			IsExpanded:     l.Expanded,
		})
	}
	return out
}

// DefaultTree is the starter tree written on first run.
func DefaultTree() *TreeSpec {
	return &TreeSpec{Groups: []GroupSpec{
		{Type: string(nav.GroupTypeToggle), Links: []LinkSpec{
			{Key: "toggle", Name: "Expand", AlternateText: "Collapse", Icon: "menu", URL: "#"},
		}},
		{Name: "Workspace", Links: []LinkSpec{
			{Key: "home", Name: "Home", Icon: "home", URL: "/"},
			{Key: "projects", Name: "Projects", Icon: "folder", URL: "/projects", Children: []LinkSpec{
				{Key: "projects-active", Name: "Active", URL: "/projects/active"},
				{Key: "projects-archived", Name: "Archived", URL: "/projects/archived"},
			}},
			{Key: "inbox", Name: "Inbox", Icon: "inbox", URL: "/inbox"},
		}},
		{Name: "Admin", Links: []LinkSpec{
			{Key: "settings", Name: "Settings", Icon: "gear", URL: "/settings", Children: []LinkSpec{
				{Key: "settings-profile", Name: "Profile", URL: "/settings/profile"},
				{Key: "settings-billing", Name: "Billing", URL: "/settings/billing"},
			}},
			{Key: "audit", Name: "Audit log", Icon: "list", URL: "/audit", Hidden: true},
			{Key: "more", Name: "Show more", AlternateText: "Show less", Icon: "more", ShowMore: true},
		}},
	}}
}

// WriteTree encodes spec to path in the format chosen by its extension.
func WriteTree(spec *TreeSpec, path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var data []byte
	switch format {
	case FormatTOML:
		data, err = toml.Marshal(spec)
	case FormatYAML:
		data, err = yaml.Marshal(spec)
	case FormatJSON:
		data, err = json.MarshalIndent(spec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode %s tree: %w", format, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create tree directory: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadOrCreateTree loads the tree at path, writing DefaultTree there first
// when the file does not exist.
func LoadOrCreateTree(path string) ([]nav.Group, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := WriteTree(DefaultTree(), path); err != nil {
			return nil, err
		}
	}
	return LoadTree(path)
}
