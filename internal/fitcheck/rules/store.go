package rules

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

// ============================================================
// Configuration record
// ============================================================

//go:embed default_rules.json
var defaultRules []byte

var (
	// ErrMissingSection is returned when a required top-level key is absent.
	ErrMissingSection = errors.New("missing rule section")
	// ErrInvalidRules is returned when a rule value is structurally wrong.
	ErrInvalidRules = errors.New("invalid rule configuration")
)

const relationshipSeparator = "_to_"

// Sections lists the top-level keys every rule configuration must carry.
var Sections = []string{
	"clearance_rules",
	"furniture_specific_rules",
	"room_specific_rules",
	"accessibility_rules",
	"safety_rules",
}

type ClearanceRules struct {
	BetweenFurnitureCM float64 `mapstructure:"between_furniture_cm" json:"between_furniture_cm"`
	DoorClearanceCM    float64 `mapstructure:"door_clearance_cm" json:"door_clearance_cm"`
	WindowClearanceCM  float64 `mapstructure:"window_clearance_cm" json:"window_clearance_cm"`
	WalkwayCM          float64 `mapstructure:"walkway_cm" json:"walkway_cm,omitempty"`
}

// FurnitureRule is a category entry. Its presence, even as an empty object,
// enables the clearance pass for items of that category; the values are
// informational and the pass measures against between_furniture_cm.
type FurnitureRule struct {
	MinClearanceCM *float64 `mapstructure:"min_clearance_cm" json:"min_clearance_cm,omitempty"`
}

type Relationship struct {
	MinDistanceCM *float64 `mapstructure:"min_distance_cm" json:"min_distance_cm,omitempty"`
	MaxDistanceCM *float64 `mapstructure:"max_distance_cm" json:"max_distance_cm,omitempty"`
}

// NamedRelationship is a relationship rule with its key split into categories.
type NamedRelationship struct {
	Name      string
	CategoryA string
	CategoryB string
	Relationship
}

type RoomRules struct {
	FurnitureRelationships map[string]Relationship `mapstructure:"furniture_relationships"`
}

type AccessibilityRule struct {
	MinWalkwayCM float64 `mapstructure:"min_walkway_cm"`
}

type ChildSafeRules struct {
	TipOverHeightCM float64 `mapstructure:"tip_over_height_cm"`
	TipOverMinRatio float64 `mapstructure:"tip_over_min_ratio"`
}

type SafetyRules struct {
	ChildSafe   *ChildSafeRules `mapstructure:"child_safe"`
	PetFriendly map[string]any  `mapstructure:"pet_friendly"`
}

type Config struct {
	Clearance     ClearanceRules               `mapstructure:"clearance_rules"`
	Furniture     map[string]FurnitureRule     `mapstructure:"furniture_specific_rules"`
	Rooms         map[string]RoomRules         `mapstructure:"room_specific_rules"`
	Accessibility map[string]AccessibilityRule `mapstructure:"accessibility_rules"`
	Safety        SafetyRules                  `mapstructure:"safety_rules"`
}

// ============================================================
// Store
// ============================================================

// Store is an immutable, validated rule configuration. It is safe for
// concurrent readers; nothing mutates it after Load returns.
type Store struct {
	config        Config
	document      map[string]any
	relationships map[string][]NamedRelationship
	childSafe     ChildSafeRules
}

// Default returns the store built from the embedded rule file.
func Default() (*Store, error) {
	return Parse(defaultRules, "json")
}

// Load reads the rule file at path; an empty path falls back to the embedded rules.
// The format is taken from the file extension (json, yaml, yml, toml).
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules %s: %w", path, err)
	}
	return Parse(data, strings.TrimPrefix(filepath.Ext(path), "."))
}

// Parse builds a store from raw configuration bytes in the given format.
func Parse(data []byte, format string) (*Store, error) {
	format = strings.ToLower(format)

	document, err := decodeDocument(data, format)
	if err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}

	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	return fromViper(v, document)
}

// decodeDocument keeps the file as written, key case and empty objects
// included, for Raw. Viper lowercases keys in its own copy.
func decodeDocument(data []byte, format string) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &doc)
	case "yaml", "yml":
		err = yaml.Unmarshal(data, &doc)
	case "toml":
		err = toml.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", ErrInvalidRules, format)
	}
	if err != nil {
		return nil, err
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

func fromViper(v *viper.Viper, document map[string]any) (*Store, error) {
	for _, section := range Sections {
		if !v.IsSet(section) {
			return nil, fmt.Errorf("%w: %s", ErrMissingSection, section)
		}
	}

	// Sections are decoded one by one from v.Get: Unmarshal goes through the
	// flattened key list, which loses entries whose value is an empty object.
	var cfg Config
	targets := map[string]any{
		"clearance_rules":          &cfg.Clearance,
		"furniture_specific_rules": &cfg.Furniture,
		"room_specific_rules":      &cfg.Rooms,
		"accessibility_rules":      &cfg.Accessibility,
		"safety_rules":             &cfg.Safety,
	}
	for _, section := range Sections {
		if err := v.UnmarshalKey(section, targets[section]); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidRules, section, err)
		}
	}

	s := &Store{
		config:        cfg,
		document:      document,
		relationships: make(map[string][]NamedRelationship, len(cfg.Rooms)),
		childSafe:     ChildSafeRules{TipOverHeightCM: 150, TipOverMinRatio: 0.5},
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) validate() error {
	c := s.config.Clearance
	if c.BetweenFurnitureCM <= 0 {
		return fmt.Errorf("%w: clearance_rules.between_furniture_cm must be positive", ErrInvalidRules)
	}
	if c.DoorClearanceCM <= 0 {
		return fmt.Errorf("%w: clearance_rules.door_clearance_cm must be positive", ErrInvalidRules)
	}
	if c.WindowClearanceCM <= 0 {
		return fmt.Errorf("%w: clearance_rules.window_clearance_cm must be positive", ErrInvalidRules)
	}

	for roomType, room := range s.config.Rooms {
		names := make([]string, 0, len(room.FurnitureRelationships))
		for name := range room.FurnitureRelationships {
			names = append(names, name)
		}
		sort.Strings(names)

		list := make([]NamedRelationship, 0, len(names))
		for _, name := range names {
			rel := room.FurnitureRelationships[name]
			a, b, ok := strings.Cut(name, relationshipSeparator)
			if !ok || a == "" || b == "" {
				return fmt.Errorf("%w: relationship %q in %s is not <a>_to_<b>", ErrInvalidRules, name, roomType)
			}
			if rel.MinDistanceCM != nil && rel.MaxDistanceCM != nil && *rel.MinDistanceCM > *rel.MaxDistanceCM {
				return fmt.Errorf("%w: relationship %q in %s has min above max", ErrInvalidRules, name, roomType)
			}
			list = append(list, NamedRelationship{Name: name, CategoryA: a, CategoryB: b, Relationship: rel})
		}
		s.relationships[roomType] = list
	}

	for level, rule := range s.config.Accessibility {
		if rule.MinWalkwayCM <= 0 {
			return fmt.Errorf("%w: accessibility_rules.%s.min_walkway_cm must be positive", ErrInvalidRules, level)
		}
	}

	if cs := s.config.Safety.ChildSafe; cs != nil {
		if cs.TipOverHeightCM > 0 {
			s.childSafe.TipOverHeightCM = cs.TipOverHeightCM
		}
		if cs.TipOverMinRatio > 0 {
			s.childSafe.TipOverMinRatio = cs.TipOverMinRatio
		}
	}
	return nil
}

// ============================================================
// Lookups
// ============================================================

func (s *Store) Clearance() ClearanceRules {
	return s.config.Clearance
}

// FurnitureRule returns the overrides for a category, matched case-insensitively.
func (s *Store) FurnitureRule(category string) (FurnitureRule, bool) {
	rule, ok := s.config.Furniture[strings.ToLower(category)]
	return rule, ok
}

// Relationships returns the room type's relationship rules ordered by name.
func (s *Store) Relationships(roomType string) []NamedRelationship {
	return s.relationships[strings.ToLower(roomType)]
}

func (s *Store) Accessibility(level string) (AccessibilityRule, bool) {
	rule, ok := s.config.Accessibility[strings.ToLower(level)]
	return rule, ok
}

// ChildSafe returns tip-over thresholds with defaults applied.
func (s *Store) ChildSafe() ChildSafeRules {
	return s.childSafe
}

// Raw returns the decoded rule document with its original key case and
// empty objects intact. Callers must not modify it.
func (s *Store) Raw() map[string]any {
	return s.document
}
