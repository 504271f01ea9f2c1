package arena

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/arena-planner/internal/core"
)

// Layout is a saved arena: locations, obstacles, the run script and the
// measurement used to calibrate pixel space against real-world units.
type Layout struct {
	Name          string      `json:"name,omitempty" yaml:"name,omitempty"`
	GameID        string      `json:"game_id,omitempty" yaml:"game_id,omitempty"`
	Locations     []Location  `json:"locations" yaml:"locations"`
	Exclusions    []Exclusion `json:"exclusions" yaml:"exclusions"`
	Instrs        []Runnable  `json:"instrs" yaml:"instrs"`
	MeasureWidth  float64     `json:"measureWidth" yaml:"measureWidth"`   // pixels
	RealWidth     float64     `json:"realWidth" yaml:"realWidth"`         // real-world units
	MeasureHeight float64     `json:"measureHeight" yaml:"measureHeight"` // pixels
	RealHeight    float64     `json:"realHeight" yaml:"realHeight"`       // real-world units
}

// Ratios returns pixels per real-world unit on each axis.
// An unmeasured axis yields 0, which leaves the calibration not ready.
func (l *Layout) Ratios() (xRatio, yRatio float64) {
	if l.RealWidth > 0 {
		xRatio = l.MeasureWidth / l.RealWidth
	}
	if l.RealHeight > 0 {
		yRatio = l.MeasureHeight / l.RealHeight
	}
	return xRatio, yRatio
}

// Calibration combines the layout's ratios with a robot velocity.
func (l *Layout) Calibration(velocity float64) core.Calibration {
	x, y := l.Ratios()
	return core.Calibration{Velocity: velocity, XRatio: x, YRatio: y}
}

// LayoutError reports a structural problem with a layout.
type LayoutError struct {
	Code    string
	Message string
}

func (e LayoutError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that location ids are unique and non-empty and that every
// location's action ids are unique and non-empty with a positive duration.
func (l *Layout) Validate() error {
	seen := make(map[string]bool, len(l.Locations))
	for _, loc := range l.Locations {
		if loc.LocID == "" {
			return LayoutError{Code: "EMPTY_LOCATION_ID", Message: "location with empty id"}
		}
		if seen[loc.LocID] {
			return LayoutError{
				Code:    "DUPLICATE_LOCATION",
				Message: fmt.Sprintf("location %q defined more than once", loc.LocID),
			}
		}
		seen[loc.LocID] = true

		actions := make(map[string]bool, len(loc.Actions))
		for _, act := range loc.Actions {
			if act.ActionID == "" {
				return LayoutError{
					Code:    "EMPTY_ACTION_ID",
					Message: fmt.Sprintf("location %q has an action with empty id", loc.LocID),
				}
			}
			if actions[act.ActionID] {
				return LayoutError{
					Code:    "DUPLICATE_ACTION",
					Message: fmt.Sprintf("location %q defines action %q more than once", loc.LocID, act.ActionID),
				}
			}
			actions[act.ActionID] = true

			if !core.PositiveFinite(act.Duration) {
				return LayoutError{
					Code:    "INVALID_DURATION",
					Message: fmt.Sprintf("action %q at location %q has duration %v, must be positive", act.ActionID, loc.LocID, act.Duration),
				}
			}
		}
	}
	return nil
}

// ParseJSON decodes a layout from its persisted JSON shape.
func ParseJSON(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("json unmarshal: %w", err)
	}
	return l, nil
}

// ParseYAML decodes a layout from YAML using the same field names.
func ParseYAML(data []byte) (Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return l, nil
}

// EncodeJSON renders the layout in its persisted JSON shape.
func (l *Layout) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// EncodeYAML renders the layout as YAML.
func (l *Layout) EncodeYAML() ([]byte, error) {
	return yaml.Marshal(l)
}

// FormatExtensions returns supported layout file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".json"}
}

// LoadFile reads a layout file, picking the parser by extension.
// Layouts without a name are named after the file.
func LoadFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	var l Layout
	switch ext {
	case ".yaml", ".yml":
		l, err = ParseYAML(data)
	case ".json":
		l, err = ParseJSON(data)
	default:
		return Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	if l.Name == "" {
		l.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return l, nil
}

// SaveFile writes a layout, picking the encoder by extension.
func SaveFile(path string, l *Layout) error {
	var (
		data []byte
		err  error
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = l.EncodeYAML()
	case ".json":
		data, err = l.EncodeJSON()
	default:
		return fmt.Errorf("unsupported extension: %s", ext)
	}
	if err != nil {
		return fmt.Errorf("encoding layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}
	return nil
}
