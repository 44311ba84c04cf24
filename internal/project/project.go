// Package project wraps the whole annotation project in a versioned JSON
// document for save and restore. It round-trips the editable data model
// and is independent of the plugin-facing YAML exports.
package project

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/worldsmith/worldsmith/internal/export"
	"github.com/worldsmith/worldsmith/internal/geom"
	"github.com/worldsmith/worldsmith/internal/region"
)

// Version is the current document version. The field is reserved for
// forward migration; importers must tolerate unknown extra fields.
const Version = "1.0.0"

// MapState is the map view transform, minus the raw image bytes. When
// the image cannot be embedded (cross-origin sources) ImageRef carries a
// URL reference instead.
type MapState struct {
	Scale      float64 `json:"scale"`
	OffsetX    float64 `json:"offsetX"`
	OffsetZ    float64 `json:"offsetZ"`
	ImageRef   string  `json:"imageRef,omitempty"`
	ExportDate string  `json:"exportDate"`
}

// Document is the versioned project envelope.
type Document struct {
	Version          string            `json:"version"`
	WorldName        string            `json:"worldName"`
	Seed             string            `json:"seed,omitempty"`
	Dimension        string            `json:"dimension,omitempty"`
	WorldSize        int               `json:"worldSize,omitempty"`
	ImageSize        int               `json:"imageSize,omitempty"`
	Regions          region.Collection `json:"regions"`
	MapState         MapState          `json:"mapState"`
	SpawnCoordinates *geom.Point       `json:"spawnCoordinates,omitempty"`
	WorldType        region.WorldType  `json:"worldType,omitempty"`
	ExportDate       string            `json:"exportDate"`
	ImageData        string            `json:"imageData,omitempty"`
	ImageFilename    string            `json:"imageFilename,omitempty"`
	ExportSettings   *export.Options   `json:"exportSettings,omitempty"`
}

// New returns a fresh document for the given world.
func New(worldName string, worldType region.WorldType, now time.Time) *Document {
	date := now.UTC().Format(time.RFC3339)
	opts := export.DefaultOptions()
	return &Document{
		Version:        Version,
		WorldName:      worldName,
		WorldType:      worldType,
		ExportDate:     date,
		MapState:       MapState{Scale: 1, ExportDate: date},
		Regions:        region.Collection{},
		ExportSettings: &opts,
	}
}

// Parse validates and decodes a project document. Required fields are
// version, a regions array, and a mapState object carrying exportDate;
// legacy documents without a worldName default to "world". Unknown
// fields are ignored.
func Parse(data []byte) (*Document, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("parsing project document: %w", err)
	}
	if _, ok := probe["version"]; !ok {
		return nil, fmt.Errorf("invalid project document: missing version")
	}
	raw, ok := probe["regions"]
	if !ok {
		return nil, fmt.Errorf("invalid project document: missing regions")
	}
	var regionsProbe []json.RawMessage
	if err := json.Unmarshal(raw, &regionsProbe); err != nil {
		return nil, fmt.Errorf("invalid project document: regions is not an array")
	}
	if _, ok := probe["mapState"]; !ok {
		return nil, fmt.Errorf("invalid project document: missing mapState")
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing project document: %w", err)
	}
	if doc.MapState.ExportDate == "" {
		return nil, fmt.Errorf("invalid project document: mapState has no exportDate")
	}
	if doc.WorldName == "" {
		doc.WorldName = "world"
	}
	if doc.WorldType == "" {
		doc.WorldType = region.Overworld
	}
	return &doc, nil
}

// Marshal encodes the document for saving. Output is stable for
// identical documents.
func (d *Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding project document: %w", err)
	}
	return data, nil
}

// Slug returns the document's world-name slug used for filenames and
// store keys.
func (d *Document) Slug() string {
	s := region.Slug(d.WorldName)
	if s == "" {
		s = "world"
	}
	return s
}

// Filename returns the download name for the document.
func (d *Document) Filename(now time.Time) string {
	wt := d.WorldType
	if wt == "" {
		wt = region.Overworld
	}
	return fmt.Sprintf("%s-%s-%s.json", d.Slug(), wt, now.UTC().Format("2006-01-02"))
}

// World returns the export view of the document.
func (d *Document) World() export.World {
	wt := d.WorldType
	if wt == "" {
		wt = region.Overworld
	}
	return export.World{Name: d.WorldName, Type: wt, Spawn: d.SpawnCoordinates}
}

// Options returns the document's export settings, falling back to
// defaults for documents saved without them.
func (d *Document) Options() export.Options {
	if d.ExportSettings != nil {
		return *d.ExportSettings
	}
	return export.DefaultOptions()
}
