package aiip

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// Level classifies a region's aggregate tariff severity.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// Canvas describes the drawing surface. It is fixed for the lifetime of a render.
type Canvas struct {
	Width      int
	Height     int
	Background color.RGBA
}

// DefaultCanvas returns the 800x600 canvas used by the sample artifact.
func DefaultCanvas() Canvas {
	return Canvas{Width: defaultWidth, Height: defaultHeight, Background: colorBackground}
}

// Rect is a bounding rectangle in canvas coordinates, x1<x2 and y1<y2.
// It marshals as the 4-element array [x1,y1,x2,y2] used on disk.
type Rect struct {
	X1, Y1, X2, Y2 int
}

func (r Rect) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{r.X1, r.Y1, r.X2, r.Y2})
}

func (r *Rect) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 4 {
		return fmt.Errorf("bounds: expected 4 coordinates, got %d", len(v))
	}
	r.X1, r.Y1, r.X2, r.Y2 = v[0], v[1], v[2], v[3]
	return nil
}

// Country is a single "name: rate" annotation line. Rate is free-form text.
type Country struct {
	Name string `json:"name"`
	Rate string `json:"rate"`
}

// Region is an annotated rectangle with its per-country breakdown.
type Region struct {
	Name      string    `json:"name"`
	Tariff    string    `json:"tariff"`
	Level     Level     `json:"level"`
	Countries []Country `json:"countries"`
	Bounds    Rect      `json:"bounds"`
}

// Document is the renderable dataset: a title and an ordered region list.
type Document struct {
	Title   string   `json:"title"`
	Regions []Region `json:"regions"`
}

// MetaInfo carries the authorship fields of the envelope.
type MetaInfo struct {
	Title   string `json:"title"`
	Author  string `json:"author,omitempty"`
	Created string `json:"created,omitempty"`
}

// CanvasInfo records the canvas dimensions inside the envelope.
type CanvasInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Metadata is the envelope embedded in the aiip chunk. It is a structured
// superset of what the renderer draws.
type Metadata struct {
	Version string     `json:"version"`
	Canvas  CanvasInfo `json:"canvas"`
	Meta    MetaInfo   `json:"meta"`
	Data    Document   `json:"data"`
}

func levelColor(l Level) color.RGBA {
	switch l {
	case LevelLow:
		return colorLevelLow
	case LevelMedium:
		return colorLevelMed
	case LevelHigh:
		return colorLevelHigh
	}
	return colorUnleveled
}
