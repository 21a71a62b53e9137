package ldtk

import (
	"encoding/json"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// AtlasRegion describes a named sub-rectangle of an atlas page.
type AtlasRegion struct {
	Name    string
	Page    int
	Frame   image.Rectangle
	Rotated bool // stored 90 degrees clockwise on the page
}

// AtlasSheet is a parsed TexturePacker JSON sheet: the page image file names
// and the regions on them.
type AtlasSheet struct {
	Pages   []string
	Regions []AtlasRegion
}

// ParseAtlas parses TexturePacker JSON data. Both the hash format (a single
// "frames" object with "meta.image") and the array format (a "textures"
// array with per-page frame lists) are supported. Region names lose their
// file extension.
func ParseAtlas(jsonData []byte) (*AtlasSheet, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
		Meta     struct {
			Image string `json:"image"`
		} `json:"meta"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("ldtk: failed to parse atlas JSON: %w", err)
	}

	sheet := &AtlasSheet{}
	switch {
	case probe.Textures != nil:
		if err := parseArrayFormat(probe.Textures, sheet); err != nil {
			return nil, err
		}
	case probe.Frames != nil:
		if probe.Meta.Image == "" {
			return nil, fmt.Errorf("ldtk: atlas JSON has no \"meta.image\" page")
		}
		sheet.Pages = []string{probe.Meta.Image}
		if err := parseHashFrames(probe.Frames, 0, sheet); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("ldtk: atlas JSON has neither \"frames\" nor \"textures\" key")
	}
	return sheet, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame   jsonRect `json:"frame"`
	Rotated bool     `json:"rotated"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, page int, sheet *AtlasSheet) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("ldtk: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		sheet.Regions = append(sheet.Regions, frameToRegion(name, f, page))
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, sheet *AtlasSheet) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("ldtk: failed to parse atlas textures array: %w", err)
	}
	for i, tex := range textures {
		sheet.Pages = append(sheet.Pages, tex.Image)
		for name, f := range tex.Frames {
			sheet.Regions = append(sheet.Regions, frameToRegion(name, f, i))
		}
	}
	return nil
}

func frameToRegion(name string, f jsonFrame, page int) AtlasRegion {
	w, h := f.Frame.W, f.Frame.H
	if f.Rotated {
		// The frame size is the upright size; the page stores it swapped.
		w, h = h, w
	}
	return AtlasRegion{
		Name:    trimExt(name),
		Page:    page,
		Frame:   image.Rect(f.Frame.X, f.Frame.Y, f.Frame.X+w, f.Frame.Y+h),
		Rotated: f.Rotated,
	}
}

// trimExt drops a trailing file extension from a region name.
func trimExt(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 && !strings.Contains(name[i:], "/") {
		return name[:i]
	}
	return name
}

// regionImage returns the upright image of a region on page. Rotated regions
// are copied to their own image.
func regionImage(page *ebiten.Image, r AtlasRegion) *ebiten.Image {
	sub := page.SubImage(r.Frame.Add(page.Bounds().Min)).(*ebiten.Image)
	if !r.Rotated {
		return sub
	}
	w, h := r.Frame.Dy(), r.Frame.Dx()
	img := ebiten.NewImage(w, h)
	var op ebiten.DrawImageOptions
	// Stored 90 degrees clockwise: rotate back counter-clockwise.
	op.GeoM.Rotate(-math.Pi / 2)
	op.GeoM.Translate(0, float64(h))
	img.DrawImage(sub, &op)
	return img
}
