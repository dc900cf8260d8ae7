// Package assets resolves named colors and material files used by scenes.
package assets

import (
	"encoding/json"
	"os"
	"sync"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

var ErrUnknownColor = errors.New("unknown color")

// Material defines how a mesh looks at rest and under the gaze.
type Material struct {
	Name      string
	Color     rl.Color
	Highlight rl.Color
}

// materialDef is the JSON format for material files
type materialDef struct {
	Name      string `json:"name"`
	Color     string `json:"color"`
	Highlight string `json:"highlight"`
}

// Color name mapping for materials
var colorByName = map[string]rl.Color{
	"Red":       rl.Red,
	"Blue":      rl.Blue,
	"Green":     rl.Green,
	"Purple":    rl.Purple,
	"Orange":    rl.Orange,
	"Yellow":    rl.Yellow,
	"Gold":      rl.Gold,
	"White":     rl.White,
	"Gray":      rl.Gray,
	"LightGray": rl.LightGray,
	"DarkGray":  rl.DarkGray,
	"Black":     rl.Black,
	"Pink":      rl.Pink,
	"Maroon":    rl.Maroon,
	"Brown":     rl.Brown,
	"Beige":     rl.Beige,
	"SkyBlue":   rl.SkyBlue,
	"DarkBlue":  rl.DarkBlue,
	"Lime":      rl.Lime,
	"DarkGreen": rl.DarkGreen,
}

// LookupColor returns the raylib color with the given name.
func LookupColor(name string) (rl.Color, bool) {
	c, ok := colorByName[name]
	return c, ok
}

var (
	mu        sync.Mutex
	materials = map[string]*Material{}
)

// LoadMaterial reads a material file, caching it by path.
func LoadMaterial(path string) (*Material, error) {
	mu.Lock()
	defer mu.Unlock()

	if m, ok := materials[path]; ok {
		return m, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read material")
	}
	m, err := parseMaterial(data)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	materials[path] = m
	return m, nil
}

func parseMaterial(data []byte) (*Material, error) {
	var def materialDef
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, errors.Wrap(err, "parse material")
	}

	color, ok := LookupColor(def.Color)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownColor, "%q", def.Color)
	}
	m := &Material{Name: def.Name, Color: color, Highlight: color}
	if def.Highlight != "" {
		if m.Highlight, ok = LookupColor(def.Highlight); !ok {
			return nil, errors.Wrapf(ErrUnknownColor, "%q", def.Highlight)
		}
	}
	return m, nil
}

// Unload drops every cached material.
func Unload() {
	mu.Lock()
	defer mu.Unlock()
	materials = map[string]*Material{}
}
