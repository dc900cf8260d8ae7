package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"vrgaze/internal/engine"
	_ "vrgaze/internal/scripts"

	"github.com/pkg/errors"
)

const scriptsDir = "internal/scripts"

var (
	errBadName   = errors.New("script name must be an exported Go identifier")
	errNameTaken = errors.New("script name is already registered")
)

const tmpl = `package scripts

import (
	"log"

	"vrgaze/internal/engine"
)

// {{.Name}} reacts to the gaze on its object.
type {{.Name}} struct {
	engine.BaseComponent
	Message string
}

func (s *{{.Name}}) Start() {
	g := s.GetGameObject()
	if g == nil {
		return
	}
	item := interactiveItem(g)
	item.OnEnter.AddListener(s.onEnter)
	item.OnClick.AddListener(s.onClick)
}

func (s *{{.Name}}) onEnter() {
	log.Printf("{{.Name}}: gaze on %s", s.GetGameObject().Name)
}

func (s *{{.Name}}) onClick() {
	log.Printf("{{.Name}}: %s", s.Message)
}

func init() {
	engine.RegisterScript("{{.Name}}", {{.Lower}}Factory, {{.Lower}}Serializer)
}

func {{.Lower}}Factory(props map[string]any) engine.Component {
	s := &{{.Name}}{Message: "clicked"}
	if v, ok := props["message"].(string); ok {
		s.Message = v
	}
	return s
}

func {{.Lower}}Serializer(c engine.Component) map[string]any {
	s, ok := c.(*{{.Name}})
	if !ok {
		return nil
	}
	return map[string]any{
		"message": s.Message,
	}
}
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run ./cmd/newscript <ScriptName>\n")
		fmt.Fprintf(os.Stderr, "Example: go run ./cmd/newscript DoorOpener\n")
		os.Exit(1)
	}

	name := os.Args[1]
	content, err := render(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	outPath := filepath.Join(scriptsDir, toSnakeCase(name)+".go")
	if _, err := os.Stat(outPath); err == nil {
		fmt.Fprintf(os.Stderr, "Error: %s already exists\n", outPath)
		os.Exit(1)
	}

	if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Created %s\n", outPath)
	fmt.Printf("Script \"%s\" registered. Add it to an object with an InteractiveItem:\n\n", name)
	fmt.Printf("  {\n")
	fmt.Printf("    \"type\": \"Script\",\n")
	fmt.Printf("    \"name\": \"%s\",\n", name)
	fmt.Printf("    \"props\": { \"message\": \"clicked\" }\n")
	fmt.Printf("  }\n")
}

// render fills the script template for name.
func render(name string) (string, error) {
	if !validName(name) {
		return "", errors.Wrapf(errBadName, "%q", name)
	}
	if engine.HasScript(name) {
		return "", errors.Wrapf(errNameTaken, "%q", name)
	}
	lower := string(unicode.ToLower(rune(name[0]))) + name[1:]

	content := strings.ReplaceAll(tmpl, "{{.Name}}", name)
	content = strings.ReplaceAll(content, "{{.Lower}}", lower)
	return content, nil
}

func validName(name string) bool {
	if name == "" || !unicode.IsUpper(rune(name[0])) {
		return false
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func toSnakeCase(s string) string {
	var result []rune
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			result = append(result, '_')
		}
		result = append(result, unicode.ToLower(r))
	}
	return string(result)
}
