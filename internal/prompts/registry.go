// Package prompts provides centralized prompt management for scribe.
// All generation prompts are stored as text/template files and embedded at
// compile time.
package prompts

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// registry holds parsed templates and provides thread-safe access.
type registry struct {
	mu        sync.RWMutex
	templates map[PromptID]*template.Template
	funcMap   template.FuncMap
}

// globalRegistry is the singleton registry instance.
//
//nolint:gochecknoglobals // singleton pattern for template registry - provides thread-safe global access
var globalRegistry = &registry{
	templates: make(map[PromptID]*template.Template),
	funcMap:   defaultFuncMap(),
}

// defaultFuncMap returns the default template functions.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		// join concatenates strings with a separator
		"join": strings.Join,
		// hasContent checks if a string is non-empty
		"hasContent": func(s string) bool {
			return strings.TrimSpace(s) != ""
		},
	}
}

// init loads all templates at startup.
//
//nolint:gochecknoinits // required to preload embedded templates at package initialization
func init() {
	if err := globalRegistry.loadAll(); err != nil {
		// Templates are embedded, so this should never fail
		// If it does, it's a compile-time bug we want to know about
		panic(fmt.Sprintf("failed to load embedded templates: %v", err))
	}
}

// loadAll loads all templates from the embedded filesystem.
func (r *registry) loadAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return fmt.Errorf("reading templates directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".tmpl") {
			continue
		}

		path := "templates/" + entry.Name()
		content, err := templateFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		id := PromptID(strings.TrimSuffix(entry.Name(), ".tmpl"))

		tmpl, err := template.New(string(id)).Funcs(r.funcMap).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		r.templates[id] = tmpl
	}

	return nil
}

// get retrieves a template by ID.
func (r *registry) get(id PromptID) (*template.Template, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tmpl, ok := r.templates[id]
	return tmpl, ok
}

// list returns all registered prompt IDs.
func (r *registry) list() []PromptID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]PromptID, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	return ids
}
