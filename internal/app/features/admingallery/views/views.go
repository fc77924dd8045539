// internal/app/features/admingallery/views/views.go
package admingallery

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "admingallery",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
