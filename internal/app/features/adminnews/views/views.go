// internal/app/features/adminnews/views/views.go
package adminnews

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "adminnews",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
