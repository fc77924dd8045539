// internal/app/features/give/views/views.go
package give

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "give",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
