// internal/app/features/adminevents/views/views.go
package adminevents

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "adminevents",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
