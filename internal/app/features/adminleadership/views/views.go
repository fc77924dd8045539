// internal/app/features/adminleadership/views/views.go
package adminleadership

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "adminleadership",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
