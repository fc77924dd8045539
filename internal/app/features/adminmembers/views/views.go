// internal/app/features/adminmembers/views/views.go
package adminmembers

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "adminmembers",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
