package console

import (
	"github.com/panyam/templar"
)

// SetupTemplates initializes the Templar template group for the console
// pages. Templates are loaded lazily; a missing directory is not an error
// because page handlers fall back to the embedded markup.
func SetupTemplates(templatesDir string) *templar.TemplateGroup {
	group := templar.NewTemplateGroup()
	group.Loader = templar.NewFileSystemLoader(templatesDir)
	return group
}
