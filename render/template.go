package render

import (
	"fmt"
	"html/template"
	"io/fs"
	"os"

	"github.com/bgraf/diashow/res"
)

// ReadTemplates parses the embedded templates, or those below
// resourceDirectory when it is not empty.
func ReadTemplates(resourceDirectory string, locale string) (*template.Template, error) {
	var templateFS fs.FS = res.Templates
	if resourceDirectory != "" {
		templateFS = os.DirFS(resourceDirectory)
	}

	templates, err := template.New("").Funcs(MakeTemplateFuncmap(locale)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	return templates, nil
}
