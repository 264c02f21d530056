package plan

import (
	"fmt"
	"strings"

	"github.com/fastrenamer/fastrenamer/pkg/models"
)

// proposedName applies the transformation to the i-th selected name.
// The extension is split off first and reattached unchanged; only the
// base name is transformed.
func proposedName(name string, i int, req Request) string {
	base, ext := SplitName(name)
	spec := req.Spec

	switch spec.Kind {
	case models.TransformSequential:
		number := fmt.Sprintf("%0*d", spec.Padding, spec.Start+i)
		if strings.Contains(spec.Template, models.NumberPlaceholder) {
			base = strings.ReplaceAll(spec.Template, models.NumberPlaceholder, number)
		} else {
			base = spec.Template + number
		}

	case models.TransformAffix:
		if spec.Position == models.PositionPrefix {
			base = spec.Text + base
		} else {
			base = base + spec.Text
		}

	case models.TransformReplace:
		base = strings.ReplaceAll(base, spec.Find, spec.ReplaceWith)

	case models.TransformFolder:
		if spec.Position == models.PositionPrefix {
			base = req.DirName + spec.Separator + base
		} else {
			base = base + spec.Separator + req.DirName
		}
	}

	return base + ext
}

// SplitName splits a file name into base name and extension. The extension
// starts at the last dot, unless that dot is the first character: dotfiles
// like ".gitignore" have no extension and are transformed whole.
func SplitName(name string) (base, ext string) {
	dot := strings.LastIndex(name, ".")
	if dot <= 0 {
		return name, ""
	}
	return name[:dot], name[dot:]
}
