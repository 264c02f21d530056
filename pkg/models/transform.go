package models

// TransformKind identifies a renaming transformation
type TransformKind string

const (
	// TransformSequential replaces the base name with a numbered template
	TransformSequential TransformKind = "sequential"
	// TransformAffix adds text before or after the base name
	TransformAffix TransformKind = "affix"
	// TransformReplace substitutes literal text within the base name
	TransformReplace TransformKind = "replace"
	// TransformFolder inserts the parent directory name into the base name
	TransformFolder TransformKind = "folder"
)

// Position selects which end of the base name an insertion applies to
type Position string

const (
	// PositionPrefix inserts before the base name
	PositionPrefix Position = "prefix"
	// PositionSuffix inserts after the base name, before the extension
	PositionSuffix Position = "suffix"
)

// NumberPlaceholder is the token in a sequential template that is replaced
// by the zero-padded counter. Templates without it get the counter appended.
const NumberPlaceholder = "{n}"

// TransformSpec is a tagged variant over the supported transformations.
// Kind selects the variant; only that variant's fields are consulted.
type TransformSpec struct {
	Kind TransformKind

	// Sequential
	Start    int
	Padding  int
	Template string

	// Affix and Folder
	Position Position

	// Affix
	Text string

	// Folder
	Separator string

	// Replace
	Find        string
	ReplaceWith string
}

// Validate checks the per-variant parameters. Violations are reported as
// a *PlanError of kind ErrInvalidParameter.
func (s *TransformSpec) Validate() error {
	switch s.Kind {
	case TransformSequential:
		if s.Start < 0 {
			return invalidParam("sequential start must not be negative")
		}
		if s.Padding < 0 {
			return invalidParam("sequential padding must not be negative")
		}
		if s.Template == "" {
			return invalidParam("sequential template is required")
		}

	case TransformAffix:
		if err := s.validatePosition(); err != nil {
			return err
		}
		if s.Text == "" {
			return invalidParam("affix text is required")
		}

	case TransformReplace:
		if s.Find == "" {
			return invalidParam("replace find-text is required")
		}

	case TransformFolder:
		if err := s.validatePosition(); err != nil {
			return err
		}

	default:
		return invalidParam("unknown transformation: " + string(s.Kind))
	}

	return nil
}

func (s *TransformSpec) validatePosition() error {
	if s.Position != PositionPrefix && s.Position != PositionSuffix {
		return invalidParam("position must be 'prefix' or 'suffix'")
	}
	return nil
}

func invalidParam(msg string) *PlanError {
	return &PlanError{Kind: ErrInvalidParameter, Message: msg}
}
