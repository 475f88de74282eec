package builder

import (
	"fmt"
	"strings"
)

// Field editor panel model. Each component type has a fixed field schema;
// every edit recombines into a typed content value and goes straight through
// Store.UpdateContent. There is no draft state: the stored content is the
// edited content.

// FieldKind is the editor widget a field uses.
type FieldKind string

const (
	FieldRichText FieldKind = "richtext" // content-editable region, trusted HTML
	FieldInput    FieldKind = "input"    // plain text input, escaped on render
	FieldTags     FieldKind = "tags"     // comma-separated string <-> []string
	FieldSelect   FieldKind = "select"   // closed enum
	FieldCheckbox FieldKind = "checkbox" // "true" / "false"
	FieldDate     FieldKind = "date"     // composite MM / DD / YYYY input
	FieldImage    FieldKind = "image"    // data-URL image picker
)

// Option is one select-enum choice.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Field describes one editable field of a component type: its widget kind and
// typed accessors into the content struct. Get and Set assert the concrete
// content type for the schema they belong to.
type Field struct {
	Name     string
	Label    string
	Kind     FieldKind
	Optional bool
	Options  []Option

	Get func(Content) string
	Set func(Content, string) (Content, error)

	// HiddenWhen reports whether the field is hidden for the given content
	// (the end-date field while "current" is checked).
	HiddenWhen func(Content) bool
}

// ParseTags converts the editor's comma-separated string into a tag list,
// trimming whitespace and dropping empties.
func ParseTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags converts a tag list back into the editor's input representation.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

func parseBool(s string) bool { return s == "true" }

func formatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func mismatch(want Type, got Content) error {
	return fmt.Errorf("%w: want %s content, got %s", ErrContentTypeMismatch, want, got.Type())
}

// FieldsFor returns the fixed field schema for a component type, in panel
// order. Unknown types have no fields.
func FieldsFor(t Type) []Field {
	switch t {
	case TypeHero:
		return []Field{
			{Name: "name", Label: "Name", Kind: FieldRichText,
				Get: func(c Content) string { return c.(HeroContent).Name },
				Set: func(c Content, v string) (Content, error) {
					h, ok := c.(HeroContent)
					if !ok {
						return nil, mismatch(TypeHero, c)
					}
					h.Name = v
					return h, nil
				}},
			{Name: "title", Label: "Title", Kind: FieldRichText,
				Get: func(c Content) string { return c.(HeroContent).Title },
				Set: func(c Content, v string) (Content, error) {
					h, ok := c.(HeroContent)
					if !ok {
						return nil, mismatch(TypeHero, c)
					}
					h.Title = v
					return h, nil
				}},
			{Name: "bio", Label: "Bio", Kind: FieldRichText,
				Get: func(c Content) string { return c.(HeroContent).Bio },
				Set: func(c Content, v string) (Content, error) {
					h, ok := c.(HeroContent)
					if !ok {
						return nil, mismatch(TypeHero, c)
					}
					h.Bio = v
					return h, nil
				}},
		}

	case TypeHeader:
		return []Field{
			{Name: "text", Label: "Heading Text", Kind: FieldRichText,
				Get: func(c Content) string { return c.(HeaderContent).Text },
				Set: func(c Content, v string) (Content, error) {
					h, ok := c.(HeaderContent)
					if !ok {
						return nil, mismatch(TypeHeader, c)
					}
					h.Text = v
					return h, nil
				}},
		}

	case TypeText:
		return []Field{
			{Name: "text", Label: "Text Content", Kind: FieldRichText,
				Get: func(c Content) string { return c.(TextContent).Text },
				Set: func(c Content, v string) (Content, error) {
					t, ok := c.(TextContent)
					if !ok {
						return nil, mismatch(TypeText, c)
					}
					t.Text = v
					return t, nil
				}},
		}

	case TypeAbout:
		return []Field{
			{Name: "heading", Label: "Heading", Kind: FieldRichText,
				Get: func(c Content) string { return c.(AboutContent).Heading },
				Set: func(c Content, v string) (Content, error) {
					a, ok := c.(AboutContent)
					if !ok {
						return nil, mismatch(TypeAbout, c)
					}
					a.Heading = v
					return a, nil
				}},
			{Name: "text", Label: "Text", Kind: FieldRichText,
				Get: func(c Content) string { return c.(AboutContent).Text },
				Set: func(c Content, v string) (Content, error) {
					a, ok := c.(AboutContent)
					if !ok {
						return nil, mismatch(TypeAbout, c)
					}
					a.Text = v
					return a, nil
				}},
		}

	case TypeProject:
		return []Field{
			{Name: "title", Label: "Title", Kind: FieldRichText,
				Get: func(c Content) string { return c.(ProjectContent).Title },
				Set: func(c Content, v string) (Content, error) {
					p, ok := c.(ProjectContent)
					if !ok {
						return nil, mismatch(TypeProject, c)
					}
					p.Title = v
					return p, nil
				}},
			{Name: "description", Label: "Description", Kind: FieldRichText,
				Get: func(c Content) string { return c.(ProjectContent).Description },
				Set: func(c Content, v string) (Content, error) {
					p, ok := c.(ProjectContent)
					if !ok {
						return nil, mismatch(TypeProject, c)
					}
					p.Description = v
					return p, nil
				}},
			{Name: "image", Label: "Project Image", Kind: FieldImage,
				Get: func(c Content) string { return c.(ProjectContent).Image },
				Set: func(c Content, v string) (Content, error) {
					p, ok := c.(ProjectContent)
					if !ok {
						return nil, mismatch(TypeProject, c)
					}
					p.Image = v
					return p, nil
				}},
			{Name: "tags", Label: "Tags (comma-separated)", Kind: FieldTags,
				Get: func(c Content) string { return JoinTags(c.(ProjectContent).Tags) },
				Set: func(c Content, v string) (Content, error) {
					p, ok := c.(ProjectContent)
					if !ok {
						return nil, mismatch(TypeProject, c)
					}
					p.Tags = ParseTags(v)
					return p, nil
				}},
			{Name: "detailsLink", Label: "Project Link (optional)", Kind: FieldInput, Optional: true,
				Get: func(c Content) string { return c.(ProjectContent).DetailsLink },
				Set: func(c Content, v string) (Content, error) {
					p, ok := c.(ProjectContent)
					if !ok {
						return nil, mismatch(TypeProject, c)
					}
					p.DetailsLink = v
					return p, nil
				}},
		}

	case TypeExperience:
		return []Field{
			{Name: "company", Label: "Company", Kind: FieldRichText,
				Get: func(c Content) string { return c.(ExperienceContent).Company },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.Company = v
					return e, nil
				}},
			{Name: "position", Label: "Position", Kind: FieldRichText,
				Get: func(c Content) string { return c.(ExperienceContent).Position },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.Position = v
					return e, nil
				}},
			{Name: "current", Label: "I currently work here", Kind: FieldCheckbox,
				Get: func(c Content) string { return formatBool(c.(ExperienceContent).Current) },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.Current = parseBool(v)
					return e, nil
				}},
			{Name: "startDate", Label: "Start Date", Kind: FieldDate,
				Get: func(c Content) string { return c.(ExperienceContent).StartDate },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.StartDate = v
					return e, nil
				}},
			{Name: "endDate", Label: "End Date", Kind: FieldDate,
				Get: func(c Content) string { return c.(ExperienceContent).EndDate },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.EndDate = v
					return e, nil
				},
				HiddenWhen: func(c Content) bool { return c.(ExperienceContent).Current }},
			{Name: "description", Label: "Description", Kind: FieldRichText,
				Get: func(c Content) string { return c.(ExperienceContent).Description },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(ExperienceContent)
					if !ok {
						return nil, mismatch(TypeExperience, c)
					}
					e.Description = v
					return e, nil
				}},
		}

	case TypeEducation:
		return []Field{
			{Name: "school", Label: "School/University", Kind: FieldRichText,
				Get: func(c Content) string { return c.(EducationContent).School },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.School = v
					return e, nil
				}},
			{Name: "degree", Label: "Degree", Kind: FieldRichText,
				Get: func(c Content) string { return c.(EducationContent).Degree },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.Degree = v
					return e, nil
				}},
			{Name: "current", Label: "I currently study here", Kind: FieldCheckbox,
				Get: func(c Content) string { return formatBool(c.(EducationContent).Current) },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.Current = parseBool(v)
					return e, nil
				}},
			{Name: "startDate", Label: "Start Date", Kind: FieldDate,
				Get: func(c Content) string { return c.(EducationContent).StartDate },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.StartDate = v
					return e, nil
				}},
			{Name: "endDate", Label: "End Date", Kind: FieldDate,
				Get: func(c Content) string { return c.(EducationContent).EndDate },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.EndDate = v
					return e, nil
				},
				HiddenWhen: func(c Content) bool { return c.(EducationContent).Current }},
			{Name: "description", Label: "Description (optional)", Kind: FieldRichText, Optional: true,
				Get: func(c Content) string { return c.(EducationContent).Description },
				Set: func(c Content, v string) (Content, error) {
					e, ok := c.(EducationContent)
					if !ok {
						return nil, mismatch(TypeEducation, c)
					}
					e.Description = v
					return e, nil
				}},
		}

	case TypeCertification:
		return []Field{
			{Name: "name", Label: "Certification Name", Kind: FieldRichText,
				Get: func(c Content) string { return c.(CertificationContent).Name },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.Name = v
					return cc, nil
				}},
			{Name: "issuer", Label: "Issuing Organization", Kind: FieldRichText,
				Get: func(c Content) string { return c.(CertificationContent).Issuer },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.Issuer = v
					return cc, nil
				}},
			{Name: "date", Label: "Issue Date", Kind: FieldDate,
				Get: func(c Content) string { return c.(CertificationContent).Date },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.Date = v
					return cc, nil
				}},
			{Name: "expirationDate", Label: "Expiration Date (optional)", Kind: FieldDate, Optional: true,
				Get: func(c Content) string { return c.(CertificationContent).ExpirationDate },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.ExpirationDate = v
					return cc, nil
				}},
			{Name: "credentialLink", Label: "Credential Link (optional)", Kind: FieldInput, Optional: true,
				Get: func(c Content) string { return c.(CertificationContent).CredentialLink },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.CredentialLink = v
					return cc, nil
				}},
			{Name: "image", Label: "Badge Image (optional)", Kind: FieldImage, Optional: true,
				Get: func(c Content) string { return c.(CertificationContent).Image },
				Set: func(c Content, v string) (Content, error) {
					cc, ok := c.(CertificationContent)
					if !ok {
						return nil, mismatch(TypeCertification, c)
					}
					cc.Image = v
					return cc, nil
				}},
		}

	case TypeImage:
		return []Field{
			{Name: "url", Label: "Image", Kind: FieldImage,
				Get: func(c Content) string { return c.(ImageContent).URL },
				Set: func(c Content, v string) (Content, error) {
					i, ok := c.(ImageContent)
					if !ok {
						return nil, mismatch(TypeImage, c)
					}
					i.URL = v
					return i, nil
				}},
			{Name: "caption", Label: "Caption (optional)", Kind: FieldRichText, Optional: true,
				Get: func(c Content) string { return c.(ImageContent).Caption },
				Set: func(c Content, v string) (Content, error) {
					i, ok := c.(ImageContent)
					if !ok {
						return nil, mismatch(TypeImage, c)
					}
					i.Caption = v
					return i, nil
				}},
			{Name: "width", Label: "Width", Kind: FieldSelect,
				Options: []Option{
					{Value: "small", Label: "Small (33%)"},
					{Value: "medium", Label: "Medium (50%)"},
					{Value: "large", Label: "Large (75%)"},
					{Value: "full", Label: "Full (100%)"},
				},
				Get: func(c Content) string { return c.(ImageContent).Width },
				Set: func(c Content, v string) (Content, error) {
					i, ok := c.(ImageContent)
					if !ok {
						return nil, mismatch(TypeImage, c)
					}
					i.Width = v
					return i, nil
				}},
			{Name: "alignment", Label: "Alignment", Kind: FieldSelect,
				Options: []Option{
					{Value: "left", Label: "Left"},
					{Value: "center", Label: "Center"},
					{Value: "right", Label: "Right"},
				},
				Get: func(c Content) string { return c.(ImageContent).Alignment },
				Set: func(c Content, v string) (Content, error) {
					i, ok := c.(ImageContent)
					if !ok {
						return nil, mismatch(TypeImage, c)
					}
					i.Alignment = v
					return i, nil
				}},
		}

	case TypeDivider:
		return []Field{
			{Name: "style", Label: "Style", Kind: FieldSelect,
				Options: []Option{
					{Value: "solid", Label: "Solid"},
					{Value: "dashed", Label: "Dashed"},
					{Value: "dotted", Label: "Dotted"},
				},
				Get: func(c Content) string { return c.(DividerContent).Style },
				Set: func(c Content, v string) (Content, error) {
					d, ok := c.(DividerContent)
					if !ok {
						return nil, mismatch(TypeDivider, c)
					}
					d.Style = v
					return d, nil
				}},
			{Name: "thickness", Label: "Thickness", Kind: FieldSelect,
				Options: []Option{
					{Value: "thin", Label: "Thin"},
					{Value: "medium", Label: "Medium"},
					{Value: "thick", Label: "Thick"},
				},
				Get: func(c Content) string { return c.(DividerContent).Thickness },
				Set: func(c Content, v string) (Content, error) {
					d, ok := c.(DividerContent)
					if !ok {
						return nil, mismatch(TypeDivider, c)
					}
					d.Thickness = v
					return d, nil
				}},
			{Name: "color", Label: "Color", Kind: FieldInput,
				Get: func(c Content) string { return c.(DividerContent).Color },
				Set: func(c Content, v string) (Content, error) {
					d, ok := c.(DividerContent)
					if !ok {
						return nil, mismatch(TypeDivider, c)
					}
					d.Color = v
					return d, nil
				}},
		}

	default:
		return nil
	}
}

// Editor applies panel edits to the selected component through the store.
type Editor struct {
	store *Store
}

func NewEditor(store *Store) *Editor {
	return &Editor{store: store}
}

// Fields returns the schema for the selected component, or false when no
// component is selected.
func (e *Editor) Fields() ([]Field, bool) {
	c, ok := e.store.Selected()
	if !ok {
		return nil, false
	}
	return FieldsFor(c.Type), true
}

// SetField applies one field edit to the component with the given id and
// commits it through Store.UpdateContent.
func (e *Editor) SetField(componentID, fieldName, value string) error {
	c, ok := e.store.ByID(componentID)
	if !ok {
		return ErrComponentNotFound
	}

	for _, f := range FieldsFor(c.Type) {
		if f.Name != fieldName {
			continue
		}
		updated, err := f.Set(c.Content, value)
		if err != nil {
			return err
		}
		return e.store.UpdateContent(componentID, updated)
	}
	return fmt.Errorf("no field %q on component type %s", fieldName, c.Type)
}

// Composite date input helpers. The editor renders three numeric sub-fields
// that recombine on every keystroke and auto-advance focus when a sub-field
// is full.

// DatePartMaxLen returns the digit capacity of a date sub-field.
func DatePartMaxLen(part string) int {
	if part == "year" {
		return 4
	}
	return 2
}

// SanitizeDigits strips everything but digits from a date sub-field.
func SanitizeDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShouldAdvanceFocus reports whether typing has filled the sub-field, moving
// focus to the next one.
func ShouldAdvanceFocus(part, text string) bool {
	return len(text) == DatePartMaxLen(part)
}
