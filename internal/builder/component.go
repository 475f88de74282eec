// Package builder implements the portfolio builder engine: the typed component
// model, the ordered component store with its reorder semantics, the drag/drop
// position model, per-type HTML renderers, field editor schemas, and the
// date/image helpers the editors rely on.
package builder

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Type identifies one kind of portfolio content block.
type Type string

const (
	TypeHero          Type = "hero"
	TypeHeader        Type = "header"
	TypeText          Type = "text"
	TypeAbout         Type = "about"
	TypeProject       Type = "project"
	TypeExperience    Type = "experience"
	TypeEducation     Type = "education"
	TypeCertification Type = "certification"
	TypeImage         Type = "image"
	TypeDivider       Type = "divider"
)

// Types lists every component type in palette order.
var Types = []Type{
	TypeHero, TypeHeader, TypeText, TypeImage, TypeAbout,
	TypeProject, TypeCertification, TypeExperience, TypeEducation, TypeDivider,
}

var ErrUnknownType = errors.New("unknown component type")

// Content is the closed set of per-type content schemas. Exactly one concrete
// struct exists per Type; renderers and editors dispatch exhaustively over it.
type Content interface {
	Type() Type
}

type HeroContent struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Bio   string `json:"bio"`
}

type HeaderContent struct {
	Text string `json:"text"`
}

type TextContent struct {
	Text string `json:"text"`
}

type AboutContent struct {
	Heading string `json:"heading"`
	Text    string `json:"text"`
}

type ProjectContent struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Tags             []string `json:"tags"`
	Image            string   `json:"image"`
	AdditionalImages []string `json:"additionalImages"`
	DetailsLink      string   `json:"detailsLink"`
}

type ExperienceContent struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationContent struct {
	School      string `json:"school"`
	Degree      string `json:"degree"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type CertificationContent struct {
	Name           string `json:"name"`
	Issuer         string `json:"issuer"`
	Date           string `json:"date"`
	ExpirationDate string `json:"expirationDate"`
	CredentialLink string `json:"credentialLink"`
	Image          string `json:"image"`
}

// ImageContent width is one of small, medium, large, full; alignment is one of
// left, center, right.
type ImageContent struct {
	URL       string `json:"url"`
	Caption   string `json:"caption"`
	Width     string `json:"width"`
	Alignment string `json:"alignment"`
}

// DividerContent style is one of solid, dashed, dotted; thickness is one of
// thin, medium, thick.
type DividerContent struct {
	Style     string `json:"style"`
	Thickness string `json:"thickness"`
	Color     string `json:"color"`
}

func (HeroContent) Type() Type          { return TypeHero }
func (HeaderContent) Type() Type        { return TypeHeader }
func (TextContent) Type() Type          { return TypeText }
func (AboutContent) Type() Type         { return TypeAbout }
func (ProjectContent) Type() Type       { return TypeProject }
func (ExperienceContent) Type() Type    { return TypeExperience }
func (EducationContent) Type() Type     { return TypeEducation }
func (CertificationContent) Type() Type { return TypeCertification }
func (ImageContent) Type() Type         { return TypeImage }
func (DividerContent) Type() Type       { return TypeDivider }

// Component is one portfolio content block: a stable id, a type tag, and the
// type's content. The id survives reorders; it changes only when a component
// is created.
type Component struct {
	ID      string
	Type    Type
	Content Content
}

type componentEnvelope struct {
	ID      string          `json:"id"`
	Type    Type            `json:"type"`
	Content json.RawMessage `json:"content"`
}

func (c Component) MarshalJSON() ([]byte, error) {
	content, err := json.Marshal(c.Content)
	if err != nil {
		return nil, err
	}
	return json.Marshal(componentEnvelope{ID: c.ID, Type: c.Type, Content: content})
}

func (c *Component) UnmarshalJSON(data []byte) error {
	var env componentEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	content, err := decodeContent(env.Type, env.Content)
	if err != nil {
		return err
	}

	c.ID = env.ID
	c.Type = env.Type
	c.Content = content
	return nil
}

func decodeContent(t Type, raw json.RawMessage) (Content, error) {
	if len(raw) == 0 {
		raw = json.RawMessage("{}")
	}

	unmarshal := func(v Content) (Content, error) {
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, err
		}
		return v, nil
	}

	switch t {
	case TypeHero:
		c, err := unmarshal(&HeroContent{})
		return deref(c), err
	case TypeHeader:
		c, err := unmarshal(&HeaderContent{})
		return deref(c), err
	case TypeText:
		c, err := unmarshal(&TextContent{})
		return deref(c), err
	case TypeAbout:
		c, err := unmarshal(&AboutContent{})
		return deref(c), err
	case TypeProject:
		c, err := unmarshal(&ProjectContent{})
		return deref(c), err
	case TypeExperience:
		c, err := unmarshal(&ExperienceContent{})
		return deref(c), err
	case TypeEducation:
		c, err := unmarshal(&EducationContent{})
		return deref(c), err
	case TypeCertification:
		c, err := unmarshal(&CertificationContent{})
		return deref(c), err
	case TypeImage:
		c, err := unmarshal(&ImageContent{})
		return deref(c), err
	case TypeDivider:
		c, err := unmarshal(&DividerContent{})
		return deref(c), err
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}

// deref stores content as values so a decoded component can be copied freely.
func deref(c Content) Content {
	if c == nil {
		return nil
	}
	switch v := c.(type) {
	case *HeroContent:
		return *v
	case *HeaderContent:
		return *v
	case *TextContent:
		return *v
	case *AboutContent:
		return *v
	case *ProjectContent:
		return *v
	case *ExperienceContent:
		return *v
	case *EducationContent:
		return *v
	case *CertificationContent:
		return *v
	case *ImageContent:
		return *v
	case *DividerContent:
		return *v
	default:
		return c
	}
}
