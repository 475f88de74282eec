package builder

import (
	"fmt"
	"html"
	"strings"
)

// Component renderers: pure functions from (component, options) to markup.
// Rich-text fields were authored in the editor by the same logged-in user and
// are inserted as-is; plain-text fields (titles in attributes, tags, links,
// colors) are escaped so they cannot inject markup. Missing optional fields
// render nothing.

// RenderOptions selects between edit mode (wrapper chrome, move buttons,
// selection highlight) and preview mode (bare content).
type RenderOptions struct {
	EditMode   bool
	SelectedID string
}

func esc(s string) string { return html.EscapeString(s) }

// RenderDocument renders the whole component list in order, wrapped in the
// template class the stylesheet keys on.
func RenderDocument(template string, components []Component, opts RenderOptions) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="portfolio-wrapper template-%s">`, esc(template))
	for i, c := range components {
		b.WriteString(RenderComponent(c, i, len(components), opts))
	}
	b.WriteString(`</div>`)
	return b.String()
}

// RenderComponent renders one component, adding the edit-mode wrapper with
// its type label and move controls when opts.EditMode is set.
func RenderComponent(c Component, index, total int, opts RenderOptions) string {
	inner := renderContent(c)

	if !opts.EditMode {
		return inner
	}

	selected := ""
	if c.ID == opts.SelectedID {
		selected = " selected"
	}
	upDisabled, downDisabled := "", ""
	if index == 0 {
		upDisabled = " disabled"
	}
	if index == total-1 {
		downDisabled = " disabled"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="component-wrapper%s" data-component-id="%s" data-index="%d" draggable="true">`,
		selected, esc(c.ID), index)
	b.WriteString(`<div class="component-controls">`)
	fmt.Fprintf(&b, `<div class="component-label">%s</div>`, esc(string(c.Type)))
	b.WriteString(`<div class="component-move-buttons">`)
	fmt.Fprintf(&b, `<button class="component-move-button move-up"%s></button>`, upDisabled)
	fmt.Fprintf(&b, `<button class="component-move-button move-down"%s></button>`, downDisabled)
	b.WriteString(`</div></div>`)
	b.WriteString(inner)
	b.WriteString(`</div>`)
	return b.String()
}

// renderContent dispatches over the closed content union. Every type is
// handled; an unknown dynamic value cannot occur past decoding.
func renderContent(c Component) string {
	switch content := c.Content.(type) {
	case HeroContent:
		return renderHero(content)
	case HeaderContent:
		return renderHeader(content)
	case TextContent:
		return renderText(content)
	case AboutContent:
		return renderAbout(content)
	case ProjectContent:
		return renderProject(content)
	case ExperienceContent:
		return renderExperience(content)
	case EducationContent:
		return renderEducation(content)
	case CertificationContent:
		return renderCertification(content)
	case ImageContent:
		return renderImage(content)
	case DividerContent:
		return renderDivider(content)
	default:
		return `<div>Unknown component type</div>`
	}
}

func renderHero(c HeroContent) string {
	var b strings.Builder
	b.WriteString(`<div class="component-hero">`)
	fmt.Fprintf(&b, `<h1 class="hero-name">%s</h1>`, c.Name)
	fmt.Fprintf(&b, `<p class="hero-title">%s</p>`, c.Title)
	fmt.Fprintf(&b, `<p class="hero-bio">%s</p>`, c.Bio)
	b.WriteString(`</div>`)
	return b.String()
}

func renderHeader(c HeaderContent) string {
	return fmt.Sprintf(`<div class="component-header"><h2>%s</h2></div>`, c.Text)
}

func renderText(c TextContent) string {
	return fmt.Sprintf(`<div class="component-text"><p>%s</p></div>`, c.Text)
}

func renderAbout(c AboutContent) string {
	return fmt.Sprintf(`<div class="component-about"><h3>%s</h3><p>%s</p></div>`, c.Heading, c.Text)
}

func renderProject(c ProjectContent) string {
	var b strings.Builder
	b.WriteString(`<div class="component-project">`)
	if c.Image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="project-image" />`, esc(c.Image), esc(c.Title))
	}
	b.WriteString(`<div class="project-content">`)
	fmt.Fprintf(&b, `<h3>%s</h3>`, c.Title)
	fmt.Fprintf(&b, `<p>%s</p>`, c.Description)
	if len(c.Tags) > 0 {
		b.WriteString(`<div class="project-tags">`)
		for _, tag := range c.Tags {
			fmt.Fprintf(&b, `<span class="tag">%s</span>`, esc(tag))
		}
		b.WriteString(`</div>`)
	}
	if c.DetailsLink != "" {
		fmt.Fprintf(&b, `<a href="%s" target="_blank" class="project-link">View Project</a>`, esc(c.DetailsLink))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func renderExperience(c ExperienceContent) string {
	endDate := ""
	switch {
	case c.Current:
		endDate = "Present"
	case c.EndDate != "":
		endDate = FormatDate(c.EndDate)
	}

	var b strings.Builder
	b.WriteString(`<div class="component-experience"><div class="experience-header"><div>`)
	fmt.Fprintf(&b, `<h3>%s</h3>`, c.Company)
	fmt.Fprintf(&b, `<p class="experience-position">%s</p>`, c.Position)
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div class="experience-dates">%s - %s</div>`, FormatDate(c.StartDate), endDate)
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<p class="experience-description">%s</p>`, c.Description)
	b.WriteString(`</div>`)
	return b.String()
}

func renderEducation(c EducationContent) string {
	endDate := ""
	switch {
	case c.Current:
		endDate = "Present"
	case c.EndDate != "":
		endDate = FormatDate(c.EndDate)
	}

	var b strings.Builder
	b.WriteString(`<div class="component-education"><div class="education-header"><div>`)
	fmt.Fprintf(&b, `<h3>%s</h3>`, c.School)
	fmt.Fprintf(&b, `<p class="education-degree">%s</p>`, c.Degree)
	b.WriteString(`</div>`)
	fmt.Fprintf(&b, `<div class="education-dates">%s - %s</div>`, FormatDate(c.StartDate), endDate)
	b.WriteString(`</div>`)
	if c.Description != "" {
		fmt.Fprintf(&b, `<p class="education-description">%s</p>`, c.Description)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func renderCertification(c CertificationContent) string {
	var b strings.Builder
	b.WriteString(`<div class="component-certification">`)
	if c.Image != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" class="cert-image" />`, esc(c.Image), esc(c.Name))
	}
	b.WriteString(`<div class="cert-content">`)
	fmt.Fprintf(&b, `<h3>%s</h3>`, c.Name)
	fmt.Fprintf(&b, `<p class="cert-issuer">%s</p>`, c.Issuer)
	fmt.Fprintf(&b, `<p class="cert-date">Issued: %s</p>`, FormatDate(c.Date))
	if c.ExpirationDate != "" {
		fmt.Fprintf(&b, `<p class="cert-expiration">Expires: %s</p>`, FormatDate(c.ExpirationDate))
	}
	if c.CredentialLink != "" {
		fmt.Fprintf(&b, `<a href="%s" target="_blank" class="cert-link">View Credential</a>`, esc(c.CredentialLink))
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func renderImage(c ImageContent) string {
	alignment := c.Alignment
	if alignment == "" {
		alignment = "center"
	}
	width := c.Width
	if width == "" {
		width = "full"
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<div class="component-image align-%s">`, esc(alignment))
	fmt.Fprintf(&b, `<div class="image-container width-%s">`, esc(width))
	if c.URL != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="%s" />`, esc(c.URL), esc(c.Caption))
	} else {
		b.WriteString(`<div class="image-placeholder">No image selected</div>`)
	}
	if c.Caption != "" {
		fmt.Fprintf(&b, `<p class="image-caption">%s</p>`, c.Caption)
	}
	b.WriteString(`</div></div>`)
	return b.String()
}

func renderDivider(c DividerContent) string {
	style := c.Style
	if style == "" {
		style = "solid"
	}
	thickness := c.Thickness
	if thickness == "" {
		thickness = "medium"
	}
	color := c.Color
	if color == "" {
		color = "#d1d5db"
	}
	return fmt.Sprintf(
		`<div class="component-divider"><hr class="divider-line style-%s thickness-%s" style="border-color: %s;" /></div>`,
		esc(style), esc(thickness), esc(color))
}
