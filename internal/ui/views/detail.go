package views

import (
	"fmt"
	"strings"

	"advocates/internal/domain"
	"advocates/internal/ui/input/types"
)

// RenderDetail renders the full record of one advocate, specialties expanded
func (r *Renderer) RenderDetail(a domain.Advocate) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(a.FullName()))
	b.WriteString("\n")

	field := func(label, value string) {
		b.WriteString(fmt.Sprintf("  %s %s\n", r.styles.Key.Render(fmt.Sprintf("%-20s", label)), r.styles.Desc.Render(value)))
	}
	field("City", a.City)
	field("Degree", a.Degree)
	field("Years of Experience", domain.FormatNumber(int64(a.YearsOfExperience)))
	field("Phone Number", domain.FormatNumber(a.PhoneNumber))

	b.WriteString(r.styles.Section.Render(SpecialtiesLabel(a)))
	b.WriteString("\n")
	if len(a.Specialties) == 0 {
		b.WriteString(r.styles.Dim.Render("  none listed"))
		b.WriteString("\n")
	}
	for _, s := range a.Specialties {
		b.WriteString(fmt.Sprintf("  • %s\n", s))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderHelpContent renders every key binding grouped by section
func (r *Renderer) RenderHelpContent(keys types.KeyMap) string {
	sections := []string{"Navigation", "Search", "Other"}

	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Advocates Help"))
	b.WriteString("\n")

	for i, group := range keys.FullHelp() {
		if i < len(sections) {
			b.WriteString(r.styles.Section.Render(sections[i]))
			b.WriteString("\n")
		}
		for _, binding := range group {
			h := binding.Help()
			b.WriteString(fmt.Sprintf("  %s %s\n", r.styles.Key.Render(fmt.Sprintf("%-10s", h.Key)), r.styles.Desc.Render(h.Desc)))
		}
	}

	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("  Search matches any part of a name, city, degree, specialty,"))
	b.WriteString("\n")
	b.WriteString(r.styles.Dim.Render("  years of experience or phone number, ignoring case."))

	return b.String()
}
