package views

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"advocates/internal/domain"
)

// column widths at 80 columns; wider terminals grow the text columns
var baseColumns = []table.Column{
	{Title: "First Name", Width: 11},
	{Title: "Last Name", Width: 11},
	{Title: "City", Width: 13},
	{Title: "Degree", Width: 6},
	{Title: "Specialties", Width: 14},
	{Title: "Years of Experience", Width: 19},
	{Title: "Phone Number", Width: 12},
}

// growable lists the columns that absorb extra width
var growable = []int{0, 1, 2, 4}

// Columns returns the table columns sized for a terminal width
func Columns(width int) []table.Column {
	cols := make([]table.Column, len(baseColumns))
	copy(cols, baseColumns)

	used := 0
	for _, c := range cols {
		// bubbles/table pads each cell by one on both sides
		used += c.Width + 2
	}
	// Main style padding
	extra := width - 4 - used
	if extra <= 0 {
		return cols
	}

	share := extra / len(growable)
	for _, i := range growable {
		cols[i].Width += share
	}
	return cols
}

// SpecialtiesLabel is the collapsed specialties cell, e.g. "3 Specialties"
func SpecialtiesLabel(a domain.Advocate) string {
	return fmt.Sprintf("%d Specialties", len(a.Specialties))
}

// Row renders one advocate as a table row
func Row(a domain.Advocate) table.Row {
	return table.Row{
		a.FirstName,
		a.LastName,
		a.City,
		a.Degree,
		SpecialtiesLabel(a),
		domain.FormatNumber(int64(a.YearsOfExperience)),
		domain.FormatNumber(a.PhoneNumber),
	}
}

// Rows renders the visible subset in order
func Rows(advocates []domain.Advocate) []table.Row {
	rows := make([]table.Row, 0, len(advocates))
	for _, a := range advocates {
		rows = append(rows, Row(a))
	}
	return rows
}
