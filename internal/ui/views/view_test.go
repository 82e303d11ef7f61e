package views

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"advocates/internal/domain"
	"advocates/internal/ui/input/types"
)

func TestRowUsesCanonicalNumbers(t *testing.T) {
	a := domain.Advocate{
		FirstName:         "Jane",
		LastName:          "Doe",
		City:              "Austin",
		Degree:            "MD",
		Specialties:       []string{"Cardiology", "Sleep medicine", "Oncology"},
		YearsOfExperience: 5,
		PhoneNumber:       7375550100,
	}
	assert.Equal(t, []string{"Jane", "Doe", "Austin", "MD", "3 Specialties", "5", "7375550100"}, []string(Row(a)))
}

func TestSpecialtiesLabelWithNone(t *testing.T) {
	assert.Equal(t, "0 Specialties", SpecialtiesLabel(domain.Advocate{}))
}

func TestRowsPreserveOrder(t *testing.T) {
	rows := Rows([]domain.Advocate{{FirstName: "Zed"}, {FirstName: "Amy"}})
	assert.Equal(t, "Zed", rows[0][0])
	assert.Equal(t, "Amy", rows[1][0])
	assert.NotNil(t, Rows(nil))
}

func TestColumnsGrowWithWidth(t *testing.T) {
	narrow := Columns(80)
	wide := Columns(200)

	assert.Len(t, narrow, 7)
	assert.Equal(t, "Years of Experience", narrow[5].Title)
	assert.Greater(t, wide[0].Width, narrow[0].Width)
	assert.Equal(t, narrow[5].Width, wide[5].Width, "numeric columns keep their width")
}

func TestRenderEmptyStates(t *testing.T) {
	r := NewRenderer()

	out := StripANSI(r.Render(ViewState{Width: 100, Height: 30, Loading: true}))
	assert.Contains(t, out, "Loading advocates...")

	out = StripANSI(r.Render(ViewState{Width: 100, Height: 30}))
	assert.Contains(t, out, "No advocates loaded")

	out = StripANSI(r.Render(ViewState{Width: 100, Height: 30, Total: 3, DebouncedQuery: "zzz"}))
	assert.Contains(t, out, `No advocates match "zzz".`)
	assert.Contains(t, out, "[0 of 3]")
}

func TestRenderStatusAndSearchEcho(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.Render(ViewState{
		Width:         100,
		Height:        30,
		RawQuery:      "aus",
		Total:         1,
		VisibleCount:  1,
		Table:         "TABLE",
		LoadError:     "boom",
		StatusMessage: "Error: failed to load advocates: boom",
		Footer:        "? help",
	}))

	assert.Contains(t, out, "Searching for: aus")
	assert.Contains(t, out, "TABLE")
	assert.Contains(t, out, "failed to load advocates: boom")
	assert.Contains(t, out, "? help")
}

func TestRenderDetailListsSpecialties(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.RenderDetail(domain.Advocate{
		FirstName:   "Jane",
		LastName:    "Doe",
		Specialties: []string{"Cardiology"},
		PhoneNumber: 7375550100,
	}))

	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "• Cardiology")
	assert.Contains(t, out, "7375550100")

	out = StripANSI(r.RenderDetail(domain.Advocate{FirstName: "Ann"}))
	assert.Contains(t, out, "none listed")
}

func TestHelpContentCoversEveryBinding(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.RenderHelpContent(types.Keys))

	for _, group := range types.Keys.FullHelp() {
		for _, b := range group {
			assert.Contains(t, out, b.Help().Desc)
		}
	}
}

func TestRenderSettlingAndSource(t *testing.T) {
	r := NewRenderer()
	out := StripANSI(r.Render(ViewState{Width: 100, Height: 30, Total: 2, VisibleCount: 2, Table: "TABLE", Settling: true, Source: "seed"}))
	assert.Contains(t, out, "… filtering")
	assert.Contains(t, out, "Source: seed")

	// A status message takes the line over
	out = StripANSI(r.Render(ViewState{Width: 100, Height: 30, Total: 2, VisibleCount: 2, Table: "TABLE", Source: "seed", StatusMessage: "Loaded 2 advocates"}))
	assert.NotContains(t, out, "Source: seed")
	assert.NotContains(t, out, "filtering")
}
