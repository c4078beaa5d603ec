package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstituteIndex_AddAssignsDensePositions(t *testing.T) {
	idx := NewInstituteIndex()

	assert.Equal(t, 1, idx.Add("jod"))
	assert.Equal(t, 2, idx.Add("mhv"))
	assert.Equal(t, 1, idx.Add("jod"))
	assert.Equal(t, 3, idx.Add("astron"))

	assert.Equal(t, 3, idx.Len())
	assert.Equal(t, []string{"jod", "mhv", "astron"}, idx.Codes())
}

func TestInstituteIndex_Position(t *testing.T) {
	idx := NewInstituteIndex()
	idx.Add("jod")

	pos, ok := idx.Position("jod")
	require.True(t, ok)
	assert.Equal(t, 1, pos)

	_, ok = idx.Position("mhv")
	assert.False(t, ok)
}

func TestInstituteIndex_CodesIsACopy(t *testing.T) {
	idx := NewInstituteIndex()
	idx.Add("jod")

	codes := idx.Codes()
	codes[0] = "changed"

	assert.Equal(t, []string{"jod"}, idx.Codes())
}

func TestBuildInstituteIndex_FirstEncounterOrder(t *testing.T) {
	authors := []Author{
		{Name: "A", InstituteCodes: []string{"mhv", "jod"}, Included: true},
		{Name: "B", InstituteCodes: []string{"jod", "astron"}, Included: true},
		{Name: "C", InstituteCodes: []string{"astron", "mhv", "uva"}, Included: true},
	}

	idx := BuildInstituteIndex(authors)

	assert.Equal(t, []string{"mhv", "jod", "astron", "uva"}, idx.Codes())
	pos, _ := idx.Position("uva")
	assert.Equal(t, 4, pos)
}

func TestBuildInstituteIndex_SharedCodeIndexedOnce(t *testing.T) {
	authors := []Author{
		{Name: "A", InstituteCodes: []string{"jod"}, Included: true},
		{Name: "B", InstituteCodes: []string{"jod"}, Included: true},
	}

	idx := BuildInstituteIndex(authors)

	assert.Equal(t, 1, idx.Len())
	pos, ok := idx.Position("jod")
	assert.True(t, ok)
	assert.Equal(t, 1, pos)
}

func TestBuildInstituteIndex_SkipsExcludedAuthors(t *testing.T) {
	authors := []Author{
		{Name: "A", InstituteCodes: []string{"jod"}, Included: true},
		{Name: "B", InstituteCodes: []string{"mhv"}, Included: false},
	}

	idx := BuildInstituteIndex(authors)

	_, ok := idx.Position("mhv")
	assert.False(t, ok)
	assert.Equal(t, []string{"jod"}, idx.Codes())
}

func TestBuildInstituteIndex_Empty(t *testing.T) {
	idx := BuildInstituteIndex(nil)

	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.Codes())
}
