package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeFromWindowsFlag(t *testing.T) {
	assert.Equal(t, RenderModeWindows, ModeFromWindowsFlag(true))
	assert.Equal(t, RenderModeDefault, ModeFromWindowsFlag(false))
	assert.Equal(t, "windows", RenderModeWindows.String())
}

func TestListingOptions_Validate(t *testing.T) {
	ok := ListingOptions{AuthorsPath: "a.txt", InstitutesPath: "i.txt"}
	assert.NoError(t, ok.Validate())

	err := ListingOptions{InstitutesPath: "i.txt"}.Validate()
	assert.True(t, errors.Is(err, ErrMissingOption))
	assert.Contains(t, err.Error(), "authors")

	err = ListingOptions{AuthorsPath: "a.txt"}.Validate()
	assert.True(t, errors.Is(err, ErrMissingOption))
	assert.Contains(t, err.Error(), "institutes")
}

func TestListing_UnknownCodes(t *testing.T) {
	idx := NewInstituteIndex()
	idx.Add("jod")
	idx.Add("xyz")
	l := &Listing{
		Institutes: InstituteTable{"jod": {Code: "jod"}},
		Index:      idx,
	}

	assert.Equal(t, []string{"xyz"}, l.UnknownCodes())
}

func TestListing_UnknownCodesNil(t *testing.T) {
	var l *Listing
	assert.Nil(t, l.UnknownCodes())
	assert.Nil(t, (&Listing{}).UnknownCodes())
}
