package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHotelInfoIsStable(t *testing.T) {
	first := HotelInfo()
	second := HotelInfo()

	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestHotelInfoCoversBrochureSections(t *testing.T) {
	info := HotelInfo()

	assert.True(t, strings.Contains(info, "Thira Beach Home"))
	assert.True(t, strings.Contains(info, "Our facilities include:"))
	assert.True(t, strings.Contains(info, "Location: Kothakulam Beach"))
	assert.True(t, strings.Contains(info, "Contact: +91-94470 44788"))
}
