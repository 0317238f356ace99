package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	filter, terms := parseQuery(strings.Fields("year 2023 city portland coffee shop"))
	assert.Equal(t, 2023, filter.Year)
	assert.Equal(t, "portland", filter.City)
	assert.Equal(t, "coffee shop", terms)

	// cat consumes the rest of the line
	filter, terms = parseQuery(strings.Fields("cat coffee shop"))
	assert.Equal(t, "coffee shop", filter.Category)
	assert.Equal(t, "", terms)

	filter, terms = parseQuery(strings.Fields("state CA month 6"))
	assert.Equal(t, "CA", filter.State)
	assert.Equal(t, 6, filter.Month)
	assert.Equal(t, "", terms)

	// malformed values fall through to free text
	filter, terms = parseQuery(strings.Fields("year nope month 13"))
	assert.True(t, filter.IsZero())
	assert.Equal(t, "year nope month 13", terms)
}

func TestFilterFlagsToFilter(t *testing.T) {
	f := &filterFlags{year: 2023, after: "2023-01-15", near: "45.5, -122.6", radius: 2}
	filter, err := f.toFilter()
	require.NoError(t, err)

	assert.Equal(t, 2023, filter.Year)
	assert.Equal(t, "2023-01-15", filter.After.Format("2006-01-02"))
	require.NotNil(t, filter.Near)
	assert.Equal(t, 45.5, filter.Near.Lat)
	assert.Equal(t, -122.6, filter.Near.Lng)

	bad := &filterFlags{after: "01/15/2023"}
	_, err = bad.toFilter()
	assert.Error(t, err)

	badNear := &filterFlags{near: "not-coords"}
	_, err = badNear.toFilter()
	assert.Error(t, err)
}
