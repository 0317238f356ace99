package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteKML(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteKML(&buf, exportList())
	require.NoError(t, err)

	// the untimed checkin has no coordinates and is skipped
	assert.Equal(t, 2, n)

	out := buf.String()
	assert.Contains(t, out, "<kml")
	assert.Contains(t, out, "<name>Checkin History</name>")
	assert.Contains(t, out, "<name>Coffee Shop</name>")
	assert.Contains(t, out, "<name>Sushi Restaurant</name>")
	assert.Contains(t, out, "Peet&#39;s Coffee")
	assert.NotContains(t, out, "Mystery Spot")

	// coordinates are lon,lat
	assert.Contains(t, out, "-117.8415,33.6508")
}

func TestWriteKMLFolderOrder(t *testing.T) {
	var buf bytes.Buffer
	_, err := WriteKML(&buf, exportList())
	require.NoError(t, err)

	out := buf.String()
	sushi := strings.Index(out, "<name>Sushi Restaurant</name>")
	coffee := strings.Index(out, "<name>Coffee Shop</name>")
	require.NotEqual(t, -1, sushi)
	require.NotEqual(t, -1, coffee)

	// folders appear in first-encounter order of the input list
	assert.Less(t, sushi, coffee)
}

func TestWriteKMLEmptyList(t *testing.T) {
	var buf bytes.Buffer
	n, err := WriteKML(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Contains(t, buf.String(), "<kml")
}
