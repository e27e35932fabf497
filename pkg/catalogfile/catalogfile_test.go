// pkg/catalogfile/catalogfile_test.go
package catalogfile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	cat, err := ParseCatalog([]byte(`{
		"version": "1.0.0",
		"launch_strategies": {
			"New Startup/Product Launch": {
				"Bootstrapping (No external funding)": {
					"Get Users or Customers": ["One", "Two", "Three"],
					"Attract Investors": []
				}
			}
		}
	}`))

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cat.Version)

	lines, ok := cat.LaunchStrategies.Lookup("New Startup/Product Launch", "Bootstrapping (No external funding)", "Get Users or Customers")
	require.True(t, ok)
	assert.Equal(t, []string{"One", "Two", "Three"}, lines)

	// An empty leaf reads as a miss, same as an absent path.
	_, ok = cat.LaunchStrategies.Lookup("New Startup/Product Launch", "Bootstrapping (No external funding)", "Attract Investors")
	assert.False(t, ok)
	_, ok = cat.LaunchStrategies.Lookup("Funding Announcement", "Raised $3M+", "Build Press & Awareness")
	assert.False(t, ok)
}

func TestParseCatalog_Malformed(t *testing.T) {
	_, err := ParseCatalog([]byte(`{not json`))
	assert.Error(t, err)
}
