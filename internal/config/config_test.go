package config_test

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-partytype/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"UserAgent", config.UserAgent},
		{"DBFileName", config.DBFileName},
		{"FrameworkName", config.FrameworkName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that the record defaults match the documented lifecycle.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, "organization", config.DefaultType)
	assert.Equal(t, "last_first", config.DefaultNameOrder)
	assert.Equal(t, "male", config.DefaultGender)
	assert.True(t, config.DefaultActive)
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
}

func TestUserAgent_Format(t *testing.T) {
	assert.True(t, strings.HasPrefix(config.UserAgent, "Go-PartyType/"), "UserAgent must start with AppName/")
}

func TestCoreModulePattern_Compiles(t *testing.T) {
	re := regexp.MustCompile(config.CoreModulePattern)

	assert.True(t, re.MatchString("ir"))
	assert.True(t, re.MatchString("res"))
	assert.True(t, re.MatchString("webdav"))
	assert.False(t, re.MatchString("party"))
	assert.False(t, re.MatchString("irrigation"))
}

// TestTimeoutsAndLimits ensures that operational constraints are reasonable.
func TestTimeoutsAndLimits(t *testing.T) {
	t.Parallel()

	assert.Greater(t, config.HTTPTimeout, 0*time.Second, "HTTPTimeout must be positive")
	assert.LessOrEqual(t, config.HTTPTimeout, 2*time.Minute, "HTTPTimeout should not be excessively long")
	assert.Greater(t, config.ShutdownTimeout, 0*time.Second, "ShutdownTimeout must be positive")

	assert.Greater(t, config.MaxHTTPResponseSize, 0, "MaxHTTPResponseSize must be positive")
	assert.Less(t, int64(config.MaxHTTPResponseSize), int64(1*1024*1024*1024), "MaxHTTPResponseSize should stay under 1GB to protect RAM")
}
