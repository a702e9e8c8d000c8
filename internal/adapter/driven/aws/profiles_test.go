package aws

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestGetAWSProfiles_PrefixedSectionsInFileOrder(t *testing.T) {
	path := writeConfig(t, `[profile dev]
region = eu-west-1

[profile prod]
region = us-east-1
output = json

[default]
region = us-east-1
`)

	r := newAWSRepository(WithConfigFile(path))
	assert.Equal(t, []string{"dev", "prod"}, r.GetAWSProfiles())
}

func TestGetAWSProfiles_KeepsFileOrder(t *testing.T) {
	path := writeConfig(t, "[profile zeta]\n[sso-session corp]\nsso_region = us-east-1\n[profile alpha]\n")

	r := newAWSRepository(WithConfigFile(path))
	assert.Equal(t, []string{"zeta", "alpha"}, r.GetAWSProfiles())
}

func TestGetAWSProfiles_NestedValues(t *testing.T) {
	path := writeConfig(t, `[profile dev]
s3 =
    max_concurrent_requests = 20
    max_queue_size = 10000
region = eu-west-1
[profile ops]
`)

	r := newAWSRepository(WithConfigFile(path))
	assert.Equal(t, []string{"dev", "ops"}, r.GetAWSProfiles())
}

func TestGetAWSProfiles_MissingFile(t *testing.T) {
	r := newAWSRepository(WithConfigFile(filepath.Join(t.TempDir(), "absent")))
	profiles := r.GetAWSProfiles()
	assert.NotNil(t, profiles)
	assert.Empty(t, profiles)
}

func TestGetAWSProfiles_Unparseable(t *testing.T) {
	path := writeConfig(t, "[profile dev\nthis is not ini\n")

	r := newAWSRepository(WithConfigFile(path))
	assert.Empty(t, r.GetAWSProfiles())
}

func TestGetAWSProfiles_EnvOverride(t *testing.T) {
	path := writeConfig(t, "[profile from-env]\n")
	t.Setenv("AWS_CONFIG_FILE", path)

	r := newAWSRepository()
	assert.Equal(t, []string{"from-env"}, r.GetAWSProfiles())
}

func TestGetAWSProfiles_OptionBeatsEnv(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", writeConfig(t, "[profile from-env]\n"))
	path := writeConfig(t, "[profile from-option]\n")

	r := newAWSRepository(WithConfigFile(path))
	assert.Equal(t, []string{"from-option"}, r.GetAWSProfiles())
}

func TestGetAWSProfiles_HomeDirDefault(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".aws"), 0700))
	require.NoError(t, os.WriteFile(filepath.Join(home, ".aws", "config"), []byte("[profile home]\n"), 0600))
	t.Setenv("AWS_CONFIG_FILE", "")
	t.Setenv("HOME", home)

	r := newAWSRepository()
	assert.Equal(t, []string{"home"}, r.GetAWSProfiles())
}
