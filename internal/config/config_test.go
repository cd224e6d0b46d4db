package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingImplicitFile(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	defer os.Chdir(cwd)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`backend: java
blacklist:
  - libvlc_printerr
java:
  package: com.example.vlc
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "java", cfg.Backend)
	assert.Equal(t, []string{"libvlc_printerr"}, cfg.Blacklist)
	assert.Equal(t, "com.example.vlc", cfg.Java.Package)
	// Unset fields keep their defaults.
	assert.Equal(t, "-", cfg.Output)
	assert.Equal(t, "header.py", cfg.Python.Header)
	assert.Equal(t, "boilerplate.java", cfg.Java.Boilerplate)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vlcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: ruby\n"), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown backend")
}

func TestValidate(t *testing.T) {
	assert.NoError(t, (&Config{Backend: "python"}).Validate())
	assert.NoError(t, (&Config{Backend: "java"}).Validate())
	assert.Error(t, (&Config{Backend: ""}).Validate())
}
