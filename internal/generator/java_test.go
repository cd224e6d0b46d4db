package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gopykens/python-vlc/internal/typemap"
)

func newJava(t *testing.T) *Java {
	t.Helper()
	dir := t.TempDir()
	boilerplate := writeFixture(t, dir, "boilerplate.java",
		"/* generated file, do not edit */\nbuild_date=\"placeholder\";\n")
	header := writeFixture(t, dir, "LibVlc-header.java",
		"public interface LibVlc extends Library\n{\n")
	footer := writeFixture(t, dir, "LibVlc-footer.java", "}\n")

	funcs := testFuncs()
	enums := testEnums()
	table, err := typemap.Build(JavaTypes, enums, JavaNameRules)
	require.NoError(t, err)
	require.NoError(t, table.Check(funcs, DefaultBlacklist))

	return &Java{
		Funcs:           funcs,
		Enums:           enums,
		Table:           table,
		Blacklist:       DefaultBlacklist,
		BoilerplatePath: boilerplate,
		HeaderPath:      header,
		FooterPath:      footer,
		Package:         "org.videolan.jvlc.internal",
		BuildDate:       testDate,
	}
}

func TestJavaSaveEnumFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	require.NoError(t, newJava(t).Save(out))

	data, err := os.ReadFile(filepath.Join(out, "State.java"))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "build_date=\""+testDate+"\";\n")
	assert.NotContains(t, text, "placeholder")
	assert.Contains(t, text, "package org.videolan.jvlc.internal;\n\n\npublic enum State\n{\n")
	assert.Contains(t, text, "        libvlc_NothingSpecial (0),\n")
	assert.Contains(t, text, "        libvlc_Playing (2),\n")
	assert.Contains(t, text, "        State(int value) { this._value = value; }\n")
	assert.Contains(t, text, "        public int value() { return this._value; }\n")
}

func TestJavaSaveLibVlc(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")
	require.NoError(t, newJava(t).Save(out))

	data, err := os.ReadFile(filepath.Join(out, "LibVlc.java"))
	require.NoError(t, err)
	text := string(data)

	assert.Contains(t, text, "/* generated file, do not edit */")
	assert.Contains(t, text, "public interface LibVlc extends Library")

	assert.Contains(t, text, "    public class LibVlcInstance extends PointerType\n    {\n    }\n")
	assert.Contains(t, text, "    public class LibVlcMediaList extends PointerType\n    {\n    }\n")
	// Holder classes come out sorted by name.
	assert.Less(t, strings.Index(text, "LibVlcInstance extends"), strings.Index(text, "LibVlcMediaList extends"))

	assert.Contains(t, text, "int libvlc_media_list_count(LibVlcMediaList p_ml, Pointer p_e);\n")
	assert.Contains(t, text, "LibVlcMedia libvlc_media_list_item_at_index(LibVlcMediaList p_ml, int i_pos, Pointer p_e);\n")
	assert.Contains(t, text, "String libvlc_get_version();\n")
	assert.NotContains(t, text, "libvlc_set_exit_handler")

	assert.True(t, strings.HasSuffix(text, "}\n"))
}

func TestJavaSaveDefaultsDirname(t *testing.T) {
	g := newJava(t)
	cwd, err := os.Getwd()
	require.NoError(t, err)
	tmp := t.TempDir()
	require.NoError(t, os.Chdir(tmp))
	defer os.Chdir(cwd)

	require.NoError(t, g.Save("-"))
	_, err = os.Stat(filepath.Join(tmp, "internal", "LibVlc.java"))
	assert.NoError(t, err)
}
