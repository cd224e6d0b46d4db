package override

import (
	"path/filepath"
	"strings"
	"testing"
)

const sample = `# leading material outside any class is discarded

class Instance:
    """Create a new Instance instance.
    """
    def media_new(self, mrl):
        return libvlc_media_new(self, mrl)

class MediaPlayer:
    def play(self):
        return libvlc_media_player_play(self)

    def stop(self):
        return libvlc_media_player_stop(self)
`

func TestParseRecords(t *testing.T) {
	records, err := Parse(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	inst := records["Instance"]
	if inst == nil {
		t.Fatal("Instance record missing")
	}
	if !strings.Contains(inst.Docstring, "Create a new Instance instance.") {
		t.Errorf("docstring not extracted: %q", inst.Docstring)
	}
	if strings.Contains(inst.Code, `"""`) {
		t.Errorf("docstring not removed from code: %q", inst.Code)
	}
	if !inst.Methods["media_new"] {
		t.Errorf("overridden method not detected: %v", inst.Methods)
	}

	mp := records["MediaPlayer"]
	if mp == nil {
		t.Fatal("MediaPlayer record missing")
	}
	if mp.Docstring != "" {
		t.Errorf("unexpected docstring: %q", mp.Docstring)
	}
	if !mp.Methods["play"] || !mp.Methods["stop"] {
		t.Errorf("overridden methods not detected: %v", mp.Methods)
	}
	if !strings.Contains(mp.Code, "libvlc_media_player_play(self)") {
		t.Errorf("body not captured verbatim: %q", mp.Code)
	}
}

func TestParseFileMissingIsEmpty(t *testing.T) {
	records, err := ParseFile(filepath.Join(t.TempDir(), "override.py"))
	if err != nil {
		t.Fatalf("missing override file must not fail: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}

func TestParseFileEmptyPath(t *testing.T) {
	records, err := ParseFile("")
	if err != nil {
		t.Fatalf("empty path must not fail: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no records, got %d", len(records))
	}
}
