package wrapper

import (
	"reflect"
	"testing"

	"github.com/gopykens/python-vlc/internal/override"
	"github.com/gopykens/python-vlc/internal/parser"
	"github.com/gopykens/python-vlc/internal/typemap"
)

var testBase = map[string]string{
	"libvlc_instance_t*":   "Instance",
	"libvlc_media_list_t*": "MediaList",
	"libvlc_media_t*":      "Media",
	"libvlc_exception_t*":  "ctypes.POINTER(VLCException)",
	"char*":                "ctypes.c_char_p",
	"int":                  "ctypes.c_int",
	"int*":                 "ctypes.POINTER(ctypes.c_int)",
	"void":                 "None",
}

func testTable(t *testing.T) typemap.Table {
	t.Helper()
	table, err := typemap.Build(testBase, nil, typemap.NameRules{})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return table
}

func fn(name, ret string, params ...*parser.Param) *parser.FuncDecl {
	return &parser.FuncDecl{ReturnType: ret, Name: name, Params: params}
}

func param(typ, name string) *parser.Param {
	return &parser.Param{Type: typ, Name: name}
}

func TestBuildPlanGrouping(t *testing.T) {
	funcs := []*parser.FuncDecl{
		fn("libvlc_media_list_count", "int",
			param("libvlc_media_list_t*", "p_ml"),
			param("libvlc_exception_t*", "p_e")),
		fn("libvlc_media_list_item_at_index", "libvlc_media_t*",
			param("libvlc_media_list_t*", "p_ml"),
			param("int", "i_pos"),
			param("libvlc_exception_t*", "p_e")),
		fn("libvlc_release", "void",
			param("libvlc_instance_t*", "p_inst")),
		fn("libvlc_get_version", "char*"),
		fn("libvlc_media_get_mrl", "char*",
			param("libvlc_media_t*", "p_md")),
	}
	objects := []string{"Instance", "MediaList", "Media"}

	plan := BuildPlan(funcs, testTable(t), objects, nil, nil)

	if len(plan.Classes) != 3 {
		t.Fatalf("expected 3 classes, got %d", len(plan.Classes))
	}
	// Classes come out sorted by name.
	for i, want := range []string{"Instance", "Media", "MediaList"} {
		if plan.Classes[i].Name != want {
			t.Errorf("class %d = %s, expected %s", i, plan.Classes[i].Name, want)
		}
	}

	ml := plan.Classes[2]
	if ml.Prefix != "libvlc_media_list_" {
		t.Errorf("prefix = %q", ml.Prefix)
	}
	if len(ml.Methods) != 2 {
		t.Fatalf("expected 2 MediaList methods, got %d", len(ml.Methods))
	}
	if ml.Methods[0].ShortName != "count" || ml.Methods[0].Capability != Sized {
		t.Errorf("count method = %q cap %d", ml.Methods[0].ShortName, ml.Methods[0].Capability)
	}
	if ml.Methods[1].ShortName != "item_at_index" || ml.Methods[1].Capability != Indexable {
		t.Errorf("item_at_index method = %q cap %d", ml.Methods[1].ShortName, ml.Methods[1].Capability)
	}

	inst := plan.Classes[0]
	if len(inst.Methods) != 1 || inst.Methods[0].ShortName != "release" {
		t.Errorf("Instance methods = %+v", inst.Methods)
	}
	if inst.Methods[0].Capability != Plain {
		t.Errorf("release classified %d, expected Plain", inst.Methods[0].Capability)
	}

	// Parameterless functions never join a class.
	if plan.Wrapped["libvlc_get_version"] {
		t.Error("libvlc_get_version must not be wrapped")
	}
	for _, name := range []string{"libvlc_media_list_count", "libvlc_release", "libvlc_media_get_mrl"} {
		if !plan.Wrapped[name] {
			t.Errorf("%s missing from Wrapped", name)
		}
	}
}

func TestBuildPlanBlacklist(t *testing.T) {
	funcs := []*parser.FuncDecl{
		fn("libvlc_release", "void", param("libvlc_instance_t*", "p_inst")),
	}
	blacklist := map[string]bool{"libvlc_release": true}

	plan := BuildPlan(funcs, testTable(t), []string{"Instance"}, blacklist, nil)
	if len(plan.Classes) != 0 {
		t.Errorf("blacklisted function produced a class: %+v", plan.Classes)
	}
	if plan.Wrapped["libvlc_release"] {
		t.Error("blacklisted function marked wrapped")
	}
}

func TestBuildPlanOverrideSuppression(t *testing.T) {
	funcs := []*parser.FuncDecl{
		fn("libvlc_media_get_mrl", "char*", param("libvlc_media_t*", "p_md")),
		fn("libvlc_media_release", "void", param("libvlc_media_t*", "p_md")),
	}
	overrides := map[string]*override.Record{
		"Media": {Methods: map[string]bool{"get_mrl": true}},
	}

	plan := BuildPlan(funcs, testTable(t), []string{"Media"}, nil, overrides)
	if len(plan.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(plan.Classes))
	}
	cl := plan.Classes[0]
	if cl.Override == nil {
		t.Fatal("override record not attached")
	}
	if len(cl.Methods) != 1 || cl.Methods[0].ShortName != "release" {
		t.Errorf("methods = %+v, expected only release", cl.Methods)
	}
	// Suppressed methods still count as wrapped.
	if !plan.Wrapped["libvlc_media_get_mrl"] {
		t.Error("overridden function missing from Wrapped")
	}
}

func TestForwardedArgsSkipOutputs(t *testing.T) {
	m := &Method{
		Fn: fn("libvlc_media_list_item_at_index", "libvlc_media_t*",
			param("libvlc_media_list_t*", "p_ml"),
			param("int", "i_pos"),
			param("int*", "p_count"),
			param("libvlc_exception_t*", "p_e")),
	}
	got := m.ForwardedArgs()
	want := []string{"self", "i_pos", "p_e"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ForwardedArgs = %v, expected %v", got, want)
	}
}
