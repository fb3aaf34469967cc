package testing

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-drift/mosaic/pkg/blueprint"
	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/layout"
)

// recordingT captures MatchesFile failures instead of failing the real test.
type recordingT struct {
	fatals []string
	errors []string
}

func (r *recordingT) Helper() {}

func (r *recordingT) Fatalf(format string, args ...any) {
	r.fatals = append(r.fatals, fmt.Sprintf(format, args...))
}

func (r *recordingT) Errorf(format string, args ...any) {
	r.errors = append(r.errors, fmt.Sprintf(format, args...))
}

func (r *recordingT) Name() string { return "recordingT" }

// galleryGroup mirrors the manifest package's gallery fixture: a hero row of
// two half-width slots above three full-width rows.
func galleryGroup() *blueprint.Group {
	hero := blueprint.NewGroup(layout.AxisHorizontal,
		layout.FractionalWidth(1.0), layout.Absolute(180),
		blueprint.NewSlots(2, layout.FractionalWidth(0.5), layout.FractionalHeight(1.0)),
	)
	rows := blueprint.Collect([]int{0, 1, 2}, func(int) blueprint.Node {
		return blueprint.NewSlot(layout.FractionalWidth(1.0), layout.Absolute(44)).
			WithEdgeSpacing(layout.EdgeSpacing{Top: layout.FixedSpacing(4)})
	})
	return blueprint.NewGroup(layout.AxisVertical,
		layout.FractionalWidth(1.0), layout.Estimated(600),
		hero, rows,
	).
		WithInsets(layout.EdgeInsetsOnly(8, 16, 8, 16)).
		WithInterItemSpacing(layout.FixedSpacing(12))
}

func TestCaptureSectionStructure(t *testing.T) {
	section := blueprint.ComposeSection(galleryGroup(), engine.DefaultFactory{})
	snap := CaptureSection(section)

	root := snap.Root
	if root == nil {
		t.Fatal("Root is nil")
	}
	if root.Type != "composite" || root.Axis != "vertical" {
		t.Errorf("root = %s/%s, want composite/vertical", root.Type, root.Axis)
	}
	if root.ID != "composite#0" {
		t.Errorf("root ID = %q, want %q", root.ID, "composite#0")
	}
	if len(root.Children) != 4 {
		t.Fatalf("root has %d children, want 4", len(root.Children))
	}
	if got := root.Children[0].Type; got != "composite" {
		t.Errorf("child 0 type = %q, want %q", got, "composite")
	}
	for i := 1; i < 4; i++ {
		child := root.Children[i]
		if child.Type != "leaf" {
			t.Errorf("child %d type = %q, want %q", i, child.Type, "leaf")
		}
		if child.Edges["top"] != "fixed(4)" {
			t.Errorf("child %d top edge = %q, want %q", i, child.Edges["top"], "fixed(4)")
		}
	}
	if root.InterItem != "fixed(12)" {
		t.Errorf("InterItem = %q, want %q", root.InterItem, "fixed(12)")
	}
	want := []float64{8, 16, 8, 16}
	if len(root.Insets) != 4 {
		t.Fatalf("Insets = %v, want %v", root.Insets, want)
	}
	for i := range want {
		if root.Insets[i] != want[i] {
			t.Errorf("Insets[%d] = %g, want %g", i, root.Insets[i], want[i])
		}
	}
}

func TestCaptureRounding(t *testing.T) {
	leaf := engine.NewLeaf(engine.LeafSpec{
		Size: layout.Size{
			Width:  layout.FractionalWidth(1.0 / 3.0),
			Height: layout.Absolute(44.456),
		},
	})
	snap := CaptureElement(leaf)

	if got := snap.Root.Width.Value; got != 0.33 {
		t.Errorf("Width.Value = %g, want 0.33", got)
	}
	if got := snap.Root.Height.Value; got != 44.46 {
		t.Errorf("Height.Value = %g, want 44.46", got)
	}
}

func TestSnapshotMatchesGolden(t *testing.T) {
	section := blueprint.ComposeSection(galleryGroup(), engine.DefaultFactory{})
	CaptureSection(section).MatchesFile(t, filepath.Join("testdata", "gallery.json"))
}

func TestDiffEqualSnapshots(t *testing.T) {
	section := blueprint.ComposeSection(galleryGroup(), engine.DefaultFactory{})
	a := CaptureSection(section)
	b := CaptureSection(section)

	if diff := a.Diff(b); diff != "" {
		t.Errorf("Diff() = %q, want empty", diff)
	}
}

func TestDiffReportsChangedLines(t *testing.T) {
	a := CaptureElement(engine.NewLeaf(engine.LeafSpec{
		Size: layout.Size{Width: layout.Absolute(10), Height: layout.Absolute(10)},
	}))
	b := CaptureElement(engine.NewLeaf(engine.LeafSpec{
		Size: layout.Size{Width: layout.Absolute(20), Height: layout.Absolute(10)},
	}))

	diff := a.Diff(b)
	if diff == "" {
		t.Fatal("Diff() is empty for differing snapshots")
	}
	if !strings.Contains(diff, "--- expected") || !strings.Contains(diff, "+++ actual") {
		t.Errorf("Diff() missing unified header:\n%s", diff)
	}
	if !strings.Contains(diff, "20") {
		t.Errorf("Diff() does not mention the changed value:\n%s", diff)
	}
}

func TestMatchesFileUpdateFlow(t *testing.T) {
	t.Setenv("MOSAIC_UPDATE_SNAPSHOTS", "1")
	path := filepath.Join(t.TempDir(), "snapshots", "tree.json")

	section := blueprint.ComposeSection(galleryGroup(), engine.DefaultFactory{})
	snap := CaptureSection(section)
	snap.MatchesFile(t, path)

	t.Setenv("MOSAIC_UPDATE_SNAPSHOTS", "")
	rec := &recordingT{}
	snap.MatchesFile(rec, path)
	if len(rec.fatals) != 0 || len(rec.errors) != 0 {
		t.Errorf("fresh snapshot does not match its own update: %v %v", rec.fatals, rec.errors)
	}
}

func TestMatchesFileMissingGolden(t *testing.T) {
	snap := CaptureElement(engine.NewLeaf(engine.LeafSpec{}))

	rec := &recordingT{}
	snap.MatchesFile(rec, filepath.Join(t.TempDir(), "missing.json"))
	if len(rec.fatals) != 1 {
		t.Fatalf("fatals = %v, want one missing-file failure", rec.fatals)
	}
	if !strings.Contains(rec.fatals[0], "MOSAIC_UPDATE_SNAPSHOTS=1") {
		t.Errorf("missing-file failure lacks update instructions: %s", rec.fatals[0])
	}
}

func TestMatchesFileMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.json")

	a := CaptureElement(engine.NewLeaf(engine.LeafSpec{
		Size: layout.Size{Width: layout.Absolute(10), Height: layout.Absolute(10)},
	}))
	if err := a.UpdateFile(path); err != nil {
		t.Fatalf("UpdateFile() error = %v", err)
	}

	b := CaptureElement(engine.NewLeaf(engine.LeafSpec{
		Size: layout.Size{Width: layout.Absolute(20), Height: layout.Absolute(10)},
	}))
	rec := &recordingT{}
	b.MatchesFile(rec, path)
	if len(rec.errors) != 1 {
		t.Fatalf("errors = %v, want one mismatch failure", rec.errors)
	}
	if !strings.Contains(rec.errors[0], "snapshot mismatch") {
		t.Errorf("mismatch failure = %q, want it to name the mismatch", rec.errors[0])
	}
}
