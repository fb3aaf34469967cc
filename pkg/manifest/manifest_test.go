package manifest

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/go-drift/mosaic/pkg/blueprint"
	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/errors"
	"github.com/go-drift/mosaic/pkg/layout"
)

const galleryManifest = `
version: v1.2.0
section:
  group:
    axis: vertical
    width: { fractionalWidth: 1.0 }
    height: { estimated: 600 }
    insets: { top: 8, leading: 16, bottom: 8, trailing: 16 }
    interItemSpacing: { fixed: 12 }
    children:
      - group:
          axis: horizontal
          width: { fractionalWidth: 1.0 }
          height: { absolute: 180 }
          children:
            - slot:
                count: 2
                width: { fractionalWidth: 0.5 }
                height: { fractionalHeight: 1.0 }
      - repeat:
          count: 3
          child:
            slot:
              width: { fractionalWidth: 1.0 }
              height: { absolute: 44 }
              edgeSpacing:
                top: { fixed: 4 }
`

func TestParseGallery(t *testing.T) {
	doc, err := Parse([]byte(galleryManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if got := doc.Version(); got != "v1.2.0" {
		t.Errorf("Version() = %q, want %q", got, "v1.2.0")
	}

	root := doc.Root()
	if got := root.Axis(); got != layout.AxisVertical {
		t.Errorf("Axis() = %v, want %v", got, layout.AxisVertical)
	}
	if got := root.Insets(); got != layout.EdgeInsetsOnly(8, 16, 8, 16) {
		t.Errorf("Insets() = %v, want %v", got, layout.EdgeInsetsOnly(8, 16, 8, 16))
	}
	if got := root.InterItemSpacing(); got != layout.FixedSpacing(12) {
		t.Errorf("InterItemSpacing() = %v, want %v", got, layout.FixedSpacing(12))
	}

	children := root.Children()
	if len(children) != 4 {
		t.Fatalf("len(Children()) = %d, want 4 (nested group + 3 repeat expansions)", len(children))
	}
	if _, ok := children[0].(*blueprint.Group); !ok {
		t.Errorf("child 0 = %T, want *blueprint.Group", children[0])
	}
	for i := 1; i < 4; i++ {
		slot, ok := children[i].(*blueprint.Slot)
		if !ok {
			t.Fatalf("child %d = %T, want *blueprint.Slot", i, children[i])
		}
		if got := slot.EdgeSpacing().Top; got != layout.FixedSpacing(4) {
			t.Errorf("child %d top spacing = %v, want %v", i, got, layout.FixedSpacing(4))
		}
	}
}

// Repeat expansions must be independent nodes, not one shared node.
func TestParseRepeatBuildsFreshCopies(t *testing.T) {
	doc, err := Parse([]byte(galleryManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	children := doc.Root().Children()
	if children[1] == children[2] || children[2] == children[3] {
		t.Error("expected each repeat expansion to build a fresh node")
	}
}

func TestParseVersionGate(t *testing.T) {
	tests := map[string]struct {
		version string
		wantSub string
	}{
		"missing":     {version: "", wantSub: "version is required"},
		"not semver":  {version: "1.2.0", wantSub: "not valid semver"},
		"wrong major": {version: "v2.0.0", wantSub: "outside the supported major v1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			doc := strings.Replace(galleryManifest, "version: v1.2.0", "version: "+quoteYAML(tt.version), 1)
			_, err := Parse([]byte(doc))
			if err == nil {
				t.Fatal("Parse() succeeded, want version error")
			}
			assertManifestError(t, err, tt.wantSub)
		})
	}
}

func TestParseAcceptsSupportedVersions(t *testing.T) {
	for _, version := range []string{"v1", "v1.2", "v1.2.3"} {
		t.Run(version, func(t *testing.T) {
			doc := strings.Replace(galleryManifest, "version: v1.2.0", "version: "+version, 1)
			if _, err := Parse([]byte(doc)); err != nil {
				t.Errorf("Parse() error = %v", err)
			}
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	doc := strings.Replace(galleryManifest, "count: 2", "count: 2\n                colour: red", 1)
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Parse() succeeded, want unknown-field error")
	}
	assertManifestError(t, err, "colour")
}

func TestLoad(t *testing.T) {
	doc, err := Load("testdata/gallery.yaml")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(doc.Root().Children()); got != 4 {
		t.Errorf("len(Children()) = %d, want 4", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/absent.yaml")
	if err == nil {
		t.Fatal("Load() succeeded, want error")
	}
	assertManifestError(t, err, "absent.yaml")
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected error chain to include fs.ErrNotExist, got %v", err)
	}
}

func TestDocumentCompose(t *testing.T) {
	doc, err := Parse([]byte(galleryManifest))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	section := doc.Compose(engine.DefaultFactory{})
	root := section.Root()
	if root.Len() != 4 {
		t.Fatalf("Root().Len() = %d, want 4", root.Len())
	}

	row, ok := root.Elements()[0].(*engine.Composite)
	if !ok {
		t.Fatalf("element 0 = %T, want *engine.Composite", root.Elements()[0])
	}
	if row.Len() != 2 {
		t.Errorf("nested Len() = %d, want 2", row.Len())
	}
	for i := 1; i < 4; i++ {
		leaf, ok := root.Elements()[i].(*engine.Leaf)
		if !ok {
			t.Fatalf("element %d = %T, want *engine.Leaf", i, root.Elements()[i])
		}
		if got := leaf.Size().Height; got != layout.Absolute(44) {
			t.Errorf("element %d height = %v, want %v", i, got, layout.Absolute(44))
		}
	}
}

func assertManifestError(t *testing.T, err error, wantSub string) {
	t.Helper()
	var merr *errors.Error
	if !stderrors.As(err, &merr) {
		t.Fatalf("error type = %T, want *errors.Error", err)
	}
	if merr.Kind != errors.KindManifest {
		t.Errorf("Kind = %v, want %v", merr.Kind, errors.KindManifest)
	}
	if !strings.Contains(err.Error(), wantSub) {
		t.Errorf("error %q does not contain %q", err.Error(), wantSub)
	}
}

func quoteYAML(s string) string {
	return `"` + s + `"`
}
