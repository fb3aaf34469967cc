package manifest

import (
	"bytes"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/mosaic/pkg/blueprint"
	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/errors"
)

// SupportedMajor is the manifest schema major this package understands.
const SupportedMajor = "v1"

// Document is a parsed, validated manifest. Its blueprint tree is fully
// built; composing it cannot fail on manifest content.
type Document struct {
	version string
	root    *blueprint.Group
}

// Parse decodes and validates a manifest. All failures return *errors.Error
// with KindManifest.
func Parse(data []byte) (*Document, error) {
	const op = "manifest.Parse"

	var doc manifestDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindManifest, Err: err}
	}

	if err := validateVersion(doc.Version); err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindManifest, Err: err}
	}
	if doc.Section == nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindManifest,
			Err: fmt.Errorf("section is required")}
	}
	if doc.Section.Group == nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindManifest,
			Err: fmt.Errorf("section: group is required")}
	}

	root, err := buildGroup("section", doc.Section.Group)
	if err != nil {
		return nil, &errors.Error{Op: op, Kind: errors.KindManifest, Err: err}
	}

	logger.Debug("parsed manifest",
		zap.String("version", doc.Version),
		zap.Int("rootChildren", len(root.Children())))
	return &Document{version: doc.Version, root: root}, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.Error{Op: "manifest.Load", Kind: errors.KindManifest, Err: err}
	}
	return Parse(data)
}

// Version returns the document's declared schema version.
func (d *Document) Version() string {
	return d.version
}

// Root returns the document's blueprint tree.
func (d *Document) Root() *blueprint.Group {
	return d.root
}

// Compose lowers the document's tree into host elements through f.
func (d *Document) Compose(f engine.Factory) *engine.Section {
	return blueprint.ComposeSection(d.root, f)
}

func validateVersion(v string) error {
	if v == "" {
		return fmt.Errorf("version is required")
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not valid semver", v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("version %q is outside the supported major %s", v, SupportedMajor)
	}
	return nil
}
