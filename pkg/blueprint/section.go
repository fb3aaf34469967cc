package blueprint

import (
	"go.uber.org/zap"

	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/errors"
)

// ComposeSection lowers group into host elements through f and wraps the
// composed root in a section ready for handoff to the host engine.
func ComposeSection(g *Group, f engine.Factory) *engine.Section {
	if g == nil {
		errors.Invariant("blueprint.ComposeSection", "group is nil")
	}
	root := g.Compose(f)
	logger.Debug("composed section", zap.Int("rootChildren", root.Len()))
	return f.Section(root)
}
