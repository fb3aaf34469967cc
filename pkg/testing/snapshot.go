package testing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/mosaic/pkg/engine"
	"github.com/go-drift/mosaic/pkg/layout"
)

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot captures a composed tree's structure and sizing configuration.
type Snapshot struct {
	Root *ElementNode `json:"root"`
}

// ElementNode represents an element in the serialized tree.
type ElementNode struct {
	ID        string            `json:"id"`
	Type      string            `json:"type"`
	Axis      string            `json:"axis,omitempty"`
	Width     DimensionValue    `json:"width"`
	Height    DimensionValue    `json:"height"`
	Insets    []float64         `json:"insets,omitempty"`
	Edges     map[string]string `json:"edges,omitempty"`
	InterItem string            `json:"interItem,omitempty"`
	Children  []*ElementNode    `json:"children,omitempty"`
}

// DimensionValue is the serialized form of a layout.Dimension.
type DimensionValue struct {
	Mode  string  `json:"mode"`
	Value float64 `json:"value"`
}

// CaptureSection serializes a composed section's tree.
func CaptureSection(s *engine.Section) *Snapshot {
	return CaptureElement(s.Root())
}

// CaptureElement serializes a composed element and everything beneath it.
func CaptureElement(root engine.Element) *Snapshot {
	snap := &Snapshot{}
	if root != nil {
		counter := &typeCounter{}
		snap.Root = captureElementNode(root, counter)
	}
	return snap
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// MOSAIC_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv("MOSAIC_UPDATE_SNAPSHOTS") == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := loadSnapshot(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: MOSAIC_UPDATE_SNAPSHOTS=1 go test -run %s", path, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	if diff := s.Diff(expected); diff != "" {
		t.Errorf("snapshot mismatch: %s\n%s\n\nTo update: MOSAIC_UPDATE_SNAPSHOTS=1 go test -run %s", path, diff, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := marshalSnapshot(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Diff returns a unified diff between this snapshot and other. Returns
// empty string if equal.
func (s *Snapshot) Diff(other *Snapshot) string {
	a, _ := marshalSnapshot(s)
	b, _ := marshalSnapshot(other)
	if bytes.Equal(a, b) {
		return ""
	}
	return unifiedDiff(string(b), string(a))
}

// --- Internal ---

// typeCounter assigns stable IDs like "leaf#0", "composite#1".
type typeCounter struct {
	counts map[string]int
}

func (c *typeCounter) next(typeName string) string {
	if c.counts == nil {
		c.counts = make(map[string]int)
	}
	n := c.counts[typeName]
	c.counts[typeName] = n + 1
	return fmt.Sprintf("%s#%d", typeName, n)
}

func captureElementNode(el engine.Element, counter *typeCounter) *ElementNode {
	switch el := el.(type) {
	case *engine.Leaf:
		node := &ElementNode{
			ID:     counter.next("leaf"),
			Type:   "leaf",
			Width:  dimensionValue(el.Size().Width),
			Height: dimensionValue(el.Size().Height),
		}
		node.Insets = insetsValue(el.Insets())
		node.Edges = edgesValue(el.EdgeSpacing())
		return node
	case *engine.Composite:
		node := &ElementNode{
			ID:     counter.next("composite"),
			Type:   "composite",
			Axis:   el.Axis().String(),
			Width:  dimensionValue(el.Size().Width),
			Height: dimensionValue(el.Size().Height),
		}
		node.Insets = insetsValue(el.Insets())
		node.Edges = edgesValue(el.EdgeSpacing())
		if spacing := el.InterItemSpacing(); spacing.IsSet() {
			node.InterItem = spacing.String()
		}
		el.VisitElements(func(child engine.Element) {
			node.Children = append(node.Children, captureElementNode(child, counter))
		})
		return node
	default:
		return &ElementNode{ID: counter.next("unknown"), Type: fmt.Sprintf("%T", el)}
	}
}

func dimensionValue(d layout.Dimension) DimensionValue {
	return DimensionValue{Mode: d.Mode.String(), Value: round2(d.Value)}
}

func insetsValue(insets layout.EdgeInsets) []float64 {
	if insets.IsZero() {
		return nil
	}
	return []float64{
		round2(insets.Top), round2(insets.Leading),
		round2(insets.Bottom), round2(insets.Trailing),
	}
}

func edgesValue(edges layout.EdgeSpacing) map[string]string {
	if edges.IsZero() {
		return nil
	}
	out := make(map[string]string)
	for edge, spacing := range map[string]layout.Spacing{
		"leading": edges.Leading, "top": edges.Top,
		"trailing": edges.Trailing, "bottom": edges.Bottom,
	} {
		if spacing.IsSet() {
			out[edge] = spacing.String()
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func loadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("invalid snapshot JSON: %w", err)
	}
	return &snap, nil
}

func marshalSnapshot(s *Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// unifiedDiff produces a simple line-oriented diff.
func unifiedDiff(expected, actual string) string {
	expectedLines := strings.Split(expected, "\n")
	actualLines := strings.Split(actual, "\n")

	var buf strings.Builder
	buf.WriteString("--- expected\n+++ actual\n")

	maxLen := len(expectedLines)
	if len(actualLines) > maxLen {
		maxLen = len(actualLines)
	}

	for i := 0; i < maxLen; i++ {
		var e, a string
		if i < len(expectedLines) {
			e = expectedLines[i]
		}
		if i < len(actualLines) {
			a = actualLines[i]
		}
		if e != a {
			if i < len(expectedLines) {
				fmt.Fprintf(&buf, "-%s\n", e)
			}
			if i < len(actualLines) {
				fmt.Fprintf(&buf, "+%s\n", a)
			}
		}
	}

	return buf.String()
}
