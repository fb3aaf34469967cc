// Package manifest parses YAML layout documents into blueprint trees.
//
// A manifest is the declarative file form of a blueprint: servers or design
// tools emit one, and the client builds the described section without
// shipping new code. The document carries a schema version and a single
// root group:
//
//	version: v1
//	section:
//	  group:
//	    axis: horizontal
//	    width: { fractionalWidth: 1.0 }
//	    height: { absolute: 120 }
//	    children:
//	      - slot:
//	          count: 2
//	          width: { fractionalWidth: 0.5 }
//	          height: { fractionalHeight: 1.0 }
//
// Every node is a mapping with exactly one of the keys "slot", "group", or
// "repeat". Dimensions are mappings with exactly one of "fractionalWidth",
// "fractionalHeight", "absolute", or "estimated"; spacings take exactly one
// of "fixed" or "flexible". A repeat node expands its child a fixed number
// of times, building a fresh copy per expansion.
//
// The version field is mandatory semver and gated on the supported major.
// All parse and validation failures return *errors.Error with KindManifest;
// manifests are user input, so nothing in this package panics on bad data.
package manifest
