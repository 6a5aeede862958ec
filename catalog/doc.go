// Package catalog maps names to ready-made IFS definitions.
//
// Built-in entries (canonical name first, then aliases):
//
//	sierpinski  sierp                 — Beyond the tri-force
//	tree        binarytree            — branching, rotation, scaling
//	barnsley    fern, barnsleyfern    — "Fractals Everywhere" is a must read
//	dragon      heighwaydragon        — two of these tile the twindragon
//
// Lookup is case-insensitive and ignores all whitespace, so "Binary tree",
// "BINARYTREE" and " binary  tree " resolve to the same entry.
//
// Failures are explicit: a non-string or empty name yields ErrInvalidArgument
// and an unknown name yields ErrNotFound. No default IFS is ever substituted.
//
// Custom systems can be added to a Registry programmatically (Register) or
// from YAML (LoadYAML):
//
//	definitions:
//	  - name: square
//	    aliases: [box]
//	    maps:
//	      - a: [[0.5, 0], [0, 0.5]]
//	        t: [0, 0]
//	        p: 0.25
//
// A Registry is safe for concurrent use. The package-level helpers read from
// a built-in registry that never changes.
package catalog
