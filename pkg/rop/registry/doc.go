// Package registry builds step chains from declarative definitions.
//
// Factories are registered under a kind name. A Definition, usually decoded
// from YAML, lists the kinds to chain together with their parameters:
//
//	name: scale
//	steps:
//	  - kind: add
//	    params: {addend: 4}
//	  - kind: multiply
//	    params: {factor: 2}
package registry
