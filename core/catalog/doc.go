// Package catalog reads the declarative enum catalog and turns it into
// registry candidates.
//
// A catalog is a set of YAML files. Each file holds either a list of types
// under an "enums" key or a single type at top level, whose name defaults to
// the file name when omitted:
//
//	enums:
//	  - name: Status
//	    members:
//	      - value: 0
//	        name: Pending
//	        description: Pending
//	        labels: { en: Pending, tr: Beklemede }
//
// Files are read in lexical order from a local directory or from an object
// storage prefix (see Config.Source), so discovery order is stable between
// runs.
package catalog
