// Package gopkg holds Go functions and constants that the calculator can
// expose as operators, keyed by import path and exported name.
package gopkg

import (
	"reflect"
)

// Packages maps an import path to the exported members registered for it.
var Packages = map[string]map[string]reflect.Value{}
