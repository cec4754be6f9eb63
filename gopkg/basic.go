package gopkg

import (
	"reflect"
)

// BasicTypes are the parameter and result types a bridged function may use.
var BasicTypes = map[string]reflect.Type{}

func init() {
	BasicTypes = map[string]reflect.Type{
		"int":     reflect.TypeOf(int(1)),
		"float64": reflect.TypeOf(float64(1)),
	}
}
