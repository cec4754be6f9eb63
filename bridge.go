package tachyon

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/tachyon-calc/tachyon/gopkg"
)

// Import adds the members of the named gopkg package to t under their
// lower-cased names. Functions qualify when every parameter is a float64
// or an int (arguments are truncated) and the single result is a float64;
// float64 constants become operators without arguments. Names already in
// t are left alone.
func Import(t Table, pkg string) error {
	members, ok := gopkg.Packages[pkg]
	if !ok {
		return fmt.Errorf("unknown package: %v", pkg)
	}
	for name, rv := range members {
		key := strings.ToLower(name)
		if _, exists := t[key]; exists {
			continue
		}
		fn, ok := bridge(rv)
		if !ok {
			continue
		}
		fn.Doc = pkg + "." + name
		t[key] = fn
	}
	return nil
}

func bridge(rv reflect.Value) (FnInfo, bool) {
	floatType := gopkg.BasicTypes["float64"]
	intType := gopkg.BasicTypes["int"]

	if rv.Type() == floatType {
		v := rv.Float()
		return makeFn(0, "", func([]float64) (float64, error) {
			return v, nil
		}), true
	}
	if rv.Kind() != reflect.Func {
		return FnInfo{}, false
	}
	typ := rv.Type()
	if typ.IsVariadic() || typ.NumOut() != 1 || typ.Out(0) != floatType {
		return FnInfo{}, false
	}
	for i := 0; i < typ.NumIn(); i++ {
		if in := typ.In(i); in != floatType && in != intType {
			return FnInfo{}, false
		}
	}

	return makeFn(typ.NumIn(), "", func(args []float64) (float64, error) {
		in := make([]reflect.Value, len(args))
		for i, a := range args {
			if typ.In(i) == intType {
				if math.IsNaN(a) || a >= math.MaxInt || a < math.MinInt {
					return 0, fmt.Errorf("argument %d: %v is not an int", i+1, a)
				}
				in[i] = reflect.ValueOf(int(a))
				continue
			}
			in[i] = reflect.ValueOf(a)
		}
		return rv.Call(in)[0].Float(), nil
	}), true
}
