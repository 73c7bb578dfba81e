package defs

import (
	"reflect"
	"testing"
)

// Every quantity in a pack must be an integer so that consumers compute
// bit-exact results. This walks the whole Pack type graph, unexported
// fields included.
func TestPackTypes_HaveNoFloatingPointFields(t *testing.T) {
	seen := map[reflect.Type]bool{}
	var walk func(path string, typ reflect.Type)
	walk = func(path string, typ reflect.Type) {
		switch typ.Kind() {
		case reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
			t.Errorf("%s uses %s", path, typ)
			return
		}
		if seen[typ] {
			return
		}
		seen[typ] = true

		switch typ.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array:
			walk(path+"[]", typ.Elem())
		case reflect.Map:
			walk(path+"{key}", typ.Key())
			walk(path+"{}", typ.Elem())
		case reflect.Struct:
			for i := range typ.NumField() {
				f := typ.Field(i)
				walk(typ.Name()+"."+f.Name, f.Type)
			}
		}
	}
	walk("PackContents", reflect.TypeOf(PackContents{}))
	walk("Pack", reflect.TypeOf(Pack{}))

	if !seen[reflect.TypeOf(PartRankTimeCostTable{})] || !seen[reflect.TypeOf(BuildingEffectDef{})] {
		t.Fatalf("type walk did not reach nested definitions")
	}
}
