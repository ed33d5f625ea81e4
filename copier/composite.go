package copier

import (
	"reflect"

	"graph-copier/telemetry"
)

// copyComposite builds a fresh instance of a named-field composite. Only
// fields that are both readable and writable participate: unexported fields
// and func-typed fields are skipped with an advisory and stay zero in the
// copy. The source instance is never touched.
func (c *context) copyComposite(rv reflect.Value, path Path, depth int) (reflect.Value, error) {
	rtype := rv.Type()
	out := reflect.New(rtype).Elem()

	for i := 0; i < rtype.NumField(); i++ {
		sf := rtype.Field(i)

		if !sf.IsExported() {
			c.emitter.Emit(telemetry.ReadOnlyPropertyLost, map[string]string{
				"path":  path.String(),
				"type":  rtype.String(),
				"field": sf.Name,
			})
			continue
		}

		if sf.Type.Kind() == reflect.Func {
			c.emitter.Emit(telemetry.IndexedPropertySkipped, map[string]string{
				"path":  path.String(),
				"type":  rtype.String(),
				"field": sf.Name,
			})
			continue
		}

		fieldPath := path.Field(sf.Name)
		descriptor := &Field{Name: sf.Name, Type: sf.Type}

		fv, err := c.walk(rv.Field(i), descriptor, NodeField, fieldPath, depth+1)
		if err != nil {
			return reflect.Value{}, err
		}
		if !fv.IsValid() {
			continue
		}
		if err := setSlot(out.Field(i), fv, fieldPath); err != nil {
			return reflect.Value{}, err
		}
	}

	return out, nil
}
