// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Timur Bessonov

package http

import "reflect"

// entityID reads the conventional exported "ID" string field.
func entityID(entity any) string {
	f := idField(entity)
	if !f.IsValid() {
		return ""
	}
	return f.String()
}

// setEntityID writes the "ID" string field when present and settable.
func setEntityID(entity any, id string) {
	f := idField(entity)
	if f.IsValid() && f.CanSet() {
		f.SetString(id)
	}
}

func idField(entity any) reflect.Value {
	v := reflect.ValueOf(entity)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	f := v.FieldByName("ID")
	if !f.IsValid() || f.Kind() != reflect.String {
		return reflect.Value{}
	}
	return f
}
