package utils

import "reflect"

// ColumnList returns the db tags of a dbmodel struct, in declaration
// order, for use in squirrel Select clauses.
func ColumnList[DBModel any](prefixes ...string) []string {
	var dbModel DBModel
	modelType := reflect.TypeOf(dbModel)

	var prefix string
	for _, p := range prefixes {
		prefix = p + "."
	}

	columns := make([]string, 0, modelType.NumField())
	for i := 0; i < modelType.NumField(); i++ {
		tag, ok := modelType.Field(i).Tag.Lookup("db")
		if !ok || tag == "-" {
			continue
		}
		columns = append(columns, prefix+tag)
	}
	return columns
}
