package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder построитель запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select начинает SELECT запрос
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert начинает INSERT запрос
func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

// Update начинает UPDATE запрос
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete начинает DELETE запрос
func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}

// Exists оборачивает подзапрос в SELECT EXISTS(...)
func Exists(sub squirrel.SelectBuilder) squirrel.SelectBuilder {
	return sub.Prefix("SELECT EXISTS(").Suffix(")")
}

// Now выражение текущего времени на стороне БД
func Now() squirrel.Sqlizer {
	return squirrel.Expr("NOW()")
}
