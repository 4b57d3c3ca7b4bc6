package db

import "github.com/Masterminds/squirrel"

// builder is the shared statement builder for MySQL (? placeholders).
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}
