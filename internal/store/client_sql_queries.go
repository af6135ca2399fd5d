// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const sessionTable = "session"

// sqlite binds with "?", which is squirrel's default placeholder format.
var sessionSQL = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetSessionValueQuery(key string) (string, []any, error) {
	return sessionSQL.
		Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildUpsertSessionValueQuery(key, value string) (string, []any, error) {
	return sessionSQL.
		Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}
