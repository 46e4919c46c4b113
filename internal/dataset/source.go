package dataset

import (
	"context"
	"errors"
)

const (
	QuestionsTable = "questions"
	AnswersTable   = "answers"
)

var ErrTableNotFound = errors.New("table not found")

// Row is one record of a delimited table, keyed by header name.
type Row map[string]string

// Source fetches a named table as rows.
type Source interface {
	Fetch(ctx context.Context, table string) ([]Row, error)
}

func fileName(table string) string {
	return table + ".csv"
}
