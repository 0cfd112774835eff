package engine

import "github.com/routelens/routelens/internal/dataset"

// questionOrder lists valid question ids in presentation order.
var questionOrder = []string{"q1", "q2", "q3", "q4", "q5"}

// pipeline evaluates one question over a dataset snapshot.
type pipeline func(*dataset.Tables) (ResultTable, error)

var pipelines = map[string]pipeline{
	"q1": q1,
	"q2": q2,
	"q3": q3,
	"q4": q4,
	"q5": q5,
}

// Questions returns the valid question ids in order.
func Questions() []string {
	out := make([]string, len(questionOrder))
	copy(out, questionOrder)
	return out
}

// IsValidQuestion reports whether id names a known question.
func IsValidQuestion(id string) bool {
	_, ok := pipelines[id]
	return ok
}

// Evaluate runs the pipeline for the given question id and returns its
// normalized result table.
//
// An unknown id is rejected before any table access; the caller gets a
// QueryError with ErrCodeUnknownQuestion and no partial result. An empty
// result table is valid output, not an error.
func Evaluate(question string, tables *dataset.Tables) (ResultTable, error) {
	fn, ok := pipelines[question]
	if !ok {
		return nil, NewUnknownQuestionError(question)
	}
	return fn(tables)
}
