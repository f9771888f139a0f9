package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/openaws/openaws-api/internal/domain"
	"github.com/openaws/openaws-api/internal/store"
)

// PostgresQuestionStore implements the store.QuestionStore interface.
// The question bank is read-only from the API's perspective; rows are
// loaded by the exam ingestion script.
type PostgresQuestionStore struct {
	db *sql.DB
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface.
func NewPostgresQuestionStore(db *sql.DB) *PostgresQuestionStore {
	return &PostgresQuestionStore{db: db}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

const questionColumns = `
	id, exam_id, question_index, prompt, options, correct_option_ids, multi_select, domain`

// TotalCount implements store.QuestionStore.TotalCount
func (s *PostgresQuestionStore) TotalCount(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		return 0, store.NewStoreError("question", "count", err)
	}

	return count, nil
}

// GetByIDs implements store.QuestionStore.GetByIDs
func (s *PostgresQuestionStore) GetByIDs(
	ctx context.Context,
	ids []string,
) ([]domain.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	const query = `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE id = ANY($1)
		ORDER BY exam_id, question_index`

	return s.queryQuestions(ctx, query, ids)
}

// GetByExam implements store.QuestionStore.GetByExam
func (s *PostgresQuestionStore) GetByExam(
	ctx context.Context,
	examID string,
) ([]domain.Question, error) {
	const query = `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE exam_id = $1
		ORDER BY question_index`

	return s.queryQuestions(ctx, query, examID)
}

func (s *PostgresQuestionStore) queryQuestions(
	ctx context.Context,
	query string,
	args ...any,
) ([]domain.Question, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, store.NewStoreError("question", "query", err)
	}
	defer func() { _ = rows.Close() }()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		var options, correctIDs []byte

		err := rows.Scan(
			&q.ID, &q.ExamID, &q.Index, &q.Prompt,
			&options, &correctIDs, &q.MultiSelect, &q.Domain)
		if err != nil {
			return nil, store.NewStoreError("question", "scan", err)
		}

		if err := json.Unmarshal(options, &q.Options); err != nil {
			return nil, store.NewStoreError("question", "decode", err)
		}
		if err := json.Unmarshal(correctIDs, &q.CorrectOptionIDs); err != nil {
			return nil, store.NewStoreError("question", "decode", err)
		}

		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError("question", "query", err)
	}

	return questions, nil
}
