package sqlite

import (
	"context"
	"fmt"
	"strings"

	agentskills "github.com/IAFahim/agent-skills"
	"github.com/cespare/xxhash/v2"
)

// Compile-time interface verification.
var _ agentskills.TestCaseWriter = (*TestCaseService)(nil)

// TestCaseService stores the test case corpus in SQLite.
type TestCaseService struct {
	db *DB
}

// NewTestCaseService creates a new TestCaseService.
func NewTestCaseService(db *DB) *TestCaseService {
	return &TestCaseService{db: db}
}

// HashCode returns the xxHash of a snippet as 16 hex digits.
func HashCode(code string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(code))
}

// WriteTestCases replaces the stored corpus in a single transaction.
// Row positions follow the slice order.
func (s *TestCaseService) WriteTestCases(ctx context.Context, cases []*agentskills.TestCase) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM test_cases"); err != nil {
		return fmt.Errorf("clear test cases: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO test_cases (position, rule_id, rule_title, type, code, language, description, code_hash)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, tc := range cases {
		if _, err := stmt.ExecContext(ctx, i, tc.RuleID, tc.RuleTitle, string(tc.Type),
			tc.Code, tc.Language, tc.Description, HashCode(tc.Code)); err != nil {
			return fmt.Errorf("insert test case %d (%s): %w", i, tc.RuleID, err)
		}
	}

	return tx.Commit()
}

// FindTestCases retrieves stored test cases matching the filter in corpus order.
func (s *TestCaseService) FindTestCases(ctx context.Context, filter agentskills.TestCaseFilter) ([]*agentskills.TestCase, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT rule_id, rule_title, type, code, language, description FROM test_cases WHERE 1=1")

	if filter.RuleID != nil {
		query.WriteString(" AND rule_id = ?")
		args = append(args, *filter.RuleID)
	}
	if filter.Type != nil {
		query.WriteString(" AND type = ?")
		args = append(args, string(*filter.Type))
	}

	query.WriteString(" ORDER BY position ASC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cases := []*agentskills.TestCase{}
	for rows.Next() {
		var tc agentskills.TestCase
		var typ string
		if err := rows.Scan(&tc.RuleID, &tc.RuleTitle, &typ, &tc.Code, &tc.Language, &tc.Description); err != nil {
			return nil, err
		}
		tc.Type = agentskills.CaseType(typ)
		cases = append(cases, &tc)
	}

	return cases, rows.Err()
}
