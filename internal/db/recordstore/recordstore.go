package recordstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	e "orderping/internal/core/domain/errors"
	"regexp"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

var (
	ErrRecordDoesNotExist    = errors.New("record does not exist")
	ErrInvalidFilterField    = errors.New("invalid filter field")
	ErrInvalidFilterOperator = errors.New("invalid filter operator")
)

type Operator struct {
	v string
}

var (
	OpEqual          = Operator{v: "="}
	OpLess           = Operator{v: "<"}
	OpLessOrEqual    = Operator{v: "<="}
	OpGreater        = Operator{v: ">"}
	OpGreaterOrEqual = Operator{v: ">="}
)

// Filter is one typed predicate on a document field. Values are always
// bound as statement parameters, never interpolated.
type Filter struct {
	Field    string
	Operator Operator
	Value    interface{}
}

func Where(field string, operator Operator, value interface{}) Filter {
	return Filter{Field: field, Operator: operator, Value: value}
}

type Record struct {
	ID   string
	Data []byte
}

// Decode unmarshals the record document into target.
func (r Record) Decode(target interface{}) error {
	return json.Unmarshal(r.Data, target)
}

// Store is a generic document store keyed by collection. Update merges
// the given fields into the stored document instead of replacing it.
type Store interface {
	Query(ctx context.Context, collection string, filters []Filter) ([]Record, error)
	Create(ctx context.Context, collection string, document interface{}) (string, error)
	Update(ctx context.Context, collection string, id string, fields map[string]interface{}) error
}

type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type PgxStore struct {
	db DBTX
}

func NewPgxStore(db DBTX) *PgxStore {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxStore{db: db}
}

func (s *PgxStore) Query(ctx context.Context, collection string, filters []Filter) ([]Record, error) {
	sql, args, err := buildQuery(collection, filters)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.Data); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *PgxStore) Create(ctx context.Context, collection string, document interface{}) (string, error) {
	data, err := json.Marshal(document)
	if err != nil {
		return "", err
	}

	var id string
	err = s.db.QueryRow(
		ctx,
		"INSERT INTO documents (collection, data) VALUES ($1, $2) RETURNING id",
		collection,
		data,
	).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *PgxStore) Update(
	ctx context.Context,
	collection string,
	id string,
	fields map[string]interface{},
) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	tag, err := s.db.Exec(
		ctx,
		"UPDATE documents SET data = data || $3::jsonb WHERE collection = $1 AND id = $2",
		collection,
		id,
		data,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordDoesNotExist
	}
	return nil
}

var fieldNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func buildQuery(collection string, filters []Filter) (string, []interface{}, error) {
	var sb strings.Builder
	sb.WriteString("SELECT id, data FROM documents WHERE collection = $1")
	args := []interface{}{collection}

	for _, filter := range filters {
		condition, err := filter.render(len(args) + 1)
		if err != nil {
			return "", nil, err
		}
		sb.WriteString(" AND ")
		sb.WriteString(condition)
		args = append(args, filter.Value)
	}
	return sb.String(), args, nil
}

func (f Filter) render(argIndex int) (string, error) {
	if !fieldNamePattern.MatchString(f.Field) {
		return "", ErrInvalidFilterField
	}
	if f.Operator == (Operator{}) {
		return "", ErrInvalidFilterOperator
	}
	return fmt.Sprintf("%s %s $%d", f.fieldExpression(), f.Operator.v, argIndex), nil
}

// fieldExpression casts the extracted text value so that comparison
// semantics follow the Go type of the filter value.
func (f Filter) fieldExpression() string {
	switch f.Value.(type) {
	case time.Time:
		return fmt.Sprintf("(data->>'%s')::timestamptz", f.Field)
	case bool:
		return fmt.Sprintf("(data->>'%s')::boolean", f.Field)
	case int, int32, int64, float32, float64:
		return fmt.Sprintf("(data->>'%s')::numeric", f.Field)
	default:
		return fmt.Sprintf("data->>'%s'", f.Field)
	}
}
