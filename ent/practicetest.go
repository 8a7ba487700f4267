// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Mr-Gerald/graceful-path-web/ent/practicetest"
	"github.com/Mr-Gerald/graceful-path-web/ent/schema"
)

// PracticeTest is the model entity for the PracticeTest schema.
type PracticeTest struct {
	config `json:"-"`
	// ID of the ent.
	// UUID of the test
	ID string `json:"id,omitempty"`
	// UTC wall-clock time the row was created
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Display title, e.g. 'Foundational NCLEX Review'
	Title string `json:"title,omitempty"`
	// Display duration label, e.g. '120 mins'
	Duration string `json:"duration,omitempty"`
	// easy, medium or hard; medium and hard are premium-only
	Difficulty string `json:"difficulty,omitempty"`
	// Ordered question bank
	Questions    []schema.QuestionDoc `json:"questions,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeTest) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practicetest.FieldQuestions:
			values[i] = new([]byte)
		case practicetest.FieldID, practicetest.FieldTitle, practicetest.FieldDuration, practicetest.FieldDifficulty:
			values[i] = new(sql.NullString)
		case practicetest.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeTest fields.
func (_m *PracticeTest) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practicetest.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case practicetest.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case practicetest.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case practicetest.FieldDuration:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duration", values[i])
			} else if value.Valid {
				_m.Duration = value.String
			}
		case practicetest.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case practicetest.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeTest.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeTest) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeTest.
// Note that you need to call PracticeTest.Unwrap() before calling this method if this PracticeTest
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeTest) Update() *PracticeTestUpdateOne {
	return NewPracticeTestClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeTest entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeTest) Unwrap() *PracticeTest {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeTest is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeTest) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeTest(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("duration=")
	builder.WriteString(_m.Duration)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeTests is a parsable slice of PracticeTest.
type PracticeTests []*PracticeTest
