// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Mr-Gerald/graceful-path-web/ent/practicetest"
	"github.com/Mr-Gerald/graceful-path-web/ent/predicate"
	"github.com/Mr-Gerald/graceful-path-web/ent/schema"
)

// PracticeTestUpdate is the builder for updating PracticeTest entities.
type PracticeTestUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeTestMutation
}

// Where appends a list predicates to the PracticeTestUpdate builder.
func (_u *PracticeTestUpdate) Where(ps ...predicate.PracticeTest) *PracticeTestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PracticeTestUpdate) SetTitle(v string) *PracticeTestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PracticeTestUpdate) SetNillableTitle(v *string) *PracticeTestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PracticeTestUpdate) SetDuration(v string) *PracticeTestUpdate {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PracticeTestUpdate) SetNillableDuration(v *string) *PracticeTestUpdate {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeTestUpdate) SetDifficulty(v string) *PracticeTestUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeTestUpdate) SetNillableDifficulty(v *string) *PracticeTestUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PracticeTestUpdate) SetQuestions(v []schema.QuestionDoc) *PracticeTestUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PracticeTestUpdate) AppendQuestions(v []schema.QuestionDoc) *PracticeTestUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PracticeTestUpdate) ClearQuestions() *PracticeTestUpdate {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PracticeTestMutation object of the builder.
func (_u *PracticeTestUpdate) Mutation() *PracticeTestMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeTestUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeTestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeTestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeTestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeTestUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := practicetest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeTestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicetest.Table, practicetest.Columns, sqlgraph.NewFieldSpec(practicetest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(practicetest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(practicetest.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicetest.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(practicetest.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicetest.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(practicetest.FieldQuestions, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicetest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeTestUpdateOne is the builder for updating a single PracticeTest entity.
type PracticeTestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeTestMutation
}

// SetTitle sets the "title" field.
func (_u *PracticeTestUpdateOne) SetTitle(v string) *PracticeTestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PracticeTestUpdateOne) SetNillableTitle(v *string) *PracticeTestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDuration sets the "duration" field.
func (_u *PracticeTestUpdateOne) SetDuration(v string) *PracticeTestUpdateOne {
	_u.mutation.SetDuration(v)
	return _u
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_u *PracticeTestUpdateOne) SetNillableDuration(v *string) *PracticeTestUpdateOne {
	if v != nil {
		_u.SetDuration(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *PracticeTestUpdateOne) SetDifficulty(v string) *PracticeTestUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *PracticeTestUpdateOne) SetNillableDifficulty(v *string) *PracticeTestUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *PracticeTestUpdateOne) SetQuestions(v []schema.QuestionDoc) *PracticeTestUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *PracticeTestUpdateOne) AppendQuestions(v []schema.QuestionDoc) *PracticeTestUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// ClearQuestions clears the value of the "questions" field.
func (_u *PracticeTestUpdateOne) ClearQuestions() *PracticeTestUpdateOne {
	_u.mutation.ClearQuestions()
	return _u
}

// Mutation returns the PracticeTestMutation object of the builder.
func (_u *PracticeTestUpdateOne) Mutation() *PracticeTestMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeTestUpdate builder.
func (_u *PracticeTestUpdateOne) Where(ps ...predicate.PracticeTest) *PracticeTestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeTestUpdateOne) Select(field string, fields ...string) *PracticeTestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeTest entity.
func (_u *PracticeTestUpdateOne) Save(ctx context.Context) (*PracticeTest, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeTestUpdateOne) SaveX(ctx context.Context) *PracticeTest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeTestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeTestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeTestUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := practicetest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeTest.title": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeTestUpdateOne) sqlSave(ctx context.Context) (_node *PracticeTest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practicetest.Table, practicetest.Columns, sqlgraph.NewFieldSpec(practicetest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeTest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practicetest.FieldID)
		for _, f := range fields {
			if !practicetest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practicetest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(practicetest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Duration(); ok {
		_spec.SetField(practicetest.FieldDuration, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(practicetest.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(practicetest.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, practicetest.FieldQuestions, value)
		})
	}
	if _u.mutation.QuestionsCleared() {
		_spec.ClearField(practicetest.FieldQuestions, field.TypeJSON)
	}
	_node = &PracticeTest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practicetest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
