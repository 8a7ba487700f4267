// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mr-Gerald/graceful-path-web/ent/practicetest"
	"github.com/Mr-Gerald/graceful-path-web/ent/schema"
)

// PracticeTestCreate is the builder for creating a PracticeTest entity.
type PracticeTestCreate struct {
	config
	mutation *PracticeTestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PracticeTestCreate) SetCreatedAt(v time.Time) *PracticeTestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PracticeTestCreate) SetNillableCreatedAt(v *time.Time) *PracticeTestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *PracticeTestCreate) SetTitle(v string) *PracticeTestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDuration sets the "duration" field.
func (_c *PracticeTestCreate) SetDuration(v string) *PracticeTestCreate {
	_c.mutation.SetDuration(v)
	return _c
}

// SetNillableDuration sets the "duration" field if the given value is not nil.
func (_c *PracticeTestCreate) SetNillableDuration(v *string) *PracticeTestCreate {
	if v != nil {
		_c.SetDuration(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *PracticeTestCreate) SetDifficulty(v string) *PracticeTestCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *PracticeTestCreate) SetNillableDifficulty(v *string) *PracticeTestCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *PracticeTestCreate) SetQuestions(v []schema.QuestionDoc) *PracticeTestCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetID sets the "id" field.
func (_c *PracticeTestCreate) SetID(v string) *PracticeTestCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the PracticeTestMutation object of the builder.
func (_c *PracticeTestCreate) Mutation() *PracticeTestMutation {
	return _c.mutation
}

// Save creates the PracticeTest in the database.
func (_c *PracticeTestCreate) Save(ctx context.Context) (*PracticeTest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeTestCreate) SaveX(ctx context.Context) *PracticeTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeTestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeTestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeTestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := practicetest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Duration(); !ok {
		v := practicetest.DefaultDuration
		_c.mutation.SetDuration(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := practicetest.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeTestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PracticeTest.created_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PracticeTest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := practicetest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PracticeTest.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Duration(); !ok {
		return &ValidationError{Name: "duration", err: errors.New(`ent: missing required field "PracticeTest.duration"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "PracticeTest.difficulty"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := practicetest.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "PracticeTest.id": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeTestCreate) sqlSave(ctx context.Context) (*PracticeTest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PracticeTest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PracticeTestCreate) createSpec() (*PracticeTest, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeTest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practicetest.Table, sqlgraph.NewFieldSpec(practicetest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(practicetest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(practicetest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Duration(); ok {
		_spec.SetField(practicetest.FieldDuration, field.TypeString, value)
		_node.Duration = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(practicetest.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(practicetest.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	return _node, _spec
}

// PracticeTestCreateBulk is the builder for creating many PracticeTest entities in bulk.
type PracticeTestCreateBulk struct {
	config
	err      error
	builders []*PracticeTestCreate
}

// Save creates the PracticeTest entities in the database.
func (_c *PracticeTestCreateBulk) Save(ctx context.Context) ([]*PracticeTest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeTest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeTestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PracticeTestCreateBulk) SaveX(ctx context.Context) []*PracticeTest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeTestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeTestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
