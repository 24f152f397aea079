// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/predicate"
	"agroadvisor/internal/ent/revokedtoken"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RevokedTokenUpdate is the builder for updating RevokedToken entities.
type RevokedTokenUpdate struct {
	config
	hooks    []Hook
	mutation *RevokedTokenMutation
}

// Where appends a list predicates to the RevokedTokenUpdate builder.
func (_u *RevokedTokenUpdate) Where(ps ...predicate.RevokedToken) *RevokedTokenUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToken sets the "token" field.
func (_u *RevokedTokenUpdate) SetToken(v string) *RevokedTokenUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *RevokedTokenUpdate) SetNillableToken(v *string) *RevokedTokenUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *RevokedTokenUpdate) SetExpiresAt(v time.Time) *RevokedTokenUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *RevokedTokenUpdate) SetNillableExpiresAt(v *time.Time) *RevokedTokenUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the RevokedTokenMutation object of the builder.
func (_u *RevokedTokenUpdate) Mutation() *RevokedTokenMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RevokedTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevokedTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RevokedTokenUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevokedTokenUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevokedTokenUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := revokedtoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "RevokedToken.token": %w`, err)}
		}
	}
	return nil
}

func (_u *RevokedTokenUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revokedtoken.Table, revokedtoken.Columns, sqlgraph.NewFieldSpec(revokedtoken.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(revokedtoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(revokedtoken.FieldExpiresAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revokedtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RevokedTokenUpdateOne is the builder for updating a single RevokedToken entity.
type RevokedTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RevokedTokenMutation
}

// SetToken sets the "token" field.
func (_u *RevokedTokenUpdateOne) SetToken(v string) *RevokedTokenUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *RevokedTokenUpdateOne) SetNillableToken(v *string) *RevokedTokenUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *RevokedTokenUpdateOne) SetExpiresAt(v time.Time) *RevokedTokenUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *RevokedTokenUpdateOne) SetNillableExpiresAt(v *time.Time) *RevokedTokenUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// Mutation returns the RevokedTokenMutation object of the builder.
func (_u *RevokedTokenUpdateOne) Mutation() *RevokedTokenMutation {
	return _u.mutation
}

// Where appends a list predicates to the RevokedTokenUpdate builder.
func (_u *RevokedTokenUpdateOne) Where(ps ...predicate.RevokedToken) *RevokedTokenUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RevokedTokenUpdateOne) Select(field string, fields ...string) *RevokedTokenUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RevokedToken entity.
func (_u *RevokedTokenUpdateOne) Save(ctx context.Context) (*RevokedToken, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RevokedTokenUpdateOne) SaveX(ctx context.Context) *RevokedToken {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RevokedTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RevokedTokenUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RevokedTokenUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := revokedtoken.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "RevokedToken.token": %w`, err)}
		}
	}
	return nil
}

func (_u *RevokedTokenUpdateOne) sqlSave(ctx context.Context) (_node *RevokedToken, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(revokedtoken.Table, revokedtoken.Columns, sqlgraph.NewFieldSpec(revokedtoken.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RevokedToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, revokedtoken.FieldID)
		for _, f := range fields {
			if !revokedtoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != revokedtoken.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(revokedtoken.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(revokedtoken.FieldExpiresAt, field.TypeTime, value)
	}
	_node = &RevokedToken{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{revokedtoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
