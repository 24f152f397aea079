// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/predicate"
	"agroadvisor/internal/ent/revokedtoken"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// RevokedTokenDelete is the builder for deleting a RevokedToken entity.
type RevokedTokenDelete struct {
	config
	hooks    []Hook
	mutation *RevokedTokenMutation
}

// Where appends a list predicates to the RevokedTokenDelete builder.
func (_d *RevokedTokenDelete) Where(ps ...predicate.RevokedToken) *RevokedTokenDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *RevokedTokenDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RevokedTokenDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *RevokedTokenDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(revokedtoken.Table, sqlgraph.NewFieldSpec(revokedtoken.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// RevokedTokenDeleteOne is the builder for deleting a single RevokedToken entity.
type RevokedTokenDeleteOne struct {
	_d *RevokedTokenDelete
}

// Where appends a list predicates to the RevokedTokenDelete builder.
func (_d *RevokedTokenDeleteOne) Where(ps ...predicate.RevokedToken) *RevokedTokenDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *RevokedTokenDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{revokedtoken.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *RevokedTokenDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
