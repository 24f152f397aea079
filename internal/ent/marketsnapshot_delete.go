// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/marketsnapshot"
	"agroadvisor/internal/ent/predicate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// MarketSnapshotDelete is the builder for deleting a MarketSnapshot entity.
type MarketSnapshotDelete struct {
	config
	hooks    []Hook
	mutation *MarketSnapshotMutation
}

// Where appends a list predicates to the MarketSnapshotDelete builder.
func (_d *MarketSnapshotDelete) Where(ps ...predicate.MarketSnapshot) *MarketSnapshotDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *MarketSnapshotDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MarketSnapshotDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *MarketSnapshotDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(marketsnapshot.Table, sqlgraph.NewFieldSpec(marketsnapshot.FieldID, field.TypeUUID))
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

// MarketSnapshotDeleteOne is the builder for deleting a single MarketSnapshot entity.
type MarketSnapshotDeleteOne struct {
	_d *MarketSnapshotDelete
}

// Where appends a list predicates to the MarketSnapshotDelete builder.
func (_d *MarketSnapshotDeleteOne) Where(ps ...predicate.MarketSnapshot) *MarketSnapshotDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *MarketSnapshotDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{marketsnapshot.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *MarketSnapshotDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
