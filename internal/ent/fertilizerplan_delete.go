// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/fertilizerplan"
	"agroadvisor/internal/ent/predicate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// FertilizerPlanDelete is the builder for deleting a FertilizerPlan entity.
type FertilizerPlanDelete struct {
	config
	hooks    []Hook
	mutation *FertilizerPlanMutation
}

// Where appends a list predicates to the FertilizerPlanDelete builder.
func (_d *FertilizerPlanDelete) Where(ps ...predicate.FertilizerPlan) *FertilizerPlanDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FertilizerPlanDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FertilizerPlanDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FertilizerPlanDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fertilizerplan.Table, sqlgraph.NewFieldSpec(fertilizerplan.FieldID, field.TypeUUID))
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

// FertilizerPlanDeleteOne is the builder for deleting a single FertilizerPlan entity.
type FertilizerPlanDeleteOne struct {
	_d *FertilizerPlanDelete
}

// Where appends a list predicates to the FertilizerPlanDelete builder.
func (_d *FertilizerPlanDeleteOne) Where(ps ...predicate.FertilizerPlan) *FertilizerPlanDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FertilizerPlanDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fertilizerplan.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FertilizerPlanDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
