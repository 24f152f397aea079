// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/predicate"
	"agroadvisor/internal/ent/soilreport"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SoilReportDelete is the builder for deleting a SoilReport entity.
type SoilReportDelete struct {
	config
	hooks    []Hook
	mutation *SoilReportMutation
}

// Where appends a list predicates to the SoilReportDelete builder.
func (_d *SoilReportDelete) Where(ps ...predicate.SoilReport) *SoilReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *SoilReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SoilReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *SoilReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(soilreport.Table, sqlgraph.NewFieldSpec(soilreport.FieldID, field.TypeUUID))
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

// SoilReportDeleteOne is the builder for deleting a single SoilReport entity.
type SoilReportDeleteOne struct {
	_d *SoilReportDelete
}

// Where appends a list predicates to the SoilReportDelete builder.
func (_d *SoilReportDeleteOne) Where(ps ...predicate.SoilReport) *SoilReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *SoilReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{soilreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *SoilReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
