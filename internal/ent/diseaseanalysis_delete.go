// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/diseaseanalysis"
	"agroadvisor/internal/ent/predicate"
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// DiseaseAnalysisDelete is the builder for deleting a DiseaseAnalysis entity.
type DiseaseAnalysisDelete struct {
	config
	hooks    []Hook
	mutation *DiseaseAnalysisMutation
}

// Where appends a list predicates to the DiseaseAnalysisDelete builder.
func (_d *DiseaseAnalysisDelete) Where(ps ...predicate.DiseaseAnalysis) *DiseaseAnalysisDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DiseaseAnalysisDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiseaseAnalysisDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DiseaseAnalysisDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(diseaseanalysis.Table, sqlgraph.NewFieldSpec(diseaseanalysis.FieldID, field.TypeUUID))
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

// DiseaseAnalysisDeleteOne is the builder for deleting a single DiseaseAnalysis entity.
type DiseaseAnalysisDeleteOne struct {
	_d *DiseaseAnalysisDelete
}

// Where appends a list predicates to the DiseaseAnalysisDelete builder.
func (_d *DiseaseAnalysisDeleteOne) Where(ps ...predicate.DiseaseAnalysis) *DiseaseAnalysisDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DiseaseAnalysisDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{diseaseanalysis.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DiseaseAnalysisDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
