// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/predicate"
	"agroadvisor/internal/ent/soilreport"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SoilReportUpdate is the builder for updating SoilReport entities.
type SoilReportUpdate struct {
	config
	hooks    []Hook
	mutation *SoilReportMutation
}

// Where appends a list predicates to the SoilReportUpdate builder.
func (_u *SoilReportUpdate) Where(ps ...predicate.SoilReport) *SoilReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SoilReportUpdate) SetUserID(v uuid.UUID) *SoilReportUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SoilReportUpdate) SetNillableUserID(v *uuid.UUID) *SoilReportUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSoilReport sets the "soil_report" field.
func (_u *SoilReportUpdate) SetSoilReport(v map[string]interface{}) *SoilReportUpdate {
	_u.mutation.SetSoilReport(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *SoilReportUpdate) SetSolution(v map[string]interface{}) *SoilReportUpdate {
	_u.mutation.SetSolution(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SoilReportUpdate) SetLanguage(v string) *SoilReportUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SoilReportUpdate) SetNillableLanguage(v *string) *SoilReportUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the SoilReportMutation object of the builder.
func (_u *SoilReportUpdate) Mutation() *SoilReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SoilReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SoilReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SoilReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SoilReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SoilReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(soilreport.Table, soilreport.Columns, sqlgraph.NewFieldSpec(soilreport.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(soilreport.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SoilReport(); ok {
		_spec.SetField(soilreport.FieldSoilReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(soilreport.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(soilreport.FieldLanguage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{soilreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SoilReportUpdateOne is the builder for updating a single SoilReport entity.
type SoilReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SoilReportMutation
}

// SetUserID sets the "user_id" field.
func (_u *SoilReportUpdateOne) SetUserID(v uuid.UUID) *SoilReportUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SoilReportUpdateOne) SetNillableUserID(v *uuid.UUID) *SoilReportUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetSoilReport sets the "soil_report" field.
func (_u *SoilReportUpdateOne) SetSoilReport(v map[string]interface{}) *SoilReportUpdateOne {
	_u.mutation.SetSoilReport(v)
	return _u
}

// SetSolution sets the "solution" field.
func (_u *SoilReportUpdateOne) SetSolution(v map[string]interface{}) *SoilReportUpdateOne {
	_u.mutation.SetSolution(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *SoilReportUpdateOne) SetLanguage(v string) *SoilReportUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *SoilReportUpdateOne) SetNillableLanguage(v *string) *SoilReportUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the SoilReportMutation object of the builder.
func (_u *SoilReportUpdateOne) Mutation() *SoilReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the SoilReportUpdate builder.
func (_u *SoilReportUpdateOne) Where(ps ...predicate.SoilReport) *SoilReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SoilReportUpdateOne) Select(field string, fields ...string) *SoilReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SoilReport entity.
func (_u *SoilReportUpdateOne) Save(ctx context.Context) (*SoilReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SoilReportUpdateOne) SaveX(ctx context.Context) *SoilReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SoilReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SoilReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *SoilReportUpdateOne) sqlSave(ctx context.Context) (_node *SoilReport, err error) {
	_spec := sqlgraph.NewUpdateSpec(soilreport.Table, soilreport.Columns, sqlgraph.NewFieldSpec(soilreport.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SoilReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, soilreport.FieldID)
		for _, f := range fields {
			if !soilreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != soilreport.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(soilreport.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.SoilReport(); ok {
		_spec.SetField(soilreport.FieldSoilReport, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Solution(); ok {
		_spec.SetField(soilreport.FieldSolution, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(soilreport.FieldLanguage, field.TypeString, value)
	}
	_node = &SoilReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{soilreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
