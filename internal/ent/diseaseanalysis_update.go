// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/diseaseanalysis"
	"agroadvisor/internal/ent/predicate"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DiseaseAnalysisUpdate is the builder for updating DiseaseAnalysis entities.
type DiseaseAnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *DiseaseAnalysisMutation
}

// Where appends a list predicates to the DiseaseAnalysisUpdate builder.
func (_u *DiseaseAnalysisUpdate) Where(ps ...predicate.DiseaseAnalysis) *DiseaseAnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *DiseaseAnalysisUpdate) SetUserID(v uuid.UUID) *DiseaseAnalysisUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdate) SetNillableUserID(v *uuid.UUID) *DiseaseAnalysisUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DiseaseAnalysisUpdate) SetFileType(v string) *DiseaseAnalysisUpdate {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdate) SetNillableFileType(v *string) *DiseaseAnalysisUpdate {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiseaseAnalysisUpdate) SetDiagnosis(v map[string]interface{}) *DiseaseAnalysisUpdate {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DiseaseAnalysisUpdate) SetLanguage(v string) *DiseaseAnalysisUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdate) SetNillableLanguage(v *string) *DiseaseAnalysisUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the DiseaseAnalysisMutation object of the builder.
func (_u *DiseaseAnalysisUpdate) Mutation() *DiseaseAnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DiseaseAnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiseaseAnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DiseaseAnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiseaseAnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DiseaseAnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(diseaseanalysis.Table, diseaseanalysis.Columns, sqlgraph.NewFieldSpec(diseaseanalysis.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(diseaseanalysis.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(diseaseanalysis.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diseaseanalysis.FieldDiagnosis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(diseaseanalysis.FieldLanguage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diseaseanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DiseaseAnalysisUpdateOne is the builder for updating a single DiseaseAnalysis entity.
type DiseaseAnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DiseaseAnalysisMutation
}

// SetUserID sets the "user_id" field.
func (_u *DiseaseAnalysisUpdateOne) SetUserID(v uuid.UUID) *DiseaseAnalysisUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdateOne) SetNillableUserID(v *uuid.UUID) *DiseaseAnalysisUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetFileType sets the "file_type" field.
func (_u *DiseaseAnalysisUpdateOne) SetFileType(v string) *DiseaseAnalysisUpdateOne {
	_u.mutation.SetFileType(v)
	return _u
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdateOne) SetNillableFileType(v *string) *DiseaseAnalysisUpdateOne {
	if v != nil {
		_u.SetFileType(*v)
	}
	return _u
}

// SetDiagnosis sets the "diagnosis" field.
func (_u *DiseaseAnalysisUpdateOne) SetDiagnosis(v map[string]interface{}) *DiseaseAnalysisUpdateOne {
	_u.mutation.SetDiagnosis(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *DiseaseAnalysisUpdateOne) SetLanguage(v string) *DiseaseAnalysisUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *DiseaseAnalysisUpdateOne) SetNillableLanguage(v *string) *DiseaseAnalysisUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the DiseaseAnalysisMutation object of the builder.
func (_u *DiseaseAnalysisUpdateOne) Mutation() *DiseaseAnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the DiseaseAnalysisUpdate builder.
func (_u *DiseaseAnalysisUpdateOne) Where(ps ...predicate.DiseaseAnalysis) *DiseaseAnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DiseaseAnalysisUpdateOne) Select(field string, fields ...string) *DiseaseAnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DiseaseAnalysis entity.
func (_u *DiseaseAnalysisUpdateOne) Save(ctx context.Context) (*DiseaseAnalysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DiseaseAnalysisUpdateOne) SaveX(ctx context.Context) *DiseaseAnalysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DiseaseAnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DiseaseAnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *DiseaseAnalysisUpdateOne) sqlSave(ctx context.Context) (_node *DiseaseAnalysis, err error) {
	_spec := sqlgraph.NewUpdateSpec(diseaseanalysis.Table, diseaseanalysis.Columns, sqlgraph.NewFieldSpec(diseaseanalysis.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DiseaseAnalysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, diseaseanalysis.FieldID)
		for _, f := range fields {
			if !diseaseanalysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != diseaseanalysis.FieldID {
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
		_spec.SetField(diseaseanalysis.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.FileType(); ok {
		_spec.SetField(diseaseanalysis.FieldFileType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Diagnosis(); ok {
		_spec.SetField(diseaseanalysis.FieldDiagnosis, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(diseaseanalysis.FieldLanguage, field.TypeString, value)
	}
	_node = &DiseaseAnalysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{diseaseanalysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
