// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/diseaseanalysis"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// DiseaseAnalysisCreate is the builder for creating a DiseaseAnalysis entity.
type DiseaseAnalysisCreate struct {
	config
	mutation *DiseaseAnalysisMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *DiseaseAnalysisCreate) SetUserID(v uuid.UUID) *DiseaseAnalysisCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetFileType sets the "file_type" field.
func (_c *DiseaseAnalysisCreate) SetFileType(v string) *DiseaseAnalysisCreate {
	_c.mutation.SetFileType(v)
	return _c
}

// SetNillableFileType sets the "file_type" field if the given value is not nil.
func (_c *DiseaseAnalysisCreate) SetNillableFileType(v *string) *DiseaseAnalysisCreate {
	if v != nil {
		_c.SetFileType(*v)
	}
	return _c
}

// SetDiagnosis sets the "diagnosis" field.
func (_c *DiseaseAnalysisCreate) SetDiagnosis(v map[string]interface{}) *DiseaseAnalysisCreate {
	_c.mutation.SetDiagnosis(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *DiseaseAnalysisCreate) SetLanguage(v string) *DiseaseAnalysisCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *DiseaseAnalysisCreate) SetNillableLanguage(v *string) *DiseaseAnalysisCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DiseaseAnalysisCreate) SetCreatedAt(v time.Time) *DiseaseAnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DiseaseAnalysisCreate) SetNillableCreatedAt(v *time.Time) *DiseaseAnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DiseaseAnalysisCreate) SetID(v uuid.UUID) *DiseaseAnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DiseaseAnalysisCreate) SetNillableID(v *uuid.UUID) *DiseaseAnalysisCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DiseaseAnalysisMutation object of the builder.
func (_c *DiseaseAnalysisCreate) Mutation() *DiseaseAnalysisMutation {
	return _c.mutation
}

// Save creates the DiseaseAnalysis in the database.
func (_c *DiseaseAnalysisCreate) Save(ctx context.Context) (*DiseaseAnalysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DiseaseAnalysisCreate) SaveX(ctx context.Context) *DiseaseAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiseaseAnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiseaseAnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DiseaseAnalysisCreate) defaults() {
	if _, ok := _c.mutation.FileType(); !ok {
		v := diseaseanalysis.DefaultFileType
		_c.mutation.SetFileType(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := diseaseanalysis.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := diseaseanalysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := diseaseanalysis.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DiseaseAnalysisCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "DiseaseAnalysis.user_id"`)}
	}
	if _, ok := _c.mutation.FileType(); !ok {
		return &ValidationError{Name: "file_type", err: errors.New(`ent: missing required field "DiseaseAnalysis.file_type"`)}
	}
	if _, ok := _c.mutation.Diagnosis(); !ok {
		return &ValidationError{Name: "diagnosis", err: errors.New(`ent: missing required field "DiseaseAnalysis.diagnosis"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "DiseaseAnalysis.language"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DiseaseAnalysis.created_at"`)}
	}
	return nil
}

func (_c *DiseaseAnalysisCreate) sqlSave(ctx context.Context) (*DiseaseAnalysis, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DiseaseAnalysisCreate) createSpec() (*DiseaseAnalysis, *sqlgraph.CreateSpec) {
	var (
		_node = &DiseaseAnalysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(diseaseanalysis.Table, sqlgraph.NewFieldSpec(diseaseanalysis.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(diseaseanalysis.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.FileType(); ok {
		_spec.SetField(diseaseanalysis.FieldFileType, field.TypeString, value)
		_node.FileType = value
	}
	if value, ok := _c.mutation.Diagnosis(); ok {
		_spec.SetField(diseaseanalysis.FieldDiagnosis, field.TypeJSON, value)
		_node.Diagnosis = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(diseaseanalysis.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(diseaseanalysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DiseaseAnalysisCreateBulk is the builder for creating many DiseaseAnalysis entities in bulk.
type DiseaseAnalysisCreateBulk struct {
	config
	err      error
	builders []*DiseaseAnalysisCreate
}

// Save creates the DiseaseAnalysis entities in the database.
func (_c *DiseaseAnalysisCreateBulk) Save(ctx context.Context) ([]*DiseaseAnalysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DiseaseAnalysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DiseaseAnalysisMutation)
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
func (_c *DiseaseAnalysisCreateBulk) SaveX(ctx context.Context) []*DiseaseAnalysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DiseaseAnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DiseaseAnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
