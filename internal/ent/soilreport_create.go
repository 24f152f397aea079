// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/soilreport"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// SoilReportCreate is the builder for creating a SoilReport entity.
type SoilReportCreate struct {
	config
	mutation *SoilReportMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SoilReportCreate) SetUserID(v uuid.UUID) *SoilReportCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetSoilReport sets the "soil_report" field.
func (_c *SoilReportCreate) SetSoilReport(v map[string]interface{}) *SoilReportCreate {
	_c.mutation.SetSoilReport(v)
	return _c
}

// SetSolution sets the "solution" field.
func (_c *SoilReportCreate) SetSolution(v map[string]interface{}) *SoilReportCreate {
	_c.mutation.SetSolution(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *SoilReportCreate) SetLanguage(v string) *SoilReportCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *SoilReportCreate) SetNillableLanguage(v *string) *SoilReportCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SoilReportCreate) SetCreatedAt(v time.Time) *SoilReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SoilReportCreate) SetNillableCreatedAt(v *time.Time) *SoilReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SoilReportCreate) SetID(v uuid.UUID) *SoilReportCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SoilReportCreate) SetNillableID(v *uuid.UUID) *SoilReportCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SoilReportMutation object of the builder.
func (_c *SoilReportCreate) Mutation() *SoilReportMutation {
	return _c.mutation
}

// Save creates the SoilReport in the database.
func (_c *SoilReportCreate) Save(ctx context.Context) (*SoilReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SoilReportCreate) SaveX(ctx context.Context) *SoilReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SoilReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SoilReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SoilReportCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := soilreport.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := soilreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := soilreport.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SoilReportCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SoilReport.user_id"`)}
	}
	if _, ok := _c.mutation.SoilReport(); !ok {
		return &ValidationError{Name: "soil_report", err: errors.New(`ent: missing required field "SoilReport.soil_report"`)}
	}
	if _, ok := _c.mutation.Solution(); !ok {
		return &ValidationError{Name: "solution", err: errors.New(`ent: missing required field "SoilReport.solution"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "SoilReport.language"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SoilReport.created_at"`)}
	}
	return nil
}

func (_c *SoilReportCreate) sqlSave(ctx context.Context) (*SoilReport, error) {
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

func (_c *SoilReportCreate) createSpec() (*SoilReport, *sqlgraph.CreateSpec) {
	var (
		_node = &SoilReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(soilreport.Table, sqlgraph.NewFieldSpec(soilreport.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(soilreport.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.SoilReport(); ok {
		_spec.SetField(soilreport.FieldSoilReport, field.TypeJSON, value)
		_node.SoilReport = value
	}
	if value, ok := _c.mutation.Solution(); ok {
		_spec.SetField(soilreport.FieldSolution, field.TypeJSON, value)
		_node.Solution = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(soilreport.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(soilreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SoilReportCreateBulk is the builder for creating many SoilReport entities in bulk.
type SoilReportCreateBulk struct {
	config
	err      error
	builders []*SoilReportCreate
}

// Save creates the SoilReport entities in the database.
func (_c *SoilReportCreateBulk) Save(ctx context.Context) ([]*SoilReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SoilReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SoilReportMutation)
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
func (_c *SoilReportCreateBulk) SaveX(ctx context.Context) []*SoilReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SoilReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SoilReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
