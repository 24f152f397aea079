// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/fertilizerplan"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FertilizerPlanCreate is the builder for creating a FertilizerPlan entity.
type FertilizerPlanCreate struct {
	config
	mutation *FertilizerPlanMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *FertilizerPlanCreate) SetUserID(v uuid.UUID) *FertilizerPlanCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCrop sets the "crop" field.
func (_c *FertilizerPlanCreate) SetCrop(v string) *FertilizerPlanCreate {
	_c.mutation.SetCrop(v)
	return _c
}

// SetStage sets the "stage" field.
func (_c *FertilizerPlanCreate) SetStage(v string) *FertilizerPlanCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *FertilizerPlanCreate) SetPlan(v map[string]interface{}) *FertilizerPlanCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *FertilizerPlanCreate) SetLanguage(v string) *FertilizerPlanCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *FertilizerPlanCreate) SetNillableLanguage(v *string) *FertilizerPlanCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FertilizerPlanCreate) SetCreatedAt(v time.Time) *FertilizerPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FertilizerPlanCreate) SetNillableCreatedAt(v *time.Time) *FertilizerPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *FertilizerPlanCreate) SetID(v uuid.UUID) *FertilizerPlanCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *FertilizerPlanCreate) SetNillableID(v *uuid.UUID) *FertilizerPlanCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the FertilizerPlanMutation object of the builder.
func (_c *FertilizerPlanCreate) Mutation() *FertilizerPlanMutation {
	return _c.mutation
}

// Save creates the FertilizerPlan in the database.
func (_c *FertilizerPlanCreate) Save(ctx context.Context) (*FertilizerPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FertilizerPlanCreate) SaveX(ctx context.Context) *FertilizerPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FertilizerPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FertilizerPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FertilizerPlanCreate) defaults() {
	if _, ok := _c.mutation.Language(); !ok {
		v := fertilizerplan.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fertilizerplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := fertilizerplan.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FertilizerPlanCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FertilizerPlan.user_id"`)}
	}
	if _, ok := _c.mutation.Crop(); !ok {
		return &ValidationError{Name: "crop", err: errors.New(`ent: missing required field "FertilizerPlan.crop"`)}
	}
	if v, ok := _c.mutation.Crop(); ok {
		if err := fertilizerplan.CropValidator(v); err != nil {
			return &ValidationError{Name: "crop", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.crop": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "FertilizerPlan.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := fertilizerplan.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "FertilizerPlan.plan"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "FertilizerPlan.language"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FertilizerPlan.created_at"`)}
	}
	return nil
}

func (_c *FertilizerPlanCreate) sqlSave(ctx context.Context) (*FertilizerPlan, error) {
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

func (_c *FertilizerPlanCreate) createSpec() (*FertilizerPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &FertilizerPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fertilizerplan.Table, sqlgraph.NewFieldSpec(fertilizerplan.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(fertilizerplan.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Crop(); ok {
		_spec.SetField(fertilizerplan.FieldCrop, field.TypeString, value)
		_node.Crop = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(fertilizerplan.FieldStage, field.TypeString, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(fertilizerplan.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(fertilizerplan.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fertilizerplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FertilizerPlanCreateBulk is the builder for creating many FertilizerPlan entities in bulk.
type FertilizerPlanCreateBulk struct {
	config
	err      error
	builders []*FertilizerPlanCreate
}

// Save creates the FertilizerPlan entities in the database.
func (_c *FertilizerPlanCreateBulk) Save(ctx context.Context) ([]*FertilizerPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FertilizerPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FertilizerPlanMutation)
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
func (_c *FertilizerPlanCreateBulk) SaveX(ctx context.Context) []*FertilizerPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FertilizerPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FertilizerPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
