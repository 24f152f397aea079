// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/marketsnapshot"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MarketSnapshotCreate is the builder for creating a MarketSnapshot entity.
type MarketSnapshotCreate struct {
	config
	mutation *MarketSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *MarketSnapshotCreate) SetUserID(v uuid.UUID) *MarketSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRegion sets the "region" field.
func (_c *MarketSnapshotCreate) SetRegion(v string) *MarketSnapshotCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetPrices sets the "prices" field.
func (_c *MarketSnapshotCreate) SetPrices(v []map[string]interface{}) *MarketSnapshotCreate {
	_c.mutation.SetPrices(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *MarketSnapshotCreate) SetSource(v string) *MarketSnapshotCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *MarketSnapshotCreate) SetNillableSource(v *string) *MarketSnapshotCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *MarketSnapshotCreate) SetCreatedAt(v time.Time) *MarketSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MarketSnapshotCreate) SetNillableCreatedAt(v *time.Time) *MarketSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MarketSnapshotCreate) SetID(v uuid.UUID) *MarketSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MarketSnapshotCreate) SetNillableID(v *uuid.UUID) *MarketSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the MarketSnapshotMutation object of the builder.
func (_c *MarketSnapshotCreate) Mutation() *MarketSnapshotMutation {
	return _c.mutation
}

// Save creates the MarketSnapshot in the database.
func (_c *MarketSnapshotCreate) Save(ctx context.Context) (*MarketSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MarketSnapshotCreate) SaveX(ctx context.Context) *MarketSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MarketSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Source(); !ok {
		v := marketsnapshot.DefaultSource
		_c.mutation.SetSource(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := marketsnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := marketsnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MarketSnapshotCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "MarketSnapshot.user_id"`)}
	}
	if _, ok := _c.mutation.Region(); !ok {
		return &ValidationError{Name: "region", err: errors.New(`ent: missing required field "MarketSnapshot.region"`)}
	}
	if v, ok := _c.mutation.Region(); ok {
		if err := marketsnapshot.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "MarketSnapshot.region": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prices(); !ok {
		return &ValidationError{Name: "prices", err: errors.New(`ent: missing required field "MarketSnapshot.prices"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "MarketSnapshot.source"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "MarketSnapshot.created_at"`)}
	}
	return nil
}

func (_c *MarketSnapshotCreate) sqlSave(ctx context.Context) (*MarketSnapshot, error) {
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

func (_c *MarketSnapshotCreate) createSpec() (*MarketSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &MarketSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(marketsnapshot.Table, sqlgraph.NewFieldSpec(marketsnapshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(marketsnapshot.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(marketsnapshot.FieldRegion, field.TypeString, value)
		_node.Region = value
	}
	if value, ok := _c.mutation.Prices(); ok {
		_spec.SetField(marketsnapshot.FieldPrices, field.TypeJSON, value)
		_node.Prices = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(marketsnapshot.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(marketsnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// MarketSnapshotCreateBulk is the builder for creating many MarketSnapshot entities in bulk.
type MarketSnapshotCreateBulk struct {
	config
	err      error
	builders []*MarketSnapshotCreate
}

// Save creates the MarketSnapshot entities in the database.
func (_c *MarketSnapshotCreateBulk) Save(ctx context.Context) ([]*MarketSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MarketSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MarketSnapshotMutation)
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
func (_c *MarketSnapshotCreateBulk) SaveX(ctx context.Context) []*MarketSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MarketSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MarketSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
