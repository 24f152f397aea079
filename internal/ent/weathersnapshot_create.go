// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/weathersnapshot"
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WeatherSnapshotCreate is the builder for creating a WeatherSnapshot entity.
type WeatherSnapshotCreate struct {
	config
	mutation *WeatherSnapshotMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WeatherSnapshotCreate) SetUserID(v uuid.UUID) *WeatherSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_c *WeatherSnapshotCreate) SetNillableUserID(v *uuid.UUID) *WeatherSnapshotCreate {
	if v != nil {
		_c.SetUserID(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *WeatherSnapshotCreate) SetLat(v float64) *WeatherSnapshotCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetLon sets the "lon" field.
func (_c *WeatherSnapshotCreate) SetLon(v float64) *WeatherSnapshotCreate {
	_c.mutation.SetLon(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *WeatherSnapshotCreate) SetProvider(v string) *WeatherSnapshotCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_c *WeatherSnapshotCreate) SetNillableProvider(v *string) *WeatherSnapshotCreate {
	if v != nil {
		_c.SetProvider(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *WeatherSnapshotCreate) SetPayload(v map[string]interface{}) *WeatherSnapshotCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WeatherSnapshotCreate) SetCreatedAt(v time.Time) *WeatherSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WeatherSnapshotCreate) SetNillableCreatedAt(v *time.Time) *WeatherSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WeatherSnapshotCreate) SetID(v uuid.UUID) *WeatherSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WeatherSnapshotCreate) SetNillableID(v *uuid.UUID) *WeatherSnapshotCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the WeatherSnapshotMutation object of the builder.
func (_c *WeatherSnapshotCreate) Mutation() *WeatherSnapshotMutation {
	return _c.mutation
}

// Save creates the WeatherSnapshot in the database.
func (_c *WeatherSnapshotCreate) Save(ctx context.Context) (*WeatherSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WeatherSnapshotCreate) SaveX(ctx context.Context) *WeatherSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeatherSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeatherSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WeatherSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Provider(); !ok {
		v := weathersnapshot.DefaultProvider
		_c.mutation.SetProvider(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := weathersnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := weathersnapshot.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WeatherSnapshotCreate) check() error {
	if _, ok := _c.mutation.Lat(); !ok {
		return &ValidationError{Name: "lat", err: errors.New(`ent: missing required field "WeatherSnapshot.lat"`)}
	}
	if _, ok := _c.mutation.Lon(); !ok {
		return &ValidationError{Name: "lon", err: errors.New(`ent: missing required field "WeatherSnapshot.lon"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "WeatherSnapshot.provider"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "WeatherSnapshot.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WeatherSnapshot.created_at"`)}
	}
	return nil
}

func (_c *WeatherSnapshotCreate) sqlSave(ctx context.Context) (*WeatherSnapshot, error) {
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

func (_c *WeatherSnapshotCreate) createSpec() (*WeatherSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &WeatherSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(weathersnapshot.Table, sqlgraph.NewFieldSpec(weathersnapshot.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(weathersnapshot.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(weathersnapshot.FieldLat, field.TypeFloat64, value)
		_node.Lat = value
	}
	if value, ok := _c.mutation.Lon(); ok {
		_spec.SetField(weathersnapshot.FieldLon, field.TypeFloat64, value)
		_node.Lon = value
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(weathersnapshot.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(weathersnapshot.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(weathersnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WeatherSnapshotCreateBulk is the builder for creating many WeatherSnapshot entities in bulk.
type WeatherSnapshotCreateBulk struct {
	config
	err      error
	builders []*WeatherSnapshotCreate
}

// Save creates the WeatherSnapshot entities in the database.
func (_c *WeatherSnapshotCreateBulk) Save(ctx context.Context) ([]*WeatherSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WeatherSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WeatherSnapshotMutation)
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
func (_c *WeatherSnapshotCreateBulk) SaveX(ctx context.Context) []*WeatherSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WeatherSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WeatherSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
