// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/predicate"
	"agroadvisor/internal/ent/weathersnapshot"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// WeatherSnapshotUpdate is the builder for updating WeatherSnapshot entities.
type WeatherSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *WeatherSnapshotMutation
}

// Where appends a list predicates to the WeatherSnapshotUpdate builder.
func (_u *WeatherSnapshotUpdate) Where(ps ...predicate.WeatherSnapshot) *WeatherSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WeatherSnapshotUpdate) SetUserID(v uuid.UUID) *WeatherSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeatherSnapshotUpdate) SetNillableUserID(v *uuid.UUID) *WeatherSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WeatherSnapshotUpdate) ClearUserID() *WeatherSnapshotUpdate {
	_u.mutation.ClearUserID()
	return _u
}

// SetLat sets the "lat" field.
func (_u *WeatherSnapshotUpdate) SetLat(v float64) *WeatherSnapshotUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *WeatherSnapshotUpdate) SetNillableLat(v *float64) *WeatherSnapshotUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *WeatherSnapshotUpdate) AddLat(v float64) *WeatherSnapshotUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// SetLon sets the "lon" field.
func (_u *WeatherSnapshotUpdate) SetLon(v float64) *WeatherSnapshotUpdate {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *WeatherSnapshotUpdate) SetNillableLon(v *float64) *WeatherSnapshotUpdate {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *WeatherSnapshotUpdate) AddLon(v float64) *WeatherSnapshotUpdate {
	_u.mutation.AddLon(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WeatherSnapshotUpdate) SetProvider(v string) *WeatherSnapshotUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WeatherSnapshotUpdate) SetNillableProvider(v *string) *WeatherSnapshotUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WeatherSnapshotUpdate) SetPayload(v map[string]interface{}) *WeatherSnapshotUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the WeatherSnapshotMutation object of the builder.
func (_u *WeatherSnapshotUpdate) Mutation() *WeatherSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WeatherSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeatherSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WeatherSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeatherSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeatherSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(weathersnapshot.Table, weathersnapshot.Columns, sqlgraph.NewFieldSpec(weathersnapshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(weathersnapshot.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(weathersnapshot.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(weathersnapshot.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(weathersnapshot.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(weathersnapshot.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(weathersnapshot.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(weathersnapshot.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(weathersnapshot.FieldPayload, field.TypeJSON, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weathersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WeatherSnapshotUpdateOne is the builder for updating a single WeatherSnapshot entity.
type WeatherSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WeatherSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *WeatherSnapshotUpdateOne) SetUserID(v uuid.UUID) *WeatherSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WeatherSnapshotUpdateOne) SetNillableUserID(v *uuid.UUID) *WeatherSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// ClearUserID clears the value of the "user_id" field.
func (_u *WeatherSnapshotUpdateOne) ClearUserID() *WeatherSnapshotUpdateOne {
	_u.mutation.ClearUserID()
	return _u
}

// SetLat sets the "lat" field.
func (_u *WeatherSnapshotUpdateOne) SetLat(v float64) *WeatherSnapshotUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *WeatherSnapshotUpdateOne) SetNillableLat(v *float64) *WeatherSnapshotUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *WeatherSnapshotUpdateOne) AddLat(v float64) *WeatherSnapshotUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// SetLon sets the "lon" field.
func (_u *WeatherSnapshotUpdateOne) SetLon(v float64) *WeatherSnapshotUpdateOne {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *WeatherSnapshotUpdateOne) SetNillableLon(v *float64) *WeatherSnapshotUpdateOne {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *WeatherSnapshotUpdateOne) AddLon(v float64) *WeatherSnapshotUpdateOne {
	_u.mutation.AddLon(v)
	return _u
}

// SetProvider sets the "provider" field.
func (_u *WeatherSnapshotUpdateOne) SetProvider(v string) *WeatherSnapshotUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *WeatherSnapshotUpdateOne) SetNillableProvider(v *string) *WeatherSnapshotUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *WeatherSnapshotUpdateOne) SetPayload(v map[string]interface{}) *WeatherSnapshotUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// Mutation returns the WeatherSnapshotMutation object of the builder.
func (_u *WeatherSnapshotUpdateOne) Mutation() *WeatherSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the WeatherSnapshotUpdate builder.
func (_u *WeatherSnapshotUpdateOne) Where(ps ...predicate.WeatherSnapshot) *WeatherSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WeatherSnapshotUpdateOne) Select(field string, fields ...string) *WeatherSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WeatherSnapshot entity.
func (_u *WeatherSnapshotUpdateOne) Save(ctx context.Context) (*WeatherSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WeatherSnapshotUpdateOne) SaveX(ctx context.Context) *WeatherSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WeatherSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WeatherSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *WeatherSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *WeatherSnapshot, err error) {
	_spec := sqlgraph.NewUpdateSpec(weathersnapshot.Table, weathersnapshot.Columns, sqlgraph.NewFieldSpec(weathersnapshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WeatherSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, weathersnapshot.FieldID)
		for _, f := range fields {
			if !weathersnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != weathersnapshot.FieldID {
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
		_spec.SetField(weathersnapshot.FieldUserID, field.TypeUUID, value)
	}
	if _u.mutation.UserIDCleared() {
		_spec.ClearField(weathersnapshot.FieldUserID, field.TypeUUID)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(weathersnapshot.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(weathersnapshot.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(weathersnapshot.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(weathersnapshot.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(weathersnapshot.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(weathersnapshot.FieldPayload, field.TypeJSON, value)
	}
	_node = &WeatherSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{weathersnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
