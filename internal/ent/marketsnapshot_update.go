// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/marketsnapshot"
	"agroadvisor/internal/ent/predicate"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// MarketSnapshotUpdate is the builder for updating MarketSnapshot entities.
type MarketSnapshotUpdate struct {
	config
	hooks    []Hook
	mutation *MarketSnapshotMutation
}

// Where appends a list predicates to the MarketSnapshotUpdate builder.
func (_u *MarketSnapshotUpdate) Where(ps ...predicate.MarketSnapshot) *MarketSnapshotUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *MarketSnapshotUpdate) SetUserID(v uuid.UUID) *MarketSnapshotUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MarketSnapshotUpdate) SetNillableUserID(v *uuid.UUID) *MarketSnapshotUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *MarketSnapshotUpdate) SetRegion(v string) *MarketSnapshotUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *MarketSnapshotUpdate) SetNillableRegion(v *string) *MarketSnapshotUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetPrices sets the "prices" field.
func (_u *MarketSnapshotUpdate) SetPrices(v []map[string]interface{}) *MarketSnapshotUpdate {
	_u.mutation.SetPrices(v)
	return _u
}

// AppendPrices appends value to the "prices" field.
func (_u *MarketSnapshotUpdate) AppendPrices(v []map[string]interface{}) *MarketSnapshotUpdate {
	_u.mutation.AppendPrices(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketSnapshotUpdate) SetSource(v string) *MarketSnapshotUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketSnapshotUpdate) SetNillableSource(v *string) *MarketSnapshotUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the MarketSnapshotMutation object of the builder.
func (_u *MarketSnapshotUpdate) Mutation() *MarketSnapshotMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MarketSnapshotUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketSnapshotUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MarketSnapshotUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketSnapshotUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketSnapshotUpdate) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := marketsnapshot.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "MarketSnapshot.region": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketSnapshotUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketsnapshot.Table, marketsnapshot.Columns, sqlgraph.NewFieldSpec(marketsnapshot.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(marketsnapshot.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(marketsnapshot.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prices(); ok {
		_spec.SetField(marketsnapshot.FieldPrices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, marketsnapshot.FieldPrices, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketsnapshot.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MarketSnapshotUpdateOne is the builder for updating a single MarketSnapshot entity.
type MarketSnapshotUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MarketSnapshotMutation
}

// SetUserID sets the "user_id" field.
func (_u *MarketSnapshotUpdateOne) SetUserID(v uuid.UUID) *MarketSnapshotUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *MarketSnapshotUpdateOne) SetNillableUserID(v *uuid.UUID) *MarketSnapshotUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *MarketSnapshotUpdateOne) SetRegion(v string) *MarketSnapshotUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *MarketSnapshotUpdateOne) SetNillableRegion(v *string) *MarketSnapshotUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// SetPrices sets the "prices" field.
func (_u *MarketSnapshotUpdateOne) SetPrices(v []map[string]interface{}) *MarketSnapshotUpdateOne {
	_u.mutation.SetPrices(v)
	return _u
}

// AppendPrices appends value to the "prices" field.
func (_u *MarketSnapshotUpdateOne) AppendPrices(v []map[string]interface{}) *MarketSnapshotUpdateOne {
	_u.mutation.AppendPrices(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *MarketSnapshotUpdateOne) SetSource(v string) *MarketSnapshotUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *MarketSnapshotUpdateOne) SetNillableSource(v *string) *MarketSnapshotUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the MarketSnapshotMutation object of the builder.
func (_u *MarketSnapshotUpdateOne) Mutation() *MarketSnapshotMutation {
	return _u.mutation
}

// Where appends a list predicates to the MarketSnapshotUpdate builder.
func (_u *MarketSnapshotUpdateOne) Where(ps ...predicate.MarketSnapshot) *MarketSnapshotUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MarketSnapshotUpdateOne) Select(field string, fields ...string) *MarketSnapshotUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MarketSnapshot entity.
func (_u *MarketSnapshotUpdateOne) Save(ctx context.Context) (*MarketSnapshot, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MarketSnapshotUpdateOne) SaveX(ctx context.Context) *MarketSnapshot {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MarketSnapshotUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MarketSnapshotUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MarketSnapshotUpdateOne) check() error {
	if v, ok := _u.mutation.Region(); ok {
		if err := marketsnapshot.RegionValidator(v); err != nil {
			return &ValidationError{Name: "region", err: fmt.Errorf(`ent: validator failed for field "MarketSnapshot.region": %w`, err)}
		}
	}
	return nil
}

func (_u *MarketSnapshotUpdateOne) sqlSave(ctx context.Context) (_node *MarketSnapshot, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(marketsnapshot.Table, marketsnapshot.Columns, sqlgraph.NewFieldSpec(marketsnapshot.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MarketSnapshot.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, marketsnapshot.FieldID)
		for _, f := range fields {
			if !marketsnapshot.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != marketsnapshot.FieldID {
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
		_spec.SetField(marketsnapshot.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(marketsnapshot.FieldRegion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prices(); ok {
		_spec.SetField(marketsnapshot.FieldPrices, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPrices(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, marketsnapshot.FieldPrices, value)
		})
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(marketsnapshot.FieldSource, field.TypeString, value)
	}
	_node = &MarketSnapshot{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{marketsnapshot.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
