// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/fertilizerplan"
	"agroadvisor/internal/ent/predicate"
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// FertilizerPlanUpdate is the builder for updating FertilizerPlan entities.
type FertilizerPlanUpdate struct {
	config
	hooks    []Hook
	mutation *FertilizerPlanMutation
}

// Where appends a list predicates to the FertilizerPlanUpdate builder.
func (_u *FertilizerPlanUpdate) Where(ps ...predicate.FertilizerPlan) *FertilizerPlanUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FertilizerPlanUpdate) SetUserID(v uuid.UUID) *FertilizerPlanUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FertilizerPlanUpdate) SetNillableUserID(v *uuid.UUID) *FertilizerPlanUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCrop sets the "crop" field.
func (_u *FertilizerPlanUpdate) SetCrop(v string) *FertilizerPlanUpdate {
	_u.mutation.SetCrop(v)
	return _u
}

// SetNillableCrop sets the "crop" field if the given value is not nil.
func (_u *FertilizerPlanUpdate) SetNillableCrop(v *string) *FertilizerPlanUpdate {
	if v != nil {
		_u.SetCrop(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *FertilizerPlanUpdate) SetStage(v string) *FertilizerPlanUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *FertilizerPlanUpdate) SetNillableStage(v *string) *FertilizerPlanUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *FertilizerPlanUpdate) SetPlan(v map[string]interface{}) *FertilizerPlanUpdate {
	_u.mutation.SetPlan(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *FertilizerPlanUpdate) SetLanguage(v string) *FertilizerPlanUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *FertilizerPlanUpdate) SetNillableLanguage(v *string) *FertilizerPlanUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the FertilizerPlanMutation object of the builder.
func (_u *FertilizerPlanUpdate) Mutation() *FertilizerPlanMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FertilizerPlanUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FertilizerPlanUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FertilizerPlanUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FertilizerPlanUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FertilizerPlanUpdate) check() error {
	if v, ok := _u.mutation.Crop(); ok {
		if err := fertilizerplan.CropValidator(v); err != nil {
			return &ValidationError{Name: "crop", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.crop": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := fertilizerplan.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *FertilizerPlanUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fertilizerplan.Table, fertilizerplan.Columns, sqlgraph.NewFieldSpec(fertilizerplan.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(fertilizerplan.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Crop(); ok {
		_spec.SetField(fertilizerplan.FieldCrop, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(fertilizerplan.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(fertilizerplan.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(fertilizerplan.FieldLanguage, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fertilizerplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FertilizerPlanUpdateOne is the builder for updating a single FertilizerPlan entity.
type FertilizerPlanUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FertilizerPlanMutation
}

// SetUserID sets the "user_id" field.
func (_u *FertilizerPlanUpdateOne) SetUserID(v uuid.UUID) *FertilizerPlanUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FertilizerPlanUpdateOne) SetNillableUserID(v *uuid.UUID) *FertilizerPlanUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetCrop sets the "crop" field.
func (_u *FertilizerPlanUpdateOne) SetCrop(v string) *FertilizerPlanUpdateOne {
	_u.mutation.SetCrop(v)
	return _u
}

// SetNillableCrop sets the "crop" field if the given value is not nil.
func (_u *FertilizerPlanUpdateOne) SetNillableCrop(v *string) *FertilizerPlanUpdateOne {
	if v != nil {
		_u.SetCrop(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *FertilizerPlanUpdateOne) SetStage(v string) *FertilizerPlanUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *FertilizerPlanUpdateOne) SetNillableStage(v *string) *FertilizerPlanUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetPlan sets the "plan" field.
func (_u *FertilizerPlanUpdateOne) SetPlan(v map[string]interface{}) *FertilizerPlanUpdateOne {
	_u.mutation.SetPlan(v)
	return _u
}

// SetLanguage sets the "language" field.
func (_u *FertilizerPlanUpdateOne) SetLanguage(v string) *FertilizerPlanUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *FertilizerPlanUpdateOne) SetNillableLanguage(v *string) *FertilizerPlanUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// Mutation returns the FertilizerPlanMutation object of the builder.
func (_u *FertilizerPlanUpdateOne) Mutation() *FertilizerPlanMutation {
	return _u.mutation
}

// Where appends a list predicates to the FertilizerPlanUpdate builder.
func (_u *FertilizerPlanUpdateOne) Where(ps ...predicate.FertilizerPlan) *FertilizerPlanUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FertilizerPlanUpdateOne) Select(field string, fields ...string) *FertilizerPlanUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FertilizerPlan entity.
func (_u *FertilizerPlanUpdateOne) Save(ctx context.Context) (*FertilizerPlan, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FertilizerPlanUpdateOne) SaveX(ctx context.Context) *FertilizerPlan {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FertilizerPlanUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FertilizerPlanUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FertilizerPlanUpdateOne) check() error {
	if v, ok := _u.mutation.Crop(); ok {
		if err := fertilizerplan.CropValidator(v); err != nil {
			return &ValidationError{Name: "crop", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.crop": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := fertilizerplan.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "FertilizerPlan.stage": %w`, err)}
		}
	}
	return nil
}

func (_u *FertilizerPlanUpdateOne) sqlSave(ctx context.Context) (_node *FertilizerPlan, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(fertilizerplan.Table, fertilizerplan.Columns, sqlgraph.NewFieldSpec(fertilizerplan.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FertilizerPlan.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fertilizerplan.FieldID)
		for _, f := range fields {
			if !fertilizerplan.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fertilizerplan.FieldID {
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
		_spec.SetField(fertilizerplan.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Crop(); ok {
		_spec.SetField(fertilizerplan.FieldCrop, field.TypeString, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(fertilizerplan.FieldStage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Plan(); ok {
		_spec.SetField(fertilizerplan.FieldPlan, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(fertilizerplan.FieldLanguage, field.TypeString, value)
	}
	_node = &FertilizerPlan{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fertilizerplan.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
