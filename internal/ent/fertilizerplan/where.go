// Code generated by ent, DO NOT EDIT.

package fertilizerplan

import (
	"agroadvisor/internal/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldUserID, v))
}

// Crop applies equality check predicate on the "crop" field. It's identical to CropEQ.
func Crop(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldCrop, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldStage, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldLanguage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldUserID, v))
}

// CropEQ applies the EQ predicate on the "crop" field.
func CropEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldCrop, v))
}

// CropNEQ applies the NEQ predicate on the "crop" field.
func CropNEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldCrop, v))
}

// CropIn applies the In predicate on the "crop" field.
func CropIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldCrop, vs...))
}

// CropNotIn applies the NotIn predicate on the "crop" field.
func CropNotIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldCrop, vs...))
}

// CropGT applies the GT predicate on the "crop" field.
func CropGT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldCrop, v))
}

// CropGTE applies the GTE predicate on the "crop" field.
func CropGTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldCrop, v))
}

// CropLT applies the LT predicate on the "crop" field.
func CropLT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldCrop, v))
}

// CropLTE applies the LTE predicate on the "crop" field.
func CropLTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldCrop, v))
}

// CropContains applies the Contains predicate on the "crop" field.
func CropContains(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContains(FieldCrop, v))
}

// CropHasPrefix applies the HasPrefix predicate on the "crop" field.
func CropHasPrefix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasPrefix(FieldCrop, v))
}

// CropHasSuffix applies the HasSuffix predicate on the "crop" field.
func CropHasSuffix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasSuffix(FieldCrop, v))
}

// CropEqualFold applies the EqualFold predicate on the "crop" field.
func CropEqualFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEqualFold(FieldCrop, v))
}

// CropContainsFold applies the ContainsFold predicate on the "crop" field.
func CropContainsFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContainsFold(FieldCrop, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasSuffix(FieldStage, v))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContainsFold(FieldStage, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldContainsFold(FieldLanguage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.FertilizerPlan) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.FertilizerPlan) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.FertilizerPlan) predicate.FertilizerPlan {
	return predicate.FertilizerPlan(sql.NotPredicates(p))
}
