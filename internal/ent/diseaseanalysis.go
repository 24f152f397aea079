// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/diseaseanalysis"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// DiseaseAnalysis is the model entity for the DiseaseAnalysis schema.
type DiseaseAnalysis struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// FileType holds the value of the "file_type" field.
	FileType string `json:"file_type,omitempty"`
	// Diagnosis holds the value of the "diagnosis" field.
	Diagnosis map[string]interface{} `json:"diagnosis,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DiseaseAnalysis) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case diseaseanalysis.FieldDiagnosis:
			values[i] = new([]byte)
		case diseaseanalysis.FieldFileType, diseaseanalysis.FieldLanguage:
			values[i] = new(sql.NullString)
		case diseaseanalysis.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case diseaseanalysis.FieldID, diseaseanalysis.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DiseaseAnalysis fields.
func (_m *DiseaseAnalysis) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case diseaseanalysis.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case diseaseanalysis.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case diseaseanalysis.FieldFileType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_type", values[i])
			} else if value.Valid {
				_m.FileType = value.String
			}
		case diseaseanalysis.FieldDiagnosis:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field diagnosis", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Diagnosis); err != nil {
					return fmt.Errorf("unmarshal field diagnosis: %w", err)
				}
			}
		case diseaseanalysis.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case diseaseanalysis.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DiseaseAnalysis.
// This includes values selected through modifiers, order, etc.
func (_m *DiseaseAnalysis) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DiseaseAnalysis.
// Note that you need to call DiseaseAnalysis.Unwrap() before calling this method if this DiseaseAnalysis
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DiseaseAnalysis) Update() *DiseaseAnalysisUpdateOne {
	return NewDiseaseAnalysisClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DiseaseAnalysis entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DiseaseAnalysis) Unwrap() *DiseaseAnalysis {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DiseaseAnalysis is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DiseaseAnalysis) String() string {
	var builder strings.Builder
	builder.WriteString("DiseaseAnalysis(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("file_type=")
	builder.WriteString(_m.FileType)
	builder.WriteString(", ")
	builder.WriteString("diagnosis=")
	builder.WriteString(fmt.Sprintf("%v", _m.Diagnosis))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DiseaseAnalyses is a parsable slice of DiseaseAnalysis.
type DiseaseAnalyses []*DiseaseAnalysis
