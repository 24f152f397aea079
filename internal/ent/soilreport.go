// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/soilreport"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

// SoilReport is the model entity for the SoilReport schema.
type SoilReport struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// SoilReport holds the value of the "soil_report" field.
	SoilReport map[string]interface{} `json:"soil_report,omitempty"`
	// Solution holds the value of the "solution" field.
	Solution map[string]interface{} `json:"solution,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SoilReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case soilreport.FieldSoilReport, soilreport.FieldSolution:
			values[i] = new([]byte)
		case soilreport.FieldLanguage:
			values[i] = new(sql.NullString)
		case soilreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case soilreport.FieldID, soilreport.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SoilReport fields.
func (_m *SoilReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case soilreport.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case soilreport.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case soilreport.FieldSoilReport:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field soil_report", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SoilReport); err != nil {
					return fmt.Errorf("unmarshal field soil_report: %w", err)
				}
			}
		case soilreport.FieldSolution:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field solution", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Solution); err != nil {
					return fmt.Errorf("unmarshal field solution: %w", err)
				}
			}
		case soilreport.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case soilreport.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the SoilReport.
// This includes values selected through modifiers, order, etc.
func (_m *SoilReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SoilReport.
// Note that you need to call SoilReport.Unwrap() before calling this method if this SoilReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SoilReport) Update() *SoilReportUpdateOne {
	return NewSoilReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SoilReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SoilReport) Unwrap() *SoilReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SoilReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SoilReport) String() string {
	var builder strings.Builder
	builder.WriteString("SoilReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("soil_report=")
	builder.WriteString(fmt.Sprintf("%v", _m.SoilReport))
	builder.WriteString(", ")
	builder.WriteString("solution=")
	builder.WriteString(fmt.Sprintf("%v", _m.Solution))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SoilReports is a parsable slice of SoilReport.
type SoilReports []*SoilReport
