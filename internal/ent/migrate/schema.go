// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DiseaseAnalysesColumns holds the columns for the "disease_analyses" table.
	DiseaseAnalysesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "file_type", Type: field.TypeString, Default: ""},
		{Name: "diagnosis", Type: field.TypeJSON},
		{Name: "language", Type: field.TypeString, Default: "en-IN"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DiseaseAnalysesTable holds the schema information for the "disease_analyses" table.
	DiseaseAnalysesTable = &schema.Table{
		Name:       "disease_analyses",
		Columns:    DiseaseAnalysesColumns,
		PrimaryKey: []*schema.Column{DiseaseAnalysesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "diseaseanalysis_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DiseaseAnalysesColumns[1], DiseaseAnalysesColumns[5]},
			},
		},
	}
	// FertilizerPlansColumns holds the columns for the "fertilizer_plans" table.
	FertilizerPlansColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "crop", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString},
		{Name: "plan", Type: field.TypeJSON},
		{Name: "language", Type: field.TypeString, Default: "en-IN"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// FertilizerPlansTable holds the schema information for the "fertilizer_plans" table.
	FertilizerPlansTable = &schema.Table{
		Name:       "fertilizer_plans",
		Columns:    FertilizerPlansColumns,
		PrimaryKey: []*schema.Column{FertilizerPlansColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "fertilizerplan_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{FertilizerPlansColumns[1], FertilizerPlansColumns[6]},
			},
		},
	}
	// MarketSnapshotsColumns holds the columns for the "market_snapshots" table.
	MarketSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "region", Type: field.TypeString},
		{Name: "prices", Type: field.TypeJSON},
		{Name: "source", Type: field.TypeString, Default: "manual_or_external_ingest"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// MarketSnapshotsTable holds the schema information for the "market_snapshots" table.
	MarketSnapshotsTable = &schema.Table{
		Name:       "market_snapshots",
		Columns:    MarketSnapshotsColumns,
		PrimaryKey: []*schema.Column{MarketSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "marketsnapshot_user_id_region_created_at",
				Unique:  false,
				Columns: []*schema.Column{MarketSnapshotsColumns[1], MarketSnapshotsColumns[2], MarketSnapshotsColumns[5]},
			},
		},
	}
	// RevokedTokensColumns holds the columns for the "revoked_tokens" table.
	RevokedTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "token", Type: field.TypeString, Unique: true},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RevokedTokensTable holds the schema information for the "revoked_tokens" table.
	RevokedTokensTable = &schema.Table{
		Name:       "revoked_tokens",
		Columns:    RevokedTokensColumns,
		PrimaryKey: []*schema.Column{RevokedTokensColumns[0]},
	}
	// SoilReportsColumns holds the columns for the "soil_reports" table.
	SoilReportsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "soil_report", Type: field.TypeJSON},
		{Name: "solution", Type: field.TypeJSON},
		{Name: "language", Type: field.TypeString, Default: "en-IN"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SoilReportsTable holds the schema information for the "soil_reports" table.
	SoilReportsTable = &schema.Table{
		Name:       "soil_reports",
		Columns:    SoilReportsColumns,
		PrimaryKey: []*schema.Column{SoilReportsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "soilreport_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SoilReportsColumns[1], SoilReportsColumns[5]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "mobile", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "age", Type: field.TypeInt, Nullable: true},
		{Name: "farmer_type", Type: field.TypeEnum, Nullable: true, Enums: []string{"marginal", "small", "large"}},
		{Name: "location", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "language", Type: field.TypeString, Default: "en"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// WeatherSnapshotsColumns holds the columns for the "weather_snapshots" table.
	WeatherSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeUUID, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64},
		{Name: "lon", Type: field.TypeFloat64},
		{Name: "provider", Type: field.TypeString, Default: "openweather"},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
	}
	// WeatherSnapshotsTable holds the schema information for the "weather_snapshots" table.
	WeatherSnapshotsTable = &schema.Table{
		Name:       "weather_snapshots",
		Columns:    WeatherSnapshotsColumns,
		PrimaryKey: []*schema.Column{WeatherSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "weathersnapshot_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{WeatherSnapshotsColumns[1], WeatherSnapshotsColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DiseaseAnalysesTable,
		FertilizerPlansTable,
		MarketSnapshotsTable,
		RevokedTokensTable,
		SoilReportsTable,
		UsersTable,
		WeatherSnapshotsTable,
	}
)

func init() {
}
