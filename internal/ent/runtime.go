// Code generated by ent, DO NOT EDIT.

package ent

import (
	"agroadvisor/internal/ent/diseaseanalysis"
	"agroadvisor/internal/ent/fertilizerplan"
	"agroadvisor/internal/ent/marketsnapshot"
	"agroadvisor/internal/ent/revokedtoken"
	"agroadvisor/internal/ent/schema"
	"agroadvisor/internal/ent/soilreport"
	"agroadvisor/internal/ent/user"
	"agroadvisor/internal/ent/weathersnapshot"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	diseaseanalysisFields := schema.DiseaseAnalysis{}.Fields()
	_ = diseaseanalysisFields
	// diseaseanalysisDescFileType is the schema descriptor for file_type field.
	diseaseanalysisDescFileType := diseaseanalysisFields[2].Descriptor()
	// diseaseanalysis.DefaultFileType holds the default value on creation for the file_type field.
	diseaseanalysis.DefaultFileType = diseaseanalysisDescFileType.Default.(string)
	// diseaseanalysisDescLanguage is the schema descriptor for language field.
	diseaseanalysisDescLanguage := diseaseanalysisFields[4].Descriptor()
	// diseaseanalysis.DefaultLanguage holds the default value on creation for the language field.
	diseaseanalysis.DefaultLanguage = diseaseanalysisDescLanguage.Default.(string)
	// diseaseanalysisDescCreatedAt is the schema descriptor for created_at field.
	diseaseanalysisDescCreatedAt := diseaseanalysisFields[5].Descriptor()
	// diseaseanalysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	diseaseanalysis.DefaultCreatedAt = diseaseanalysisDescCreatedAt.Default.(func() time.Time)
	// diseaseanalysisDescID is the schema descriptor for id field.
	diseaseanalysisDescID := diseaseanalysisFields[0].Descriptor()
	// diseaseanalysis.DefaultID holds the default value on creation for the id field.
	diseaseanalysis.DefaultID = diseaseanalysisDescID.Default.(func() uuid.UUID)
	fertilizerplanFields := schema.FertilizerPlan{}.Fields()
	_ = fertilizerplanFields
	// fertilizerplanDescCrop is the schema descriptor for crop field.
	fertilizerplanDescCrop := fertilizerplanFields[2].Descriptor()
	// fertilizerplan.CropValidator is a validator for the "crop" field. It is called by the builders before save.
	fertilizerplan.CropValidator = fertilizerplanDescCrop.Validators[0].(func(string) error)
	// fertilizerplanDescStage is the schema descriptor for stage field.
	fertilizerplanDescStage := fertilizerplanFields[3].Descriptor()
	// fertilizerplan.StageValidator is a validator for the "stage" field. It is called by the builders before save.
	fertilizerplan.StageValidator = fertilizerplanDescStage.Validators[0].(func(string) error)
	// fertilizerplanDescLanguage is the schema descriptor for language field.
	fertilizerplanDescLanguage := fertilizerplanFields[5].Descriptor()
	// fertilizerplan.DefaultLanguage holds the default value on creation for the language field.
	fertilizerplan.DefaultLanguage = fertilizerplanDescLanguage.Default.(string)
	// fertilizerplanDescCreatedAt is the schema descriptor for created_at field.
	fertilizerplanDescCreatedAt := fertilizerplanFields[6].Descriptor()
	// fertilizerplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	fertilizerplan.DefaultCreatedAt = fertilizerplanDescCreatedAt.Default.(func() time.Time)
	// fertilizerplanDescID is the schema descriptor for id field.
	fertilizerplanDescID := fertilizerplanFields[0].Descriptor()
	// fertilizerplan.DefaultID holds the default value on creation for the id field.
	fertilizerplan.DefaultID = fertilizerplanDescID.Default.(func() uuid.UUID)
	marketsnapshotFields := schema.MarketSnapshot{}.Fields()
	_ = marketsnapshotFields
	// marketsnapshotDescRegion is the schema descriptor for region field.
	marketsnapshotDescRegion := marketsnapshotFields[2].Descriptor()
	// marketsnapshot.RegionValidator is a validator for the "region" field. It is called by the builders before save.
	marketsnapshot.RegionValidator = marketsnapshotDescRegion.Validators[0].(func(string) error)
	// marketsnapshotDescSource is the schema descriptor for source field.
	marketsnapshotDescSource := marketsnapshotFields[4].Descriptor()
	// marketsnapshot.DefaultSource holds the default value on creation for the source field.
	marketsnapshot.DefaultSource = marketsnapshotDescSource.Default.(string)
	// marketsnapshotDescCreatedAt is the schema descriptor for created_at field.
	marketsnapshotDescCreatedAt := marketsnapshotFields[5].Descriptor()
	// marketsnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	marketsnapshot.DefaultCreatedAt = marketsnapshotDescCreatedAt.Default.(func() time.Time)
	// marketsnapshotDescID is the schema descriptor for id field.
	marketsnapshotDescID := marketsnapshotFields[0].Descriptor()
	// marketsnapshot.DefaultID holds the default value on creation for the id field.
	marketsnapshot.DefaultID = marketsnapshotDescID.Default.(func() uuid.UUID)
	revokedtokenFields := schema.RevokedToken{}.Fields()
	_ = revokedtokenFields
	// revokedtokenDescToken is the schema descriptor for token field.
	revokedtokenDescToken := revokedtokenFields[0].Descriptor()
	// revokedtoken.TokenValidator is a validator for the "token" field. It is called by the builders before save.
	revokedtoken.TokenValidator = revokedtokenDescToken.Validators[0].(func(string) error)
	// revokedtokenDescCreatedAt is the schema descriptor for created_at field.
	revokedtokenDescCreatedAt := revokedtokenFields[2].Descriptor()
	// revokedtoken.DefaultCreatedAt holds the default value on creation for the created_at field.
	revokedtoken.DefaultCreatedAt = revokedtokenDescCreatedAt.Default.(func() time.Time)
	soilreportFields := schema.SoilReport{}.Fields()
	_ = soilreportFields
	// soilreportDescLanguage is the schema descriptor for language field.
	soilreportDescLanguage := soilreportFields[4].Descriptor()
	// soilreport.DefaultLanguage holds the default value on creation for the language field.
	soilreport.DefaultLanguage = soilreportDescLanguage.Default.(string)
	// soilreportDescCreatedAt is the schema descriptor for created_at field.
	soilreportDescCreatedAt := soilreportFields[5].Descriptor()
	// soilreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	soilreport.DefaultCreatedAt = soilreportDescCreatedAt.Default.(func() time.Time)
	// soilreportDescID is the schema descriptor for id field.
	soilreportDescID := soilreportFields[0].Descriptor()
	// soilreport.DefaultID holds the default value on creation for the id field.
	soilreport.DefaultID = soilreportDescID.Default.(func() uuid.UUID)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescName is the schema descriptor for name field.
	userDescName := userFields[1].Descriptor()
	// user.NameValidator is a validator for the "name" field. It is called by the builders before save.
	user.NameValidator = userDescName.Validators[0].(func(string) error)
	// userDescMobile is the schema descriptor for mobile field.
	userDescMobile := userFields[2].Descriptor()
	// user.MobileValidator is a validator for the "mobile" field. It is called by the builders before save.
	user.MobileValidator = userDescMobile.Validators[0].(func(string) error)
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[3].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = userDescPasswordHash.Validators[0].(func(string) error)
	// userDescAge is the schema descriptor for age field.
	userDescAge := userFields[4].Descriptor()
	// user.AgeValidator is a validator for the "age" field. It is called by the builders before save.
	user.AgeValidator = func() func(int) error {
		validators := userDescAge.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(age int) error {
			for _, fn := range fns {
				if err := fn(age); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescLocation is the schema descriptor for location field.
	userDescLocation := userFields[6].Descriptor()
	// user.LocationValidator is a validator for the "location" field. It is called by the builders before save.
	user.LocationValidator = userDescLocation.Validators[0].(func(string) error)
	// userDescLanguage is the schema descriptor for language field.
	userDescLanguage := userFields[7].Descriptor()
	// user.DefaultLanguage holds the default value on creation for the language field.
	user.DefaultLanguage = userDescLanguage.Default.(string)
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[8].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[9].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescID is the schema descriptor for id field.
	userDescID := userFields[0].Descriptor()
	// user.DefaultID holds the default value on creation for the id field.
	user.DefaultID = userDescID.Default.(func() uuid.UUID)
	weathersnapshotFields := schema.WeatherSnapshot{}.Fields()
	_ = weathersnapshotFields
	// weathersnapshotDescProvider is the schema descriptor for provider field.
	weathersnapshotDescProvider := weathersnapshotFields[4].Descriptor()
	// weathersnapshot.DefaultProvider holds the default value on creation for the provider field.
	weathersnapshot.DefaultProvider = weathersnapshotDescProvider.Default.(string)
	// weathersnapshotDescCreatedAt is the schema descriptor for created_at field.
	weathersnapshotDescCreatedAt := weathersnapshotFields[6].Descriptor()
	// weathersnapshot.DefaultCreatedAt holds the default value on creation for the created_at field.
	weathersnapshot.DefaultCreatedAt = weathersnapshotDescCreatedAt.Default.(func() time.Time)
	// weathersnapshotDescID is the schema descriptor for id field.
	weathersnapshotDescID := weathersnapshotFields[0].Descriptor()
	// weathersnapshot.DefaultID holds the default value on creation for the id field.
	weathersnapshot.DefaultID = weathersnapshotDescID.Default.(func() uuid.UUID)
}
