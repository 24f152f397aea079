// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DiseaseAnalysis is the predicate function for diseaseanalysis builders.
type DiseaseAnalysis func(*sql.Selector)

// FertilizerPlan is the predicate function for fertilizerplan builders.
type FertilizerPlan func(*sql.Selector)

// MarketSnapshot is the predicate function for marketsnapshot builders.
type MarketSnapshot func(*sql.Selector)

// RevokedToken is the predicate function for revokedtoken builders.
type RevokedToken func(*sql.Selector)

// SoilReport is the predicate function for soilreport builders.
type SoilReport func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WeatherSnapshot is the predicate function for weathersnapshot builders.
type WeatherSnapshot func(*sql.Selector)
