package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agroadvisor/internal/advisor"
	"agroadvisor/internal/ent"
	entdisease "agroadvisor/internal/ent/diseaseanalysis"
	entsoil "agroadvisor/internal/ent/soilreport"
	"agroadvisor/internal/entity"
)

// ReportRepository stores advisory pipeline results keyed by user, listed
// most-recent-first.
type ReportRepository interface {
	CreateSoilReport(ctx context.Context, userID uuid.UUID, res *advisor.SoilResult) (*entity.SoilReport, error)
	ListSoilReports(ctx context.Context, userID uuid.UUID) ([]*entity.SoilReport, error)

	CreateDiseaseAnalysis(ctx context.Context, userID uuid.UUID, fileType string, res *advisor.DiseaseResult) (*entity.DiseaseAnalysis, error)
	ListDiseaseAnalyses(ctx context.Context, userID uuid.UUID) ([]*entity.DiseaseAnalysis, error)

	CreateFertilizerPlan(ctx context.Context, userID uuid.UUID, crop, stage string, res *advisor.FertilizerResult) (*entity.FertilizerPlan, error)
}

type reportRepository struct {
	client *ent.Client
	log    *zap.Logger
}

func NewReportRepository(client *ent.Client, logger *zap.Logger) ReportRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &reportRepository{client: client, log: logger}
}

func (r *reportRepository) CreateSoilReport(ctx context.Context, userID uuid.UUID, res *advisor.SoilResult) (*entity.SoilReport, error) {
	rec, err := r.client.SoilReport.Create().
		SetUserID(userID).
		SetSoilReport(res.SoilReport).
		SetSolution(res.Solution).
		SetLanguage(res.Language).
		Save(ctx)
	if err != nil {
		r.log.Error("create soil report failed", zap.Error(err))
		return nil, err
	}
	return toSoilReport(rec), nil
}

func (r *reportRepository) ListSoilReports(ctx context.Context, userID uuid.UUID) ([]*entity.SoilReport, error) {
	recs, err := r.client.SoilReport.Query().
		Where(entsoil.UserID(userID)).
		Order(ent.Desc(entsoil.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.SoilReport, len(recs))
	for i, rec := range recs {
		out[i] = toSoilReport(rec)
	}
	return out, nil
}

func (r *reportRepository) CreateDiseaseAnalysis(ctx context.Context, userID uuid.UUID, fileType string, res *advisor.DiseaseResult) (*entity.DiseaseAnalysis, error) {
	rec, err := r.client.DiseaseAnalysis.Create().
		SetUserID(userID).
		SetFileType(fileType).
		SetDiagnosis(res.Diagnosis).
		SetLanguage(res.Language).
		Save(ctx)
	if err != nil {
		r.log.Error("create disease analysis failed", zap.Error(err))
		return nil, err
	}
	return toDiseaseAnalysis(rec), nil
}

func (r *reportRepository) ListDiseaseAnalyses(ctx context.Context, userID uuid.UUID) ([]*entity.DiseaseAnalysis, error) {
	recs, err := r.client.DiseaseAnalysis.Query().
		Where(entdisease.UserID(userID)).
		Order(ent.Desc(entdisease.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.DiseaseAnalysis, len(recs))
	for i, rec := range recs {
		out[i] = toDiseaseAnalysis(rec)
	}
	return out, nil
}

func (r *reportRepository) CreateFertilizerPlan(ctx context.Context, userID uuid.UUID, crop, stage string, res *advisor.FertilizerResult) (*entity.FertilizerPlan, error) {
	rec, err := r.client.FertilizerPlan.Create().
		SetUserID(userID).
		SetCrop(crop).
		SetStage(stage).
		SetPlan(res.Plan).
		SetLanguage(res.Language).
		Save(ctx)
	if err != nil {
		r.log.Error("create fertilizer plan failed", zap.Error(err))
		return nil, err
	}
	return &entity.FertilizerPlan{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Crop:      rec.Crop,
		Stage:     rec.Stage,
		Plan:      rec.Plan,
		Language:  rec.Language,
		CreatedAt: rec.CreatedAt,
	}, nil
}

func toSoilReport(rec *ent.SoilReport) *entity.SoilReport {
	return &entity.SoilReport{
		ID:         rec.ID,
		UserID:     rec.UserID,
		SoilReport: rec.SoilReport,
		Solution:   rec.Solution,
		Language:   rec.Language,
		CreatedAt:  rec.CreatedAt,
	}
}

func toDiseaseAnalysis(rec *ent.DiseaseAnalysis) *entity.DiseaseAnalysis {
	return &entity.DiseaseAnalysis{
		ID:        rec.ID,
		UserID:    rec.UserID,
		FileType:  rec.FileType,
		Diagnosis: rec.Diagnosis,
		Language:  rec.Language,
		CreatedAt: rec.CreatedAt,
	}
}
