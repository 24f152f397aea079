package advisor

import (
	"context"
	"errors"
	"strings"
	"testing"

	"agroadvisor/internal/llm"
)

func newTestAdvisor(fake *llm.FakeClient) *Advisor {
	return New(NewGateway(fake, nil), NewNormalizer(&fakePDF{pages: []string{"pH 6.5"}}), nil)
}

func TestAnalyzeSoil_SplitsReportAndSolution(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{"soilReport":{"soilType":"loamy","isSoilReport":true},"solution":{"recommendedCrops":["rice","maize","cotton"]}}`},
	}}
	a := newTestAdvisor(fake)

	res, err := a.AnalyzeSoil(context.Background(), "application/pdf", []byte("%PDF"), Context{Language: "te"})
	if err != nil {
		t.Fatalf("AnalyzeSoil error: %v", err)
	}
	if res.SoilReport["soilType"] != "loamy" {
		t.Fatalf("soilType = %v", res.SoilReport["soilType"])
	}
	crops, ok := res.Solution["recommendedCrops"].([]any)
	if !ok || len(crops) != 3 {
		t.Fatalf("recommendedCrops = %#v", res.Solution["recommendedCrops"])
	}
	if res.Language != "te" {
		t.Fatalf("language = %q", res.Language)
	}
}

func TestAnalyzeSoil_MissingRequiredKeyIsHardFailure(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{"solution":{"recommendedCrops":[]}}`},
	}}
	a := newTestAdvisor(fake)

	_, err := a.AnalyzeSoil(context.Background(), "application/pdf", []byte("%PDF"), Context{})
	var unparseable *UnparseableError
	if !errors.As(err, &unparseable) {
		t.Fatalf("error = %v, want UnparseableError", err)
	}
	if unparseable.Raw == "" {
		t.Fatalf("raw text must be preserved for diagnostics")
	}
}

func TestDiagnoseDisease_ImageScenario(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: "```json\n{\"diagnosis\":{\"disease\":\"Leaf Blight\",\"confidence\":95}}\n```"},
	}}
	a := newTestAdvisor(fake)

	res, err := a.DiagnoseDisease(context.Background(), "image/png", []byte{0x89, 0x50}, Context{Language: "hi"})
	if err != nil {
		t.Fatalf("DiagnoseDisease error: %v", err)
	}
	if res.Diagnosis["disease"] != "Leaf Blight" {
		t.Fatalf("disease = %v", res.Diagnosis["disease"])
	}
	if res.Language != "hi" {
		t.Fatalf("language = %q", res.Language)
	}
	if len(fake.Calls) != 1 {
		t.Fatalf("expected one model call, got %d", len(fake.Calls))
	}
	if !strings.Contains(fake.Calls[0], "(hi)") {
		t.Fatalf("instruction must carry the language directive")
	}
}

func TestDiagnoseDisease_UnsupportedTypeMakesNoModelCall(t *testing.T) {
	fake := &llm.FakeClient{}
	a := newTestAdvisor(fake)

	_, err := a.DiagnoseDisease(context.Background(), "application/zip", []byte("PK"), Context{})
	var unsupported *UnsupportedInputError
	if !errors.As(err, &unsupported) {
		t.Fatalf("error = %v, want UnsupportedInputError", err)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("no outbound call may be made for a rejected upload")
	}
}

func TestWeatherAdvisory_PassesAdvisoryThrough(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{"advisory":{"advisoryText":"irrigate at dawn","irrigation":["light watering"]}}`},
	}}
	a := newTestAdvisor(fake)

	res, err := a.WeatherAdvisory(context.Background(), Context{Crop: "wheat", Weather: map[string]any{"temp": 31}})
	if err != nil {
		t.Fatalf("WeatherAdvisory error: %v", err)
	}
	if res.Advisory["advisoryText"] != "irrigate at dawn" {
		t.Fatalf("advisoryText = %v", res.Advisory["advisoryText"])
	}
	if !strings.Contains(fake.Calls[0], `"temp":31`) {
		t.Fatalf("weather JSON must be embedded in the instruction")
	}
}

func TestMarketRecommendation(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{"recommendation":{"crops":[{"name":"cotton"}],"timing":["sell after harvest peak"]}}`},
	}}
	a := newTestAdvisor(fake)

	res, err := a.MarketRecommendation(context.Background(), Context{
		Region:      "Telangana",
		PriceSeries: []any{map[string]any{"commodity": "cotton", "modal": 7100}},
	})
	if err != nil {
		t.Fatalf("MarketRecommendation error: %v", err)
	}
	if _, ok := res.Recommendation["crops"]; !ok {
		t.Fatalf("crops missing: %#v", res.Recommendation)
	}
}

func TestFertilizerPlan_RequiresCropAndStage(t *testing.T) {
	fake := &llm.FakeClient{}
	a := newTestAdvisor(fake)

	_, err := a.FertilizerPlan(context.Background(), Context{Crop: "rice"})
	var missing *MissingContextError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingContextError", err)
	}
	if len(missing.Fields) != 1 || missing.Fields[0] != "stage" {
		t.Fatalf("fields = %v", missing.Fields)
	}
	if len(fake.Calls) != 0 {
		t.Fatalf("no model call may be spent on an incomplete request")
	}
}

func TestFertilizerPlan_Succeeds(t *testing.T) {
	fake := &llm.FakeClient{Replies: []llm.FakeReply{
		{Text: `{"plan":{"summary":"split nitrogen into three doses"}}`},
	}}
	a := newTestAdvisor(fake)

	res, err := a.FertilizerPlan(context.Background(), Context{Crop: "rice", Stage: "tillering"})
	if err != nil {
		t.Fatalf("FertilizerPlan error: %v", err)
	}
	if res.Plan["summary"] == "" {
		t.Fatalf("plan missing summary")
	}
}
