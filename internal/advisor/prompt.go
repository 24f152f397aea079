package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Domain selects one of the advisory categories, each with its own output
// schema and contextual inputs.
type Domain string

const (
	DomainSoil       Domain = "soil"
	DomainDisease    Domain = "disease"
	DomainWeather    Domain = "weather"
	DomainMarket     Domain = "market"
	DomainFertilizer Domain = "fertilizer"
)

// DefaultLanguage is the fallback locale when a request carries no language
// preference.
const DefaultLanguage = "en-IN"

// maxEmbedChars bounds oversized context payloads (weather JSON, price
// series) before they are embedded in an instruction. The cut is a silent,
// deterministic prefix; never an error.
const maxEmbedChars = 15000

// Context carries the caller-provided and profile-derived parameters for a
// single advisory request.
type Context struct {
	Language    string
	FarmerType  string
	Location    string
	Crop        string
	Stage       string
	Region      string
	Weather     any
	PriceSeries any
}

// ResolvedLanguage returns the request language, falling back to
// DefaultLanguage. Never empty.
func (c Context) ResolvedLanguage() string {
	if lang := strings.TrimSpace(c.Language); lang != "" {
		return lang
	}
	return DefaultLanguage
}

type promptSpec struct {
	role   string
	schema string
	rules  []string
}

var promptSpecs = map[Domain]promptSpec{
	DomainSoil: {
		role: "You are an expert soil scientist. Analyze the given soil report (plain text or base64-encoded image) and recommend crops.",
		schema: `{
  "soilReport": {
    "summary": "farmer-friendly summary of soil health",
    "soilType": "sandy/clayey/loamy/compost",
    "pH": "numeric value plus interpretation",
    "nutrients": { "N": "...", "P": "...", "K": "...", "micronutrients": ["..."] },
    "heavyMetals": { "Cu": { "value": "...", "status": "within limit or exceeds limit" } },
    "organicMatter": "percentage or low/medium/high",
    "moisture": "poor/moderate/good",
    "issues": ["salinity, erosion, compaction, ..."],
    "isSoilReport": true
  },
  "solution": {
    "recommendedCrops": ["top 3 crops for this soil, location and farmer type"],
    "improvementTips": ["fertilizer, manure, irrigation and amendment suggestions"]
  }
}`,
		rules: []string{
			"Set isSoilReport to false when the input is not soil-related.",
			"Fill every field the input supports; do not leave known data empty or unknown.",
		},
	},
	DomainDisease: {
		role: "You are an expert crop doctor. Analyze the given input (plain text or base64-encoded image of a diseased crop).",
		schema: `{
  "diagnosis": {
    "disease": "disease name",
    "confidence": 95,
    "severity": "Mild/Moderate/Severe",
    "cropType": "crop name",
    "symptoms": ["observed symptoms"],
    "treatment": { "immediate": ["..."], "preventive": ["..."] },
    "products": [{ "name": "...", "dosage": "..." }],
    "nutrientRecommendations": ["nutrients to boost recovery"],
    "pesticideRecommendations": ["pesticides or IPM measures"],
    "expectedRecovery": "recovery timeline",
    "isDiseaseImage": true
  }
}`,
		rules: []string{
			"Report confidence as a bare number (percentage).",
		},
	},
	DomainWeather: {
		role: "You are an agronomy advisor. Using the given weather forecast, provide actionable guidance for the next 3-5 days.",
		schema: `{
  "advisory": {
    "advisoryText": "overall guidance for the period",
    "irrigation": ["irrigation actions"],
    "pestDiseaseRisk": ["pest and disease risks to watch"],
    "fieldOperations": ["recommended field operations"]
  }
}`,
	},
	DomainMarket: {
		role: "You are an agricultural market analyst. Using the given regional commodity price series, recommend profitable crops and marketing timing.",
		schema: `{
  "recommendation": {
    "crops": [{ "name": "...", "rationale": "..." }],
    "timing": ["marketing timing advice"],
    "riskTips": ["risk management tips"]
  }
}`,
		rules: []string{
			"Recommend 2-3 crops at most.",
		},
	},
	DomainFertilizer: {
		role: "You are a fertilizer planning expert. Produce an application plan for the given crop and growth stage.",
		schema: `{
  "plan": {
    "summary": "plan overview",
    "applications": [{ "stage": "...", "product": "...", "dosage": "...", "timing": "..." }],
    "cautions": ["handling and dosage cautions"]
  }
}`,
	},
}

// BuildPrompt renders the single instruction string for a domain. Pure and
// deterministic: the same inputs always yield the same text. The resolved
// language is always embedded, the JSON-only contract is always stated, and
// the input payload comes last.
func BuildPrompt(domain Domain, in NormalizedInput, ctx Context) string {
	spec := promptSpecs[domain]
	lang := ctx.ResolvedLanguage()

	var buf bytes.Buffer
	writeSection(&buf, "ROLE", spec.role)
	writeSection(&buf, "CONTEXT", formatContext(domain, ctx))
	writeSection(&buf, "OUTPUT", "Example response shape:\n"+spec.schema)
	rules := append([]string{
		"Respond with JSON only. No surrounding prose, no code fences, no markdown.",
		fmt.Sprintf("Every human-readable field must be written in the user's language (%s), not in English.", lang),
	}, spec.rules...)
	writeSection(&buf, "RULES", formatList(rules))
	writeSection(&buf, "INPUT", formatInput(domain, in, ctx))
	return strings.TrimSpace(buf.String()) + "\n"
}

func writeSection(buf *bytes.Buffer, label, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}
	fmt.Fprintf(buf, "[%s]\n%s\n\n", label, body)
}

func formatList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatContext(domain Domain, ctx Context) string {
	var lines []string
	add := func(label, value string) {
		if v := strings.TrimSpace(value); v != "" {
			lines = append(lines, label+": "+v)
		}
	}
	lines = append(lines, "Language: "+ctx.ResolvedLanguage())
	switch domain {
	case DomainSoil:
		add("Location", ctx.Location)
		add("Farmer type", ctx.FarmerType)
	case DomainWeather:
		add("Crop", ctx.Crop)
	case DomainMarket:
		add("Region", ctx.Region)
	case DomainFertilizer:
		add("Crop", ctx.Crop)
		add("Growth stage", ctx.Stage)
	}
	return strings.Join(lines, "\n")
}

func formatInput(domain Domain, in NormalizedInput, ctx Context) string {
	switch domain {
	case DomainWeather:
		return "Weather forecast JSON:\n" + truncate(marshalCompact(ctx.Weather), maxEmbedChars)
	case DomainMarket:
		series := ctx.PriceSeries
		if series == nil {
			series = []any{}
		}
		return "Price series JSON:\n" + truncate(marshalCompact(series), maxEmbedChars)
	case DomainFertilizer:
		return "Crop: " + ctx.Crop + "\nGrowth stage: " + ctx.Stage
	}
	if in.Kind == InputImage {
		return "Base64-encoded image:\n" + in.Payload
	}
	return in.Payload
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func marshalCompact(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}
