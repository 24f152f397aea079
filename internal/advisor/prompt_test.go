package advisor

import (
	"strings"
	"testing"
)

func TestBuildPrompt_AlwaysEmbedsResolvedLanguage(t *testing.T) {
	for _, domain := range []Domain{DomainSoil, DomainDisease, DomainWeather, DomainMarket, DomainFertilizer} {
		p := BuildPrompt(domain, NormalizedInput{Kind: InputText, Payload: "x"}, Context{Language: "hi"})
		if !strings.Contains(p, "(hi)") {
			t.Fatalf("%s: language directive missing:\n%s", domain, p)
		}

		p = BuildPrompt(domain, NormalizedInput{Kind: InputText, Payload: "x"}, Context{})
		if !strings.Contains(p, DefaultLanguage) {
			t.Fatalf("%s: default language missing", domain)
		}
		if strings.Contains(p, "undefined") || strings.Contains(p, `()`) {
			t.Fatalf("%s: empty or undefined language directive:\n%s", domain, p)
		}
	}
}

func TestBuildPrompt_StatesJSONOnlyContract(t *testing.T) {
	p := BuildPrompt(DomainDisease, NormalizedInput{Kind: InputImage, Payload: "aGVsbG8="}, Context{Language: "hi"})
	if !strings.Contains(p, "JSON only") {
		t.Fatalf("JSON-only directive missing:\n%s", p)
	}
	if !strings.Contains(p, "aGVsbG8=") {
		t.Fatalf("base64 payload not embedded")
	}
}

func TestBuildPrompt_TruncatesOversizedWeatherPayload(t *testing.T) {
	big := strings.Repeat("x", 20000)
	ctx := Context{Weather: big}
	p := BuildPrompt(DomainWeather, NormalizedInput{Kind: InputText}, ctx)

	full := marshalCompact(big)
	embedded := full[:maxEmbedChars]
	if !strings.Contains(p, embedded) {
		t.Fatalf("truncated prefix not embedded")
	}
	if strings.Contains(p, full) {
		t.Fatalf("full oversized payload must not be embedded")
	}
}

func TestBuildPrompt_TruncationIsExactPrefix(t *testing.T) {
	series := make([]any, 0, 4000)
	for i := 0; i < 4000; i++ {
		series = append(series, map[string]any{"commodity": "wheat", "modal": i})
	}
	full := marshalCompact(series)
	if len(full) <= maxEmbedChars {
		t.Fatalf("fixture too small: %d", len(full))
	}

	got := truncate(full, maxEmbedChars)
	if len(got) != maxEmbedChars {
		t.Fatalf("truncate length = %d, want %d", len(got), maxEmbedChars)
	}
	if !strings.HasPrefix(full, got) {
		t.Fatalf("truncation must be a prefix cut")
	}
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	in := NormalizedInput{Kind: InputText, Payload: "pH 6.5, loamy"}
	ctx := Context{Language: "te", Location: "Guntur", FarmerType: "small"}
	if BuildPrompt(DomainSoil, in, ctx) != BuildPrompt(DomainSoil, in, ctx) {
		t.Fatalf("same inputs must yield the same instruction")
	}
}

func TestBuildPrompt_PayloadComesLast(t *testing.T) {
	in := NormalizedInput{Kind: InputText, Payload: "SOIL-PAYLOAD-MARKER"}
	p := BuildPrompt(DomainSoil, in, Context{Language: "hi"})
	idx := strings.Index(p, "SOIL-PAYLOAD-MARKER")
	if idx < 0 {
		t.Fatalf("payload missing")
	}
	if rest := strings.TrimSpace(p[idx+len("SOIL-PAYLOAD-MARKER"):]); rest != "" {
		t.Fatalf("payload must be the final content, got trailing %q", rest)
	}
}
