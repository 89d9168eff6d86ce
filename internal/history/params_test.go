package history

import "testing"

func validParams() Params {
	return Params{
		APIKey:    "test-key",
		Location:  "Paris",
		StartDate: "2020-01-01",
		EndDate:   "2020-03-31",
		Frequency: 3,
	}
}

func TestParamsValid(t *testing.T) {
	if err := validParams().Validate(); err != nil {
		t.Fatalf("unexpected validation error: %v", err)
	}
}

func TestParamsValidationFailures(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Params)
	}{
		{"missing api key", func(p *Params) { p.APIKey = "" }},
		{"missing location", func(p *Params) { p.Location = "" }},
		{"missing start date", func(p *Params) { p.StartDate = "" }},
		{"malformed start date", func(p *Params) { p.StartDate = "01/01/2020" }},
		{"malformed end date", func(p *Params) { p.EndDate = "2020-13-40" }},
		{"end equals start", func(p *Params) { p.EndDate = p.StartDate }},
		{"end before start", func(p *Params) { p.StartDate = "2020-06-01"; p.EndDate = "2020-01-01" }},
		{"zero frequency", func(p *Params) { p.Frequency = 0 }},
		{"unsupported frequency", func(p *Params) { p.Frequency = 2 }},
		{"negative frequency", func(p *Params) { p.Frequency = -3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParams()
			tc.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatalf("expected validation error, got nil")
			}
		})
	}
}
