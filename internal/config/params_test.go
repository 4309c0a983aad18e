package config

import "testing"

func TestSettersClamp(t *testing.T) {
	tests := []struct {
		name string
		set  func(p *Params, v float64)
		get  func(p *Params) float64
		in   float64
		want float64
	}{
		{"line width below min", (*Params).SetLineWidth, func(p *Params) float64 { return p.LineWidth }, 0, MinLineWidth},
		{"line width above max", (*Params).SetLineWidth, func(p *Params) float64 { return p.LineWidth }, 100, MaxLineWidth},
		{"line width in range", (*Params).SetLineWidth, func(p *Params) float64 { return p.LineWidth }, 7.5, 7.5},
		{"line height below min", (*Params).SetLineHeight, func(p *Params) float64 { return p.LineHeight }, -10, MinLineHeight},
		{"line height above max", (*Params).SetLineHeight, func(p *Params) float64 { return p.LineHeight }, 1e6, MaxLineHeight},
		{"noise speed below min", (*Params).SetNoiseSpeed, func(p *Params) float64 { return p.NoiseSpeed }, 0, MinNoiseSpeed},
		{"noise speed above max", (*Params).SetNoiseSpeed, func(p *Params) float64 { return p.NoiseSpeed }, 1, MaxNoiseSpeed},
		{"noise inc x below min", (*Params).SetNoiseIncrementX, func(p *Params) float64 { return p.NoiseIncrementX }, 0, MinNoiseInc},
		{"noise inc y above max", (*Params).SetNoiseIncrementY, func(p *Params) float64 { return p.NoiseIncrementY }, 2, MaxNoiseInc},
		{"noise inc y in range", (*Params).SetNoiseIncrementY, func(p *Params) float64 { return p.NoiseIncrementY }, 0.05, 0.05},
	}

	for _, tt := range tests {
		p := DefaultParams()
		tt.set(p, tt.in)
		if got := tt.get(p); got != tt.want {
			t.Errorf("%s: set(%v) = %v, want %v", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestDefaultsInRange(t *testing.T) {
	p := DefaultParams()
	checks := []struct {
		name     string
		v        float64
		min, max float64
	}{
		{"LineWidth", p.LineWidth, MinLineWidth, MaxLineWidth},
		{"LineHeight", p.LineHeight, MinLineHeight, MaxLineHeight},
		{"NoiseSpeed", p.NoiseSpeed, MinNoiseSpeed, MaxNoiseSpeed},
		{"NoiseIncrementX", p.NoiseIncrementX, MinNoiseInc, MaxNoiseInc},
		{"NoiseIncrementY", p.NoiseIncrementY, MinNoiseInc, MaxNoiseInc},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			t.Errorf("default %s = %v outside [%v, %v]", c.name, c.v, c.min, c.max)
		}
	}
}
