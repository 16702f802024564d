// Package navsim loads fusion scenarios from disk and drives a
// navekf.Core through them, synthesising sensor noise with the noise
// package. It backs both the cmd/navsim CLI and the
// property-based tests in this package.
package navsim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/skyfusion/navekf"
	"github.com/skyfusion/navekf/nav"
)

// Scenario describes one fusion run: an initial state/covariance, the
// sensor noise to perturb samples with, and a sequence of measurement
// ticks to apply in order.
type Scenario struct {
	Name           string      `yaml:"name"`
	Params         ParamsPatch `yaml:"params"`
	Noise          NoiseSpec   `yaml:"noise"`
	InitialPosDown float64     `yaml:"initial_pos_down"`
	Ticks          []Tick      `yaml:"ticks"`
}

// ParamsPatch overrides a subset of nav.DefaultParams(); zero-valued
// fields are left at their default (a scenario file only needs to name
// what it wants to change).
type ParamsPatch struct {
	GPSVelNoise       *float64 `yaml:"gps_vel_noise"`
	VelInnovGate      *float64 `yaml:"vel_innov_gate"`
	BaroNoise         *float64 `yaml:"baro_noise"`
	BaroInnovGate     *float64 `yaml:"baro_innov_gate"`
	GPSPosNoise       *float64 `yaml:"gps_pos_noise"`
	PosNoAidNoise     *float64 `yaml:"pos_no_aid_noise"`
	RangeNoise        *float64 `yaml:"range_noise"`
	RangeNoiseScaler  *float64 `yaml:"range_noise_scaler"`
	RngGndClearance   *float64 `yaml:"rng_gnd_clearance"`
	RangeCosMaxTilt   *float64 `yaml:"range_cos_max_tilt"`
	RangeInnovGate    *float64 `yaml:"range_innov_gate"`
	EVInnovGate       *float64 `yaml:"ev_innov_gate"`
	GndEffectDeadzone *float64 `yaml:"gnd_effect_deadzone"`
	MaxVariance       *float64 `yaml:"max_variance"`
}

// Apply overlays p's set fields onto base and returns the result.
func (p ParamsPatch) Apply(base nav.Params) nav.Params {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&base.GPSVelNoise, p.GPSVelNoise)
	set(&base.VelInnovGate, p.VelInnovGate)
	set(&base.BaroNoise, p.BaroNoise)
	set(&base.BaroInnovGate, p.BaroInnovGate)
	set(&base.GPSPosNoise, p.GPSPosNoise)
	set(&base.PosNoAidNoise, p.PosNoAidNoise)
	set(&base.RangeNoise, p.RangeNoise)
	set(&base.RangeNoiseScaler, p.RangeNoiseScaler)
	set(&base.RngGndClearance, p.RngGndClearance)
	set(&base.RangeCosMaxTilt, p.RangeCosMaxTilt)
	set(&base.RangeInnovGate, p.RangeInnovGate)
	set(&base.EVInnovGate, p.EVInnovGate)
	set(&base.GndEffectDeadzone, p.GndEffectDeadzone)
	set(&base.MaxVariance, p.MaxVariance)
	return base
}

// Tick is one simulated measurement sample plus the control flags that
// select which of its fields are actually fused.
type Tick struct {
	FuseHorVel    bool   `yaml:"fuse_hor_vel"`
	FuseHorVelAux bool   `yaml:"fuse_hor_vel_aux"`
	FuseVertVel   bool   `yaml:"fuse_vert_vel"`
	FusePos       bool   `yaml:"fuse_pos"`
	FuseHeight    bool   `yaml:"fuse_height"`
	TiltAlign     bool   `yaml:"tilt_align"`
	GndEffect     bool   `yaml:"gnd_effect"`
	HeightSource  string `yaml:"height_source"`

	VelNInnov float64 `yaml:"vel_n_innov"`
	VelEInnov float64 `yaml:"vel_e_innov"`
	PosNInnov float64 `yaml:"pos_n_innov"`
	PosEInnov float64 `yaml:"pos_e_innov"`

	VelObsVarN float64 `yaml:"vel_obs_var_n"`
	VelObsVarE float64 `yaml:"vel_obs_var_e"`
	AuxVelN    float64 `yaml:"aux_vel_n"`
	AuxVelE    float64 `yaml:"aux_vel_e"`

	PosObsNoiseNE  float64 `yaml:"pos_obs_noise_ne"`
	PosInnovGateNE float64 `yaml:"pos_innov_gate_ne"`

	BaroHgt   float64 `yaml:"baro_hgt"`
	GPSHgt    float64 `yaml:"gps_hgt"`
	GPSSAcc   float64 `yaml:"gps_sacc"`
	GPSVAcc   float64 `yaml:"gps_vacc"`
	RangeHgt  float64 `yaml:"range_hgt"`
	EVPosDown float64 `yaml:"ev_pos_down"`
	EVPosErr  float64 `yaml:"ev_pos_err"`

	BaroHgtOffset   float64 `yaml:"baro_hgt_offset"`
	GPSAltRef       float64 `yaml:"gps_alt_ref"`
	HgtSensorOffset float64 `yaml:"hgt_sensor_offset"`

	RngToEarth22 float64 `yaml:"rng_to_earth_22"`
}

// Load reads and parses a scenario file from path.
func Load(path string) (*Scenario, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	s := &Scenario{}
	if err := yaml.Unmarshal(content, s); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(s.Ticks) == 0 {
		return nil, fmt.Errorf("scenario %q has no ticks", path)
	}
	return s, nil
}

// ToControlFlags converts a Tick's request booleans into nav.ControlFlags,
// defaulting the per-sensor height source.
func (t Tick) ToControlFlags() nav.ControlFlags {
	flags := nav.ControlFlags{
		FuseHorVel:    t.FuseHorVel,
		FuseHorVelAux: t.FuseHorVelAux,
		FuseVertVel:   t.FuseVertVel,
		FusePos:       t.FusePos,
		FuseHeight:    t.FuseHeight,
		TiltAlign:     t.TiltAlign,
		GndEffect:     t.GndEffect,
	}
	switch t.HeightSource {
	case "gps":
		flags.Height.GPS = true
	case "range":
		flags.Height.Range = true
	case "ev":
		flags.Height.EV = true
	default:
		flags.Height.Baro = true
	}
	return flags
}

// ToSamples fills a nav.Samples from a Tick's raw sensor and pre-computed
// innovation fields, perturbing baro, GPS height, range and EV position
// with a draw from n. VelPosInnov slots 0, 1, 3 and 4 come straight from
// the tick; slot 2 (vertical velocity) has no tick field and is left zero,
// and slot 5 (height) is left zero, since assemble.Height computes it itself.
func (t Tick) ToSamples(n navekf.Noise) nav.Samples {
	var s nav.Samples
	s.Baro.Hgt, s.GPS.Hgt, s.Range.Rng, s.EV.PosDown = perturb(n, t.BaroHgt, t.GPSHgt, t.RangeHgt, t.EVPosDown)
	s.GPS.SAcc = t.GPSSAcc
	s.GPS.VAcc = t.GPSVAcc
	s.EV.PosErr = t.EVPosErr

	s.AuxVel.North = t.AuxVelN
	s.AuxVel.East = t.AuxVelE
	s.VelObsVarNE.North = t.VelObsVarN
	s.VelObsVarNE.East = t.VelObsVarE
	s.PosObsNoiseNE = t.PosObsNoiseNE
	s.PosInnovGateNE = t.PosInnovGateNE

	s.VelPosInnov[nav.SlotVelN] = t.VelNInnov
	s.VelPosInnov[nav.SlotVelE] = t.VelEInnov
	s.VelPosInnov[nav.SlotPosN] = t.PosNInnov
	s.VelPosInnov[nav.SlotPosE] = t.PosEInnov

	s.Offsets.BaroHgtOffset = t.BaroHgtOffset
	s.Offsets.GPSAltRef = t.GPSAltRef
	s.Offsets.HgtSensorOffset = t.HgtSensorOffset

	rngToEarth22 := t.RngToEarth22
	if rngToEarth22 == 0 {
		rngToEarth22 = 1.0
	}
	s.RngToEarth22 = rngToEarth22

	return s
}
