package navsim

import (
	"fmt"
	"time"

	"github.com/skyfusion/navekf"
	"github.com/skyfusion/navekf/diag"
	"github.com/skyfusion/navekf/health"
	"github.com/skyfusion/navekf/nav"
)

// Run drives core through every tick of s in order, starting from a
// zero state except for pos_down (s.InitialPosDown) and a covariance with
// unit variance on the six velocity/position states and zero elsewhere,
// and records every tick's diagnostic report into rec (if non-nil). It
// returns the final Estimate.
func Run(s *Scenario, rec *diag.Recorder) (navekf.Estimate, error) {
	x := nav.ZeroState()
	x.Set(nav.PosD, s.InitialPosDown)

	cov := nav.ZeroCovariance()
	for i := nav.VelN; i <= nav.PosD; i++ {
		cov.Mat().SetSym(i, i, 1.0)
	}

	params := s.Params.Apply(nav.DefaultParams())
	ledger := &health.Ledger{}

	core, err := navekf.New(params, ledger, nil)
	if err != nil {
		return nil, err
	}

	noiseSrc, err := s.Noise.Build()
	if err != nil {
		return nil, fmt.Errorf("build noise: %w", err)
	}

	now := time.Unix(0, 0)
	var result navekf.Result
	for _, tick := range s.Ticks {
		flags := tick.ToControlFlags()
		samples := tick.ToSamples(noiseSrc)

		result = core.Fuse(x, cov, &samples, &flags, now)
		if rec != nil {
			rec.Record(result.Diagnostic)
		}
		now = now.Add(time.Millisecond * 10)
	}

	return result.Estimate, nil
}
