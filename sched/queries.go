package sched

import (
	"fmt"
	"time"
)

// hoursPerDay converts the model's day-based deltas to wall time.
const hoursPerDay = 24

// SplitDates splits a DATES record with N timestamps into N single-entry
// DATES records, each usable by AdvanceTime. Downstream time stepping treats
// each date as its own scheduling boundary. The restart tag is carried over.
func (k *Keyword) SplitDates() ([]*Keyword, error) {
	p, err := k.Dates()
	if err != nil {
		return nil, err
	}
	split := make([]*Keyword, 0, len(p.Times))
	for _, t := range p.Times {
		kw := NewKeyword(KwDates, k.name, &Dates{Times: []time.Time{t}})
		kw.restart = k.restart
		split = append(split, kw)
	}
	return split, nil
}

// AdvanceTime computes the simulation time after this record. For DATES the
// result is the record's first date (callers are expected to have split
// multi-date records); for TSTEP it is current plus the sum of the deltas in
// days. Any other type is a mismatch.
func (k *Keyword) AdvanceTime(current time.Time) (time.Time, error) {
	switch k.typ {
	case KwDates:
		p, err := k.Dates()
		if err != nil {
			return time.Time{}, err
		}
		if len(p.Times) == 0 {
			return time.Time{}, fmt.Errorf("%w: DATES record has no dates", ErrMalformedRecord)
		}
		return p.Times[0], nil
	case KwTstep:
		p, err := k.Tstep()
		if err != nil {
			return time.Time{}, err
		}
		return current.Add(time.Duration(p.SumDays() * hoursPerDay * float64(time.Hour))), nil
	default:
		return time.Time{}, fmt.Errorf("%w: cannot advance time from %s record", ErrTypeMismatch, k.typ)
	}
}

// TimeKind reports which time-stepping family this record belongs to.
func (k *Keyword) TimeKind() (TimeKind, bool) {
	switch k.typ {
	case KwDates:
		return TimeDates, true
	case KwTstep:
		return TimeTstep, true
	default:
		return 0, false
	}
}

// WellNames returns the distinct well names appearing in the payload rows,
// in first-appearance order. Types without well rows yield an empty list;
// this is never an error.
func (k *Keyword) WellNames() []string {
	var names []string
	seen := make(map[string]bool)
	add := func(well string) {
		if !seen[well] {
			seen[well] = true
			names = append(names, well)
		}
	}

	switch p := k.payload.(type) {
	case *Welspecs:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Compdat:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Wconhist:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Wconinje:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Wconinjh:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Wconprod:
		for _, r := range p.Rows {
			add(r.Well)
		}
	case *Wconinj:
		for _, r := range p.Rows {
			add(r.Well)
		}
	}
	return names
}

// HasWell reports whether the well appears in the record's rows. It never
// fails; records without well rows simply report false.
func (k *Keyword) HasWell(well string) bool {
	for _, name := range k.WellNames() {
		if name == well {
			return true
		}
	}
	return false
}

// Observation is the per-well state extracted from one well-control row.
// Rate is the row's principal rate: the sum of the observed phase rates for
// producers, the surface injection rate for injectors.
type Observation struct {
	Well   string
	Type   WellType
	Status WellStatus
	Mode   ControlMode
	Phase  Phase // injector rows only
	Rate   float64
	BHP    float64
	THP    float64
}

// WellObservations builds a per-well lookup from a well-status-bearing
// record (WCONHIST, WCONINJE, WCONINJH, WCONPROD, WCONINJ). When a well has
// several rows in the block, the last row wins, matching the source format
// where later lines override earlier ones.
func (k *Keyword) WellObservations() (map[string]Observation, error) {
	obs := make(map[string]Observation)
	switch p := k.payload.(type) {
	case *Wconhist:
		for _, r := range p.Rows {
			obs[r.Well] = Observation{
				Well:   r.Well,
				Type:   WellProducer,
				Status: r.Status,
				Mode:   r.Mode,
				Rate:   r.OilRate + r.WaterRate + r.GasRate,
				BHP:    r.BHP,
				THP:    r.THP,
			}
		}
	case *Wconinje:
		for _, r := range p.Rows {
			obs[r.Well] = Observation{
				Well:   r.Well,
				Type:   WellInjector,
				Status: r.Status,
				Mode:   r.Mode,
				Phase:  r.Phase,
				Rate:   r.SurfaceRate,
				BHP:    r.BHPLimit,
				THP:    r.THPLimit,
			}
		}
	case *Wconinjh:
		for _, r := range p.Rows {
			obs[r.Well] = Observation{
				Well:   r.Well,
				Type:   WellInjector,
				Status: r.Status,
				Mode:   r.Mode,
				Phase:  r.Phase,
				Rate:   r.Rate,
				BHP:    r.BHP,
				THP:    r.THP,
			}
		}
	case *Wconprod:
		for _, r := range p.Rows {
			obs[r.Well] = Observation{
				Well:   r.Well,
				Type:   WellProducer,
				Status: r.Status,
				Mode:   r.Mode,
				Rate:   r.OilRate + r.WaterRate + r.GasRate,
				BHP:    r.BHPLimit,
				THP:    r.THPLimit,
			}
		}
	case *Wconinj:
		for _, r := range p.Rows {
			obs[r.Well] = Observation{
				Well:   r.Well,
				Type:   WellInjector,
				Status: r.Status,
				Mode:   r.Mode,
				Phase:  r.Phase,
				Rate:   r.SurfaceRate,
				BHP:    r.BHPLimit,
				THP:    r.THPLimit,
			}
		}
	default:
		return nil, fmt.Errorf("%w: %s record carries no well observations", ErrTypeMismatch, k.typ)
	}
	return obs, nil
}

// WellIsOpen reports whether the well's last row leaves it flowing: status
// OPEN, or status AUTO with a nonzero rate. AUTO is meaningful only for
// injectors; an AUTO row in a producer record is a mismatch. A well absent
// from the record is ErrUnknownWell.
func (k *Keyword) WellIsOpen(well string) (bool, error) {
	obs, err := k.WellObservations()
	if err != nil {
		return false, err
	}
	o, ok := obs[well]
	if !ok {
		return false, fmt.Errorf("%w: %q not in %s record", ErrUnknownWell, well, k.typ)
	}
	switch o.Status {
	case StatusOpen:
		return true, nil
	case StatusAuto:
		if o.Type == WellProducer {
			return false, fmt.Errorf("%w: AUTO status on producer well %q", ErrTypeMismatch, well)
		}
		return o.Rate != 0, nil
	default:
		return false, nil
	}
}

// GroupTreeEdges returns the positionally aligned child and parent name
// lists of a GRUPTREE record: children[i] reports to parents[i].
func (k *Keyword) GroupTreeEdges() (children, parents []string, err error) {
	p, err := k.Gruptree()
	if err != nil {
		return nil, nil, err
	}
	children = make([]string, 0, len(p.Rows))
	parents = make([]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		children = append(children, r.Child)
		parents = append(parents, r.Parent)
	}
	return children, parents, nil
}
