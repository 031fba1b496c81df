package sched

import (
	"fmt"
	"io"
	"time"
)

// Payload is the variant body of a Keyword. It is a closed sum: only the
// payload types in this package implement it, and every consumer can match
// exhaustively. A payload is exclusively owned by its record; clone performs
// a full independent copy.
type Payload interface {
	clone() Payload
	dump(w io.Writer)
}

// Dates is the DATES payload: absolute calendar timestamps in source order.
type Dates struct {
	Times []time.Time
}

func (p *Dates) clone() Payload {
	return &Dates{Times: append([]time.Time(nil), p.Times...)}
}

func (p *Dates) dump(w io.Writer) {
	for _, t := range p.Times {
		fmt.Fprintf(w, "  %s\n", t.Format("02 'Jan' 2006 15:04:05"))
	}
}

// Tstep is the TSTEP payload: elapsed-time deltas in days, in source order.
type Tstep struct {
	Deltas []float64
}

func (p *Tstep) clone() Payload {
	return &Tstep{Deltas: append([]float64(nil), p.Deltas...)}
}

func (p *Tstep) dump(w io.Writer) {
	for _, d := range p.Deltas {
		fmt.Fprintf(w, "  %g\n", d)
	}
}

// SumDays returns the total elapsed time of all deltas.
func (p *Tstep) SumDays() float64 {
	var sum float64
	for _, d := range p.Deltas {
		sum += d
	}
	return sum
}

// WelspecsRow is one WELSPECS well declaration.
type WelspecsRow struct {
	Well           string
	Group          string // defaults to FIELD
	I, J           int
	RefDepth       float64
	Phase          Phase // preferred phase, defaults to OIL
	DrainageRadius float64
	InflowEquation string
	AutoShutIn     string
	Crossflow      string
	PressureTable  int
	DensityCalc    string
	FIPRegion      int
}

// Welspecs is the WELSPECS payload.
type Welspecs struct {
	Rows []WelspecsRow
}

func (p *Welspecs) clone() Payload {
	return &Welspecs{Rows: append([]WelspecsRow(nil), p.Rows...)}
}

func (p *Welspecs) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-8s %3d %3d  %g  %s\n",
			r.Well, r.Group, r.I, r.J, r.RefDepth, r.Phase)
	}
}

// CompdatRow is one COMPDAT completion.
type CompdatRow struct {
	Well       string
	I, J       int
	K1, K2     int
	Status     WellStatus // defaults to OPEN
	SatTable   int
	ConnFactor float64
	Diameter   float64
	Kh         float64
	Skin       float64
	DFactor    float64
	Direction  string // defaults to Z
	R0         float64
}

// Compdat is the COMPDAT payload.
type Compdat struct {
	Rows []CompdatRow
}

func (p *Compdat) clone() Payload {
	return &Compdat{Rows: append([]CompdatRow(nil), p.Rows...)}
}

func (p *Compdat) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %3d %3d %3d %3d  %-4s %s\n",
			r.Well, r.I, r.J, r.K1, r.K2, r.Status, r.Direction)
	}
}

// WconhistRow is one WCONHIST observed-production history row.
type WconhistRow struct {
	Well      string
	Status    WellStatus
	Mode      ControlMode // history context, ModeUnset when defaulted
	OilRate   float64
	WaterRate float64
	GasRate   float64
	VFPTable  int
	ALQ       float64
	THP       float64
	BHP       float64
}

// Wconhist is the WCONHIST payload.
type Wconhist struct {
	Rows []WconhistRow
}

func (p *Wconhist) clone() Payload {
	return &Wconhist{Rows: append([]WconhistRow(nil), p.Rows...)}
}

func (p *Wconhist) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-7s %-5s  %g %g %g\n",
			r.Well, r.Status, r.Mode, r.OilRate, r.WaterRate, r.GasRate)
	}
}

// WconinjeRow is one WCONINJE injection-control row.
type WconinjeRow struct {
	Well          string
	Phase         Phase
	Status        WellStatus
	Mode          ControlMode // injector context, AUTO status permitted
	SurfaceRate   float64
	ReservoirRate float64
	BHPLimit      float64
	THPLimit      float64
	VFPTable      int
	VaporizedOil  float64
}

// Wconinje is the WCONINJE payload.
type Wconinje struct {
	Rows []WconinjeRow
}

func (p *Wconinje) clone() Payload {
	return &Wconinje{Rows: append([]WconinjeRow(nil), p.Rows...)}
}

func (p *Wconinje) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-5s %-7s %-5s  %g\n",
			r.Well, r.Phase, r.Status, r.Mode, r.SurfaceRate)
	}
}

// WconinjhRow is one WCONINJH observed-injection history row.
// The control-mode column trails the numeric columns and defaults to RATE.
type WconinjhRow struct {
	Well         string
	Phase        Phase
	Status       WellStatus
	Rate         float64
	BHP          float64
	THP          float64
	VFPTable     int
	VaporizedOil float64
	Mode         ControlMode
}

// Wconinjh is the WCONINJH payload.
type Wconinjh struct {
	Rows []WconinjhRow
}

func (p *Wconinjh) clone() Payload {
	return &Wconinjh{Rows: append([]WconinjhRow(nil), p.Rows...)}
}

func (p *Wconinjh) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-5s %-7s  %g\n", r.Well, r.Phase, r.Status, r.Rate)
	}
}

// WconprodRow is one WCONPROD production-control row.
type WconprodRow struct {
	Well       string
	Status     WellStatus
	Mode       ControlMode // producer context
	OilRate    float64
	WaterRate  float64
	GasRate    float64
	LiquidRate float64
	ResVRate   float64
	BHPLimit   float64
	THPLimit   float64
	VFPTable   int
	ALQ        float64
}

// Wconprod is the WCONPROD payload.
type Wconprod struct {
	Rows []WconprodRow
}

func (p *Wconprod) clone() Payload {
	return &Wconprod{Rows: append([]WconprodRow(nil), p.Rows...)}
}

func (p *Wconprod) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-7s %-5s  %g %g %g\n",
			r.Well, r.Status, r.Mode, r.OilRate, r.WaterRate, r.GasRate)
	}
}

// WconinjRow is one WCONINJ (old-style injection) row.
type WconinjRow struct {
	Well          string
	Phase         Phase
	Status        WellStatus
	Mode          ControlMode // injector context
	SurfaceRate   float64
	ReservoirRate float64
	BHPLimit      float64
	THPLimit      float64
}

// Wconinj is the WCONINJ payload.
type Wconinj struct {
	Rows []WconinjRow
}

func (p *Wconinj) clone() Payload {
	return &Wconinj{Rows: append([]WconinjRow(nil), p.Rows...)}
}

func (p *Wconinj) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s %-5s %-7s %-5s  %g\n",
			r.Well, r.Phase, r.Status, r.Mode, r.SurfaceRate)
	}
}

// GruptreeRow is one GRUPTREE edge: Child reports to Parent.
type GruptreeRow struct {
	Child  string
	Parent string // defaults to FIELD
}

// Gruptree is the GRUPTREE payload. Edges are positionally aligned with
// source order.
type Gruptree struct {
	Rows []GruptreeRow
}

func (p *Gruptree) clone() Payload {
	return &Gruptree{Rows: append([]GruptreeRow(nil), p.Rows...)}
}

func (p *Gruptree) dump(w io.Writer) {
	for _, r := range p.Rows {
		fmt.Fprintf(w, "  %-8s -> %s\n", r.Child, r.Parent)
	}
}

// Include is the INCLUDE payload: the referenced file path, quotes stripped.
// Resolving and parsing the referenced file is the deck reader's business;
// this core performs no file I/O.
type Include struct {
	Path string
}

func (p *Include) clone() Payload {
	return &Include{Path: p.Path}
}

func (p *Include) dump(w io.Writer) {
	fmt.Fprintf(w, "  %s\n", p.Path)
}

// Raw is the payload for UNTYPED and NONE records: the block's tokens stored
// verbatim and never interpreted. Interior record terminators are kept; the
// final block terminator is not.
type Raw struct {
	Tokens []string
}

func (p *Raw) clone() Payload {
	return &Raw{Tokens: append([]string(nil), p.Tokens...)}
}

func (p *Raw) dump(w io.Writer) {
	for _, tok := range p.Tokens {
		fmt.Fprintf(w, "  %s\n", tok)
	}
}
