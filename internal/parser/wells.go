package parser

import (
	"github.com/golangsched/schedkw/internal/cursor"
	"github.com/golangsched/schedkw/sched"
)

// Column schemas below follow the ECLIPSE SCHEDULE grammar, truncated to
// the columns the model stores; trailing columns beyond the schema are
// tolerated and ignored.

func parseWelspecs(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Welspecs, error) {
	payload := &sched.Welspecs{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWelspecs, tokens, widths)
		var row sched.WelspecsRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		row.Group = l.str(1, "FIELD")
		if row.I, err = l.integer(2, 0); err != nil {
			return err
		}
		if row.J, err = l.integer(3, 0); err != nil {
			return err
		}
		if row.RefDepth, err = l.float(4, 0); err != nil {
			return err
		}
		row.Phase = sched.PhaseOil
		if !l.defaulted(5) {
			if row.Phase, err = l.phase(5); err != nil {
				return err
			}
		}
		if row.DrainageRadius, err = l.float(6, 0); err != nil {
			return err
		}
		row.InflowEquation = l.fixedStr(7, "STD")
		row.AutoShutIn = l.fixedStr(8, "SHUT")
		row.Crossflow = l.fixedStr(9, "YES")
		if row.PressureTable, err = l.integer(10, 0); err != nil {
			return err
		}
		row.DensityCalc = l.fixedStr(11, "SEG")
		if row.FIPRegion, err = l.integer(12, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseCompdat(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Compdat, error) {
	payload := &sched.Compdat{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwCompdat, tokens, widths)
		var row sched.CompdatRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.I, err = l.integer(1, 0); err != nil {
			return err
		}
		if row.J, err = l.integer(2, 0); err != nil {
			return err
		}
		if row.K1, err = l.integer(3, 0); err != nil {
			return err
		}
		if row.K2, err = l.integer(4, 0); err != nil {
			return err
		}
		if row.Status, err = l.status(5, sched.StatusOpen); err != nil {
			return err
		}
		if row.SatTable, err = l.integer(6, 0); err != nil {
			return err
		}
		if row.ConnFactor, err = l.float(7, 0); err != nil {
			return err
		}
		if row.Diameter, err = l.float(8, 0); err != nil {
			return err
		}
		if row.Kh, err = l.float(9, 0); err != nil {
			return err
		}
		if row.Skin, err = l.float(10, 0); err != nil {
			return err
		}
		if row.DFactor, err = l.float(11, 0); err != nil {
			return err
		}
		row.Direction = l.fixedStr(12, "Z")
		if row.R0, err = l.float(13, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseWconhist(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Wconhist, error) {
	payload := &sched.Wconhist{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWconhist, tokens, widths)
		var row sched.WconhistRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.Status, err = l.status(1, sched.StatusDefault); err != nil {
			return err
		}
		if row.Mode, err = l.mode(2, sched.ModeUnset, sched.ControlModeFromHistoryString); err != nil {
			return err
		}
		if row.OilRate, err = l.float(3, 0); err != nil {
			return err
		}
		if row.WaterRate, err = l.float(4, 0); err != nil {
			return err
		}
		if row.GasRate, err = l.float(5, 0); err != nil {
			return err
		}
		if row.VFPTable, err = l.integer(6, 0); err != nil {
			return err
		}
		if row.ALQ, err = l.float(7, 0); err != nil {
			return err
		}
		if row.THP, err = l.float(8, 0); err != nil {
			return err
		}
		if row.BHP, err = l.float(9, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseWconinje(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Wconinje, error) {
	payload := &sched.Wconinje{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWconinje, tokens, widths)
		var row sched.WconinjeRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.Phase, err = l.phase(1); err != nil {
			return err
		}
		if row.Status, err = l.status(2, sched.StatusDefault); err != nil {
			return err
		}
		if row.Mode, err = l.mode(3, sched.ModeUnset, sched.ControlModeFromInjectorString); err != nil {
			return err
		}
		if row.SurfaceRate, err = l.float(4, 0); err != nil {
			return err
		}
		if row.ReservoirRate, err = l.float(5, 0); err != nil {
			return err
		}
		if row.BHPLimit, err = l.float(6, 0); err != nil {
			return err
		}
		if row.THPLimit, err = l.float(7, 0); err != nil {
			return err
		}
		if row.VFPTable, err = l.integer(8, 0); err != nil {
			return err
		}
		if row.VaporizedOil, err = l.float(9, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseWconinjh(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Wconinjh, error) {
	payload := &sched.Wconinjh{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWconinjh, tokens, widths)
		var row sched.WconinjhRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.Phase, err = l.phase(1); err != nil {
			return err
		}
		if row.Status, err = l.status(2, sched.StatusDefault); err != nil {
			return err
		}
		if row.Rate, err = l.float(3, 0); err != nil {
			return err
		}
		if row.BHP, err = l.float(4, 0); err != nil {
			return err
		}
		if row.THP, err = l.float(5, 0); err != nil {
			return err
		}
		if row.VFPTable, err = l.integer(6, 0); err != nil {
			return err
		}
		if row.VaporizedOil, err = l.float(7, 0); err != nil {
			return err
		}
		// The control-mode column trails the numeric columns here and
		// defaults to RATE.
		if row.Mode, err = l.mode(8, sched.ModeRate, sched.ControlModeFromHistoryString); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseWconprod(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Wconprod, error) {
	payload := &sched.Wconprod{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWconprod, tokens, widths)
		var row sched.WconprodRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.Status, err = l.status(1, sched.StatusDefault); err != nil {
			return err
		}
		if row.Mode, err = l.mode(2, sched.ModeUnset, sched.ControlModeFromProducerString); err != nil {
			return err
		}
		if row.OilRate, err = l.float(3, 0); err != nil {
			return err
		}
		if row.WaterRate, err = l.float(4, 0); err != nil {
			return err
		}
		if row.GasRate, err = l.float(5, 0); err != nil {
			return err
		}
		if row.LiquidRate, err = l.float(6, 0); err != nil {
			return err
		}
		if row.ResVRate, err = l.float(7, 0); err != nil {
			return err
		}
		if row.BHPLimit, err = l.float(8, 0); err != nil {
			return err
		}
		if row.THPLimit, err = l.float(9, 0); err != nil {
			return err
		}
		if row.VFPTable, err = l.integer(10, 0); err != nil {
			return err
		}
		if row.ALQ, err = l.float(11, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseWconinj(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Wconinj, error) {
	payload := &sched.Wconinj{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwWconinj, tokens, widths)
		var row sched.WconinjRow
		var err error
		if row.Well, err = l.name(0, "well name"); err != nil {
			return err
		}
		if row.Phase, err = l.phase(1); err != nil {
			return err
		}
		if row.Status, err = l.status(2, sched.StatusDefault); err != nil {
			return err
		}
		if row.Mode, err = l.mode(3, sched.ModeUnset, sched.ControlModeFromInjectorString); err != nil {
			return err
		}
		if row.SurfaceRate, err = l.float(4, 0); err != nil {
			return err
		}
		if row.ReservoirRate, err = l.float(5, 0); err != nil {
			return err
		}
		if row.BHPLimit, err = l.float(6, 0); err != nil {
			return err
		}
		if row.THPLimit, err = l.float(7, 0); err != nil {
			return err
		}
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

func parseGruptree(cur *cursor.Cursor, widths sched.WidthTable) (*sched.Gruptree, error) {
	payload := &sched.Gruptree{}
	err := records(cur, func(tokens []string) error {
		l := newLine(sched.KwGruptree, tokens, widths)
		var row sched.GruptreeRow
		var err error
		if row.Child, err = l.name(0, "child group"); err != nil {
			return err
		}
		row.Parent = l.str(1, "FIELD")
		payload.Rows = append(payload.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}
