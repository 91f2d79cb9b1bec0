package config

import "cuelang.org/go/cue"

// parseProbeSection extracts optional probe.* fields.
func parseProbeSection(v cue.Value) Probe {
	var p Probe
	pv := v.LookupPath(cue.ParsePath("probe"))
	if !pv.Exists() {
		return p
	}
	ev := pv.LookupPath(cue.ParsePath("enabled"))
	if ev.Exists() && ev.Kind() == cue.BoolKind {
		if err := ev.Decode(&p.Enabled); err == nil {
			p.HasEnabled = true
		}
	}
	tv := pv.LookupPath(cue.ParsePath("timeoutMs"))
	if tv.Exists() && tv.Kind() == cue.IntKind {
		if err := tv.Decode(&p.TimeoutMs); err == nil {
			p.HasTimeoutMs = true
		}
	}
	prv := pv.LookupPath(cue.ParsePath("program"))
	if prv.Exists() && prv.Kind() == cue.StringKind {
		if err := prv.Decode(&p.Program); err == nil {
			p.HasProgram = true
		}
	}
	return p
}

// parseFilterSection extracts optional filter.inline.
func parseFilterSection(v cue.Value) Filter {
	var f Filter
	fv := v.LookupPath(cue.ParsePath("filter"))
	if !fv.Exists() {
		return f
	}
	iv := fv.LookupPath(cue.ParsePath("inline"))
	if iv.Exists() && iv.Kind() == cue.StringKind {
		if err := iv.Decode(&f.Inline); err == nil {
			f.HasInline = true
		}
	}
	return f
}

// parseOutputSection extracts optional output.format.
func parseOutputSection(v cue.Value) Output {
	var o Output
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o
	}
	fv := ov.LookupPath(cue.ParsePath("format"))
	if fv.Exists() && fv.Kind() == cue.StringKind {
		if err := fv.Decode(&o.Format); err == nil {
			o.HasFormat = true
		}
	}
	return o
}

func parseBadges(v cue.Value) (bool, bool) {
	bv := v.LookupPath(cue.ParsePath("badges"))
	if !bv.Exists() || bv.Kind() != cue.BoolKind {
		return false, false
	}
	var b bool
	if err := bv.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}
