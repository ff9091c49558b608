package service

import (
	"docforensics/internal/domain"
	"docforensics/internal/forensic"
)

// Verdict is a normalized classifier answer, detached from any upload.
type Verdict struct {
	Result   domain.ForensicResult `json:"result"`
	Decoded  bool                  `json:"decoded"`
	Warnings []string              `json:"warnings"`
}

// NormalizeVerdict turns raw classifier text into a complete result. A
// non-empty secondary answer only fills fields the primary left absent.
func NormalizeVerdict(primaryRaw, secondaryRaw string) *Verdict {
	primary := forensic.Normalize(primaryRaw)
	secondary := &forensic.Partial{}
	if secondaryRaw != "" {
		secondary = forensic.Normalize(secondaryRaw)
	}

	v := &Verdict{
		// Later partials win.
		Result:   forensic.MergeWithDefault(secondary, primary),
		Decoded:  !primary.IsEmpty() || !secondary.IsEmpty(),
		Warnings: []string{},
	}
	switch {
	case !v.Decoded:
		v.Warnings = append(v.Warnings, WarningUndecodable)
	case primary.IsEmpty():
		v.Warnings = append(v.Warnings, WarningPrimaryUndecodable)
	}
	v.Warnings = append(v.Warnings, forensic.CheckConsistency(v.Result)...)
	return v
}
