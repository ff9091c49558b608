package forensic

import (
	"fmt"
	"reflect"
	"slices"

	"docforensics/internal/domain"
)

// Merge overlays each partial onto a copy of base, later partials winning.
// Fields are paired by name and recursed structurally: a present pointer
// replaces the base value, a present nested record is merged field by field,
// and a non-empty slice replaces the base slice. Absent fields keep the base
// value, so the output is as complete as base.
func Merge(base domain.ForensicResult, partials ...*Partial) domain.ForensicResult {
	out := cloneResult(base)
	dst := reflect.ValueOf(&out).Elem()
	for _, p := range partials {
		if p == nil {
			continue
		}
		overlay(dst, reflect.ValueOf(p).Elem())
	}
	fillLists(&out)
	return out
}

// MergeWithDefault merges partials over Default().
func MergeWithDefault(partials ...*Partial) domain.ForensicResult {
	return Merge(Default(), partials...)
}

func overlay(dst, src reflect.Value) {
	st := src.Type()
	for i := 0; i < st.NumField(); i++ {
		sf := st.Field(i)
		df := dst.FieldByName(sf.Name)
		if !df.IsValid() || !df.CanSet() {
			panic(fmt.Sprintf("forensic: %s.%s has no counterpart in %s", st.Name(), sf.Name, dst.Type().Name()))
		}
		sv := src.Field(i)
		switch sv.Kind() {
		case reflect.Pointer:
			if sv.IsNil() {
				continue
			}
			elem := sv.Elem()
			if elem.Kind() == reflect.Struct && elem.Type() != df.Type() {
				overlay(df, elem)
				continue
			}
			df.Set(elem.Convert(df.Type()))
		case reflect.Slice:
			if sv.Len() == 0 {
				continue
			}
			cp := reflect.MakeSlice(df.Type(), sv.Len(), sv.Len())
			reflect.Copy(cp, sv)
			df.Set(cp)
		default:
			panic(fmt.Sprintf("forensic: %s.%s must be a pointer or slice", st.Name(), sf.Name))
		}
	}
}

func cloneResult(r domain.ForensicResult) domain.ForensicResult {
	r.TemplateCheck.MissingFields = slices.Clone(r.TemplateCheck.MissingFields)
	r.AnomalyDetection.SuspiciousRegions = slices.Clone(r.AnomalyDetection.SuspiciousRegions)
	r.PriceCheck.ItemsReviewed = slices.Clone(r.PriceCheck.ItemsReviewed)
	return r
}

// fillLists keeps list fields encoding as [] rather than null.
func fillLists(r *domain.ForensicResult) {
	if r.TemplateCheck.MissingFields == nil {
		r.TemplateCheck.MissingFields = []string{}
	}
	if r.AnomalyDetection.SuspiciousRegions == nil {
		r.AnomalyDetection.SuspiciousRegions = []string{}
	}
	if r.PriceCheck.ItemsReviewed == nil {
		r.PriceCheck.ItemsReviewed = []domain.LineItem{}
	}
}
