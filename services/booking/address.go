package booking

import (
	"fmt"
	"strings"

	"resmoke/models"
)

// otherSentinel marks a picker value that the user replaced with free text.
// The original data mixes "Other" and "OTHER", so the comparison is
// case-insensitive.
const otherSentinel = "Other"

func isOtherSentinel(v string) bool {
	return strings.EqualFold(v, otherSentinel)
}

// resolveOther substitutes the free-text override when value is the sentinel.
func resolveOther(value, override string) string {
	if isOtherSentinel(value) {
		return override
	}
	return value
}

// FormatAddress derives the single comma-joined display address from a
// structured AddressDetails payload. It is pure and deterministic: identical
// input always yields an identical string.
//
// An unknown property type, or a payload missing the variant its tag names,
// is rejected rather than formatted partially.
func FormatAddress(d models.AddressDetails) (string, error) {
	var parts []string
	push := func(vals ...string) {
		for _, v := range vals {
			if v != "" {
				parts = append(parts, v)
			}
		}
	}

	switch d.PropertyType {
	case models.PropertyHome:
		h := d.Home
		if h == nil {
			return "", missingVariant(d.PropertyType)
		}
		push(h.HouseNumber, h.StreetName)
	case models.PropertyComplex:
		cx := d.Complex
		if cx == nil {
			return "", missingVariant(d.PropertyType)
		}
		if cx.UnitNumber != "" {
			push("Unit " + cx.UnitNumber)
		}
		push(resolveOther(cx.ComplexName, cx.OtherComplexName), cx.StreetNumber, cx.StreetName)
	case models.PropertyEstateHouse:
		e := d.EstateHouse
		if e == nil {
			return "", missingVariant(d.PropertyType)
		}
		if e.StandNumber != "" {
			push("Stand " + e.StandNumber)
		}
		push(e.HouseNumber, e.StreetNameInEstate, e.EstateName)
	case models.PropertyEstateComplex:
		e := d.EstateComplex
		if e == nil {
			return "", missingVariant(d.PropertyType)
		}
		if e.UnitNumber != "" {
			push("Unit " + e.UnitNumber)
		}
		push(resolveOther(e.ComplexName, e.OtherComplexName), e.StreetNameInEstate, e.EstateName)
	case models.PropertyOffice:
		o := d.Office
		if o == nil {
			return "", missingVariant(d.PropertyType)
		}
		push(o.OfficeName, o.OfficeParkName, o.StreetNumber, o.StreetName)
	case models.PropertySmallHolding:
		s := d.SmallHolding
		if s == nil {
			return "", missingVariant(d.PropertyType)
		}
		push(s.HoldingName, s.StreetName)
	case models.PropertyFarm:
		f := d.Farm
		if f == nil {
			return "", missingVariant(d.PropertyType)
		}
		push(f.FarmName, f.StreetName)
	case models.PropertyOther:
		o := d.Other
		if o == nil {
			return "", missingVariant(d.PropertyType)
		}
		push(o.Description, o.StreetNumber, o.StreetName)
	default:
		return "", fmt.Errorf("unknown property type %q", d.PropertyType)
	}

	push(resolveOther(d.Suburb, d.OtherSuburb))
	push(resolveOther(d.City, d.OtherCityDescription))

	return strings.Join(parts, ", "), nil
}

func missingVariant(pt models.PropertyType) error {
	return fmt.Errorf("address details missing payload for property type %q", pt)
}
