package usecase

import "github.com/adityaldip/cargo-pricing/internal/domain"

// ValidateConversion checks a conversion override before it replaces a
// record's derived segmentation. All checks are peers: each runs and reports
// independently, so a form failing two checks yields two messages.
//
// Legs left empty on the form are not checked; an override may legitimately
// drop a connection leg.
func ValidateConversion(snap domain.RegistrySnapshot, record domain.CargoRecord, override domain.ConversionOverride) *domain.ValidationErrors {
	errs := &domain.ValidationErrors{}

	if domain.NormalizeCode(override.Origin) == domain.NormalizeCode(override.Destination) {
		errs.Add("destination", "origin and destination must be different")
	}

	if (override.BeforeBTFrom != "" || override.BeforeBTTo != "") &&
		override.BeforeBTFrom == override.BeforeBTTo {
		errs.Add("before_bt", "before-connection endpoints must be different")
	}

	if record.Inbound != "" || record.Outbound != "" {
		inbound := FlightDisplay(snap, record.Inbound)
		outbound := FlightDisplay(snap, record.Outbound)
		if inbound == outbound {
			errs.Add("outbound", "inbound and outbound flights must be different")
		}
	}

	if (override.AfterBTFrom != "" || override.AfterBTTo != "") &&
		override.AfterBTFrom == override.AfterBTTo {
		errs.Add("after_bt", "after-connection endpoints must be different")
	}

	return errs
}
