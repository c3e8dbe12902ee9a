package usecase

import "github.com/adityaldip/cargo-pricing/internal/domain"

// SegmentRoute derives the four legs of a journey from a raw record:
// the implicit connection before the inbound flight, the inbound and
// outbound flight legs, and the implicit connection after the outbound
// flight. Absent legs are nil.
//
// Rules, in order:
//  1. Inbound/outbound legs are the resolved flight endpoints; an absent or
//     unresolved flight number leaves the leg nil.
//  2. BeforeBT compares the record's canonical origin to the inbound
//     flight's resolved origin. When the inbound does not resolve but the
//     outbound does, the outbound's origin is used instead. Equal endpoints
//     collapse to nil, never a degenerate X → X leg.
//  3. AfterBT compares the outbound flight's resolved destination to the
//     record's canonical destination. There is no inbound fallback here.
func SegmentRoute(snap domain.RegistrySnapshot, record domain.CargoRecord) domain.RouteSegments {
	origin := record.CanonicalOrigin()
	destination := record.CanonicalDestination()

	inbound, inboundOK := ResolveFlight(snap, record.Inbound)
	outbound, outboundOK := ResolveFlight(snap, record.Outbound)

	var segments domain.RouteSegments

	if inboundOK {
		segments.Inbound = &domain.RouteLeg{Origin: inbound.Origin, Destination: inbound.Destination}
	}
	if outboundOK {
		segments.Outbound = &domain.RouteLeg{Origin: outbound.Origin, Destination: outbound.Destination}
	}

	// Connection point for the before-leg: the inbound's origin, falling
	// back to the outbound's origin when only the outbound resolves.
	var connectFrom string
	switch {
	case inboundOK:
		connectFrom = inbound.Origin
	case outboundOK:
		connectFrom = outbound.Origin
	}
	if connectFrom != "" && origin != "" && origin != connectFrom {
		segments.BeforeBT = &domain.RouteLeg{Origin: origin, Destination: connectFrom}
	}

	if outboundOK && destination != "" && destination != outbound.Destination {
		segments.AfterBT = &domain.RouteLeg{Origin: outbound.Destination, Destination: destination}
	}

	return segments
}
