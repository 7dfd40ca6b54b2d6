// Package telemetry hands out OpenTelemetry instruments for the search packages.
// Instruments come from the global meter provider, which is a no-op until the
// host installs a real one with otel.SetMeterProvider.
package telemetry

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/katalvlaran/floorpath"

// Instrument names.
const (
	SearchRuns         = "floorpath.search.runs"
	SearchExpanded     = "floorpath.search.expanded"
	SequenceCandidates = "floorpath.sequence.candidates"
	SequenceDiscarded  = "floorpath.sequence.discarded"
	SequenceEnumerated = "floorpath.sequence.enumerated"
)

// Meter returns the meter used by floorpath packages.
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Counter creates an Int64Counter on m, falling back to a no-op counter if the
// provider rejects the instrument. A nil m uses Meter().
func Counter(m metric.Meter, name, description string) metric.Int64Counter {
	if m == nil {
		m = Meter()
	}
	c, err := m.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		c, _ = noop.Meter{}.Int64Counter(name)
	}

	return c
}
