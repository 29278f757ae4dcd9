// Package errors provides the structured error type used across the caravan
// simulation.
//
// Simulation rules are lenient: unknown effect names and deltas on
// non-acquirable items are silent no-ops and never reach this package. What
// does surface as an error is caller misuse of the command surface and broken
// static data:
//   - NotFound: an unknown character, item or selection id
//   - InvalidArgument: malformed input or an ineligible selection target
//   - FailedPrecondition: a command issued in the wrong phase (combat active,
//     selection pending, not the caller's turn)
//   - ResourceExhausted: the party is full
//   - Internal: a catalog that references undefined items or effects
//
// # Basic Usage
//
//	err := errors.NotFoundf("character %s not found", id)
//	err := errors.FailedPrecondition("a selection is pending").
//	    WithMeta("selection_id", sel.ID)
//
// Wrapping keeps the original code:
//
//	if err := o.balancer.Spawn(ctx, enc); err != nil {
//	    return errors.Wrap(err, "failed to spawn encounter")
//	}
//
// # Validation Errors
//
// Component configs validate themselves with the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Catalog == nil {
//	    vb.RequiredField("Catalog")
//	}
//	return vb.Build()
package errors
