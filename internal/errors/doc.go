// Package errors provides structured errors for the dice statistics toolkit.
//
// Every error carries a Code, a human readable message, optional metadata and
// an optional cause. Codes survive wrapping, so a caller several layers up can
// still ask what kind of failure happened:
//
//	table, err := cache.Get(ctx, outcometable.GetInput{Dice: 2, Sides: 6})
//	if err != nil {
//	    if errors.IsNotFound(err) {
//	        // compute and store
//	    }
//	    return errors.Wrap(err, "failed to load outcome table")
//	}
//
// # Validation
//
// Dependency and input validation goes through the ValidationBuilder, which
// collects field level problems and returns a single InvalidArgument error:
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateRange("dice_count", input.DiceCount, 1, 10, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
//
// # Codes used by the simulation pipeline
//
//   - InvalidArgument: a configuration outside the supported ranges
//   - NotFound: an outcome table cache miss
//   - OutOfRange: an exact count that does not fit the requested integer width
//   - ResourceExhausted: distribution buffers could not be sized
//   - Canceled: the run context was canceled mid simulation
//   - Internal: anything else, including random source failures
//
// The CLI maps codes to process exit statuses with Code.ExitCode.
package errors
