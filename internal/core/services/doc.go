// Package services implements the core pipeline logic.
//
// Services orchestrate domain types through the driven ports:
// subject resolution, lookup query building, candidate ranking,
// icon source selection and the batch generator itself.
//
// # Import Rules
//
//   - Can Import: domain, ports, logger, restyle, synth, validate
//   - Cannot Import: Any adapter package
package services
