// Package services provides cross-cutting helpers shared by the run
// orchestration code: sentinel errors with classification helpers and
// context annotation for run IDs, stages, and record paths.
package services
