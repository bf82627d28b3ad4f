// Package picker runs the interactive session-to-checkpoint flow.
//
// A run locates the sessions cached for one project, prints a numbered
// preview of each, and asks the user which one to keep and under what name.
// Faults in the user's replies are reported on the output and end the run
// cleanly. Failures while saving are returned to the caller.
package picker
