// Package branch contains the Branch aggregate of the laundry platform.
//
// A branch is either a main store with processing workstations or a satellite
// collection point attached to one. The aggregate owns the routing decision
// for intake (ResolveProcessingBranch), the branch code used in tag numbers,
// and the sorting window applied after processing completes.
package branch
