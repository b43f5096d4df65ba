// Package driver contains the Driver entity of the laundry platform.
//
// Drivers are attached to a branch and carry that branch's transfer batches
// to the main store. Load-based assignment lives in the domain services
// package; here is just the entity itself.
package driver
