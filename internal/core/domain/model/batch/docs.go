// Package batch contains the ProcessingBatch aggregate of the laundry platform.
//
// A processing batch groups orders at one branch so staff can advance them
// through a workstation stage together. The batch itself is a document with a
// pending -> in_progress -> completed lifecycle; the member orders remain the
// source of truth for garment status, and the bulk member moves are performed
// by the application layer all-or-nothing.
package batch
