// Package transfer contains the TransferBatch aggregate of the laundry platform.
//
// A transfer batch is one physical run of orders from a satellite branch to
// its main store: built by the dispatch sweep, claimed by a driver, and
// closed out when the driver arrives and the orders are received into main
// store intake.
package transfer
