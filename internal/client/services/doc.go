// Package services holds the client-side application logic of farmsync.
//
// SyncCoordinator drains the pending-operation queue against the remote sink
// whenever connectivity comes back. OperationService captures field
// operations, writing them straight through when online and queueing them
// otherwise. PlotService keeps the offline plot catalog.
package services
