// Package cli provides the interactive farmsync field client.
//
// It wires configuration, the local store, the remote sink, the connectivity
// monitor and the sync coordinator, then runs a REPL. Operations are
// accepted at any time: online they go straight to the remote sink, offline
// they are queued and delivered when connectivity returns.
//
// Commands:
//
//	help                                 show available commands
//	plots                                list cached plots
//	refresh                              reload plots from the server
//	log <plot> <type> [-image path] [notes...]
//	                                     record a field operation (no args: prompts)
//	queue                                list queued operations
//	sync                                 drain the queue now
//	retry                                re-arm failed operations and sync
//	purge <local-id>                     drop a queued operation
//	history                              list delivered operations
//	status                               connectivity and sync state
//	exit | quit                          leave the program
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
