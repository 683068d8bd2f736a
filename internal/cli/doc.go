// Package cli is the interactive terminal front end of policykeeper.
//
// It wires the customer, account, settings, transfer and reminder services
// into a read–eval–print loop and runs the expiry scheduler in the
// background while the loop is active. The REPL is started with App.Run,
// which blocks until the user exits or stdin closes.
//
// Commands (see runREPL for the dispatcher):
//
//	list [all|15|7|2|expired] [query]   search <query>   stats
//	add   edit <id>   delete <id>   show <id>   remind <id>   call <id>
//	export csv|xlsx   backup   import <file>   share csv|xlsx
//	lang en|hi   exportpw set|remove   notify on|off
//	register   login   logout   passwd   help   exit|quit
package cli
