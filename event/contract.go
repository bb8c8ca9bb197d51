// File: event/contract.go

package event

import "github.com/timblechmann/nova-autoreset-event/api"

// Every platform backend satisfies the shared contract.
var _ api.Event = (*Event)(nil)
