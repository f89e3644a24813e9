package model

// ConnectivityState describes the reachability of the document store.
// The numeric codes are part of the /api/db-status contract.
type ConnectivityState int32

const (
	StateDisconnected  ConnectivityState = 0
	StateConnected     ConnectivityState = 1
	StateConnecting    ConnectivityState = 2
	StateDisconnecting ConnectivityState = 3
)

func (s ConnectivityState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	case StateConnecting:
		return "connecting"
	case StateDisconnecting:
		return "disconnecting"
	default:
		return "unknown"
	}
}
