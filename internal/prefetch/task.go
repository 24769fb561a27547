package prefetch

// TypePrefetch warms a session cache with one pokemon ahead of the read.
const TypePrefetch = "pokemon:prefetch"

type Payload struct {
	SessionID string `json:"session_id"`
	Name      string `json:"name"`
}
