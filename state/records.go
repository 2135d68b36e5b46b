package state

import "fmt"

// Change is a topology event. A cost of RemoveCost deletes the edge, anything else upserts it.
type Change struct {
	From NodeId
	To   NodeId
	Cost int
}

func (c Change) IsRemoval() bool {
	return c.Cost == RemoveCost
}

func (c Change) String() string {
	if c.IsRemoval() {
		return fmt.Sprintf("remove %d-%d", c.From, c.To)
	}
	return fmt.Sprintf("set %d-%d cost %d", c.From, c.To, c.Cost)
}

// Message is a payload to be delivered from Src to Dst. The payload is opaque.
type Message struct {
	Src     NodeId
	Dst     NodeId
	Payload string
}
