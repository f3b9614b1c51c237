package model

// Stage is one step of the fixed service pipeline (`service_stages`
// table).  Stage order values are globally unique positive integers and
// totally order all stages: the minimum order is the entry stage for
// every new booking and the maximum order is the terminal stage.
// Stages referenced by history are never mutated.
type Stage struct {
	ID    uint64 `json:"id"`    // service_stages.id
	Name  string `json:"name"`  // service_stages.stage_name (unique)
	Order uint32 `json:"order"` // service_stages.stage_order (unique, > 0)
}
