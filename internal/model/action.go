package model

// Action is a human-friendly label for what an agent did in a timestep.
// Keep these values stable; they are intended for CSV and console output.
type Action string

const (
	ActionBuy  Action = "BUY"
	ActionHold Action = "HOLD"
)

// ActionFromNotional labels a tick by the notional value the agent executed.
// There is no sell side in this model, so the only outcomes are BUY and HOLD.
func ActionFromNotional(orderValue float64) Action {
	if orderValue > 0 {
		return ActionBuy
	}
	return ActionHold
}
