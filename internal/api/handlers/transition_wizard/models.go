package transition_wizard

// TransitionRequest HTTP request model
type TransitionRequest struct {
	Action string `json:"action"`
}
