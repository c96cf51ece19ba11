package engine

// UI is the collaborator that shows out-of-band controls around the game.
type UI interface {
	// ShowNewGame displays the "new game" affordance. The returned channel
	// receives one value when the player asks for a new game.
	ShowNewGame() (<-chan struct{}, error)

	// Hide removes any affordance previously shown.
	Hide() error
}
