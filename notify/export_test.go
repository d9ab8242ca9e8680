package notify

// Reemit publishes an already stored notice to subscribers again, as a push
// racing a new subscription does.
func (b *Board) Reemit(n Notice) {
	b.hub.Emit(n)
}
