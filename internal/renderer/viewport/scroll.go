package viewport

// ScrollState is a saved pair of scroll offsets.
type ScrollState struct {
	RowOffset int
	ColOffset int
}

// GetScrollState returns the current scroll state.
func (v *Viewport) GetScrollState() ScrollState {
	return ScrollState{
		RowOffset: v.rowOffset,
		ColOffset: v.colOffset,
	}
}

// SetScrollState restores previously saved offsets.
func (v *Viewport) SetScrollState(state ScrollState) {
	v.rowOffset = max(state.RowOffset, 0)
	v.colOffset = max(state.ColOffset, 0)
}
