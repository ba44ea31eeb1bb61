package tui

// DropdownToggledMsg reports a dropdown opening or closing.
type DropdownToggledMsg struct {
	ID   string
	Open bool
}

// DropdownSelectedMsg reports a committed dropdown selection.
type DropdownSelectedMsg[T any] struct {
	ID    string
	Index int
	Item  T
}

// ModalOpenChangedMsg reports a modal opening or closing.
type ModalOpenChangedMsg struct {
	ID   string
	Open bool
}

// TabChangedMsg reports a newly active tab.
type TabChangedMsg struct {
	ID    string
	Index int
}
