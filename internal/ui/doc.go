// Package ui implements the terminal client with Bubble Tea.
//
// Core abstractions:
//   - View: a screen or major UI region with its own model, update, view (Elm-style)
//   - Overlay / OverlayStack: modal views layered over the current screen
//   - ModalLifecycle: open/submitting state shared by every modal
//   - KeybindRegistry / KeyHandler: spacemacs-style leader key sequences
//
// The app has three modes: the asset list, the location list, and the
// asset detail screen. Bulk actions and note entry run through modals.
package ui
