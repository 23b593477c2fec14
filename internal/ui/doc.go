// Package ui contains the Bubble Tea program that hosts the todo page in a
// terminal. It plays the part a browser plays for a web page: it paints the
// UI tree and turns key presses into raw DOM events on that tree. It never
// talks to the controller or the view directly.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry (key presses, window resizes).
//   - Key presses are interpreted per mode. In browse mode they move the
//     cursor or synthesise clicks and double-clicks on elements of the row
//     under the cursor (internal/ui/keys.go). In entry mode a bubbles
//     textinput mirrors its value into the focused DOM input and Enter/Esc
//     become change, keypress or keyup events (internal/ui/entry.go). Jump
//     mode moves the cursor to the best fuzzy match for a typed query.
//   - After every key the model re-reads the tree: rows, focus and values.
//     Whatever the controller rendered in response to the synthesised events
//     is therefore on screen at the next View call.
//
// State ownership:
//   - The DOM document is the single source of truth for what is displayed.
//   - internal/ui/state.List tracks cursor and viewport over the rendered rows,
//     keyed by item id so re-rendering the list does not move the highlight.
package ui
