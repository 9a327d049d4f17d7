// Package shell runs the interactive, menu-driven CD inventory session.
//
// The Shell owns no data of its own: it drives an inventory.Store and a
// snapshot.Gateway supplied by the caller, reads answers line by line from
// an io.Reader, and writes prompts and listings to an io.Writer. All store
// mutation happens on the goroutine that calls Run; a single reader
// goroutine only turns input into lines so that an interrupt can be
// noticed while a prompt is waiting.
//
// An interrupt asks for confirmation before the session ends. Answering
// anything but "y" returns to the menu.
package shell
