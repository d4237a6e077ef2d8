package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/huimingz/commitkit/internal/ui"
)

// InterruptHandler cancels the command context on Ctrl+C and exits once
// the running git command has been stopped
type InterruptHandler struct {
	cancel  context.CancelFunc
	sigChan chan os.Signal
	printer *ui.Printer
	exit    func(code int)
}

// NewInterruptHandler creates a new interrupt handler
func NewInterruptHandler(cancel context.CancelFunc, printer *ui.Printer) *InterruptHandler {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	return &InterruptHandler{
		cancel:  cancel,
		sigChan: sigChan,
		printer: printer,
		exit:    os.Exit,
	}
}

// Start starts the interrupt handler in a goroutine
func (h *InterruptHandler) Start() {
	go h.handleSignals()
}

// handleSignals handles interrupt signals
func (h *InterruptHandler) handleSignals() {
	if _, ok := <-h.sigChan; !ok {
		return
	}

	_ = h.printer.PrintWarning("Received interrupt signal, aborting.")

	// Cancel the context to stop the running git command
	h.cancel()

	h.exit(130) // Standard exit code for SIGINT
}

// Stop stops the signal handling
func (h *InterruptHandler) Stop() {
	signal.Stop(h.sigChan)
	close(h.sigChan)
}
