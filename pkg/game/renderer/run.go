package renderer

// RunBeside runs loop on its own goroutine, closing done when it returns,
// while eventLoop holds the calling goroutine. When eventLoop ends, closed is
// closed so the game loop can wind down, and RunBeside waits for loop to
// return before handing back eventLoop's error.
func RunBeside(loop func(), eventLoop func() error, done, closed chan struct{}) error {
	go func() {
		defer close(done)
		loop()
	}()

	err := eventLoop()
	close(closed)
	<-done
	return err
}
