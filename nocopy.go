package iocoro

// noCopy is embedded by coroutines that own a buffer. A copied Read or
// Write would share that buffer with the original, and go vet's
// copylocks check flags such copies through the Locker methods below.
type noCopy struct{}

// Lock satisfies sync.Locker so vet treats noCopy as a lock.
func (*noCopy) Lock() {}

// Unlock pairs with Lock; it does nothing.
func (*noCopy) Unlock() {}
