package broadcast

import "errors"

// ErrClosed is returned by Broadcast once the broadcaster has been closed.
var ErrClosed = errors.New("broadcast: broadcaster is closed")
