package roster

import "errors"

// Errori di dominio usati da repo/server e mappati in codici gRPC.
var ErrSessionNotFound = errors.New("session not found")
