package catalog

import "errors"

// Errori di dominio usati da service/repo e mappati nel layer gRPC.
var ErrFactionNotFound = errors.New("faction not found")

// ErrUnitNotFound indica una unità assente nel catalogo della fazione.
var ErrUnitNotFound = errors.New("unit not found")
