package grpcx

// Chiavi condivise per passare l'identita' di sessione tra servizi gRPC.
type contextKey string

// ContextSessionIDKey definisce la chiave per il context locale (non gRPC).
const ContextSessionIDKey contextKey = "session_id"

// SessionIDMetadataKey definisce la chiave metadata per il session_id su gRPC.
const SessionIDMetadataKey = "session_id"
